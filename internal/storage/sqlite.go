// Package storage provides SQLite-based persistence for the generation history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/trackgen/internal/storage/migrations"
)

// DefaultPath is where the history database lives unless overridden.
const DefaultPath = "~/.trackgen/history.db"

// Store manages the SQLite database connection for the generation history.
type Store struct {
	db *sql.DB
}

// Generation is one recorded run of the generator.
type Generation struct {
	ID          int64
	Seed        string
	Template    string // empty when a config file was used
	Strategy    string
	Width       float64
	Height      float64
	VertexCount int
	SpikeCount  int
	OutputPath  string // empty for previews
	CreatedAt   time.Time
}

// TemplateStats contains aggregated statistics for one template.
type TemplateStats struct {
	Template      string
	Count         int
	AvgVertices   float64
	MaxSpikes     int
	LastGenerated time.Time
}

// goose keeps its configuration in package globals.
var migrateMu sync.Mutex

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate applies the embedded goose migrations.
func (s *Store) migrate() error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.Up(s.db, "."); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores a generation and returns its ID.
func (s *Store) Record(g Generation) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO generations
		 (seed, template, strategy, width, height, vertex_count, spike_count, output_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.Seed, g.Template, g.Strategy, g.Width, g.Height, g.VertexCount, g.SpikeCount, g.OutputPath,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record generation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectGenerations = `SELECT id, seed, template, strategy, width, height,
		vertex_count, spike_count, output_path, created_at
	 FROM generations`

// Recent returns the latest generations, newest first.
func (s *Store) Recent(limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(selectGenerations+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query generations: %w", err)
	}
	return scanGenerations(rows)
}

// BySeed returns every generation made from seed, newest first.
func (s *Store) BySeed(seed string) ([]Generation, error) {
	rows, err := s.db.Query(selectGenerations+` WHERE seed = ? ORDER BY created_at DESC, id DESC`, seed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query generations: %w", err)
	}
	return scanGenerations(rows)
}

// Stats returns per-template statistics keyed by template. Generations made
// from a config file are grouped under the empty template.
func (s *Store) Stats() (map[string]*TemplateStats, error) {
	rows, err := s.db.Query(
		`SELECT template, COUNT(*), AVG(vertex_count), MAX(spike_count), MAX(created_at)
		 FROM generations
		 GROUP BY template`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*TemplateStats)
	for rows.Next() {
		var st TemplateStats
		var last any
		if err := rows.Scan(&st.Template, &st.Count, &st.AvgVertices, &st.MaxSpikes, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastGenerated = parseTime(last)
		stats[st.Template] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Clear deletes the whole history.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM generations"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

func scanGenerations(rows *sql.Rows) ([]Generation, error) {
	defer rows.Close()

	var result []Generation
	for rows.Next() {
		var g Generation
		var createdAt any
		if err := rows.Scan(
			&g.ID,
			&g.Seed,
			&g.Template,
			&g.Strategy,
			&g.Width,
			&g.Height,
			&g.VertexCount,
			&g.SpikeCount,
			&g.OutputPath,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.CreatedAt = parseTime(createdAt)
		result = append(result, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return result, nil
}

// parseTime handles both time.Time and the string form SQLite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// ErrNotFound is returned by Latest when the history is empty.
var ErrNotFound = errors.New("storage: no generations recorded")

// Latest returns the most recent generation.
func (s *Store) Latest() (Generation, error) {
	list, err := s.Recent(1)
	if err != nil {
		return Generation{}, err
	}
	if len(list) == 0 {
		return Generation{}, ErrNotFound
	}
	return list[0], nil
}
