package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trackgen/internal/config"
	"github.com/vovakirdan/trackgen/internal/registry"
	"github.com/vovakirdan/trackgen/internal/rng"
	"github.com/vovakirdan/trackgen/internal/storage"
	_ "github.com/vovakirdan/trackgen/internal/templates"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func TestNewModelTemplate(t *testing.T) {
	seed := rng.Seed{1}
	m := NewModel(PreviewOptions{Template: "spiky", Seed: seed, Width: 80, Height: 24})

	if m.Err() != nil {
		t.Fatalf("NewModel() error: %v", m.Err())
	}
	if m.Template() != "spiky" {
		t.Errorf("Template() = %q, expected spiky", m.Template())
	}
	if m.Level() == nil || m.Level().Seed != seed.String() {
		t.Fatalf("Level() = %+v, expected level for seed %s", m.Level(), seed)
	}
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(PreviewOptions{})

	if m.Template() != registry.IDs()[0] {
		t.Errorf("Template() = %q, expected first template %q", m.Template(), registry.IDs()[0])
	}
	if m.width != 80 || m.height != 24 {
		t.Errorf("size = %dx%d, expected 80x24", m.width, m.height)
	}
}

func TestNewModelFile(t *testing.T) {
	file := config.DefaultTrackFile()
	file.Strategy = "walk"

	m := NewModel(PreviewOptions{File: &file, Seed: rng.Seed{2}})
	if m.Template() != "" {
		t.Errorf("Template() = %q, expected none for a config file", m.Template())
	}
	if m.out.Result.Stats.Strategy != "walk" {
		t.Errorf("strategy = %q, expected walk", m.out.Result.Stats.Strategy)
	}
	if !strings.Contains(m.View(), "custom config") {
		t.Error("View() should name the custom config")
	}
}

func TestModelRegenerate(t *testing.T) {
	m := NewModel(PreviewOptions{Template: "bumpy", Seed: rng.Seed{1}})
	next := rng.Seed{42}
	m.newSeed = func() rng.Seed { return next }

	m, _ = update(t, m, runeKey('r'))

	if m.Level().Seed != next.String() {
		t.Errorf("seed after regenerate = %s, expected %s", m.Level().Seed, next)
	}
	if m.Template() != "bumpy" {
		t.Errorf("regenerate should keep the template, got %q", m.Template())
	}
}

func TestModelSwitchTemplateKeepsSeed(t *testing.T) {
	seed := rng.Seed{3}
	m := NewModel(PreviewOptions{Template: "bumpy", Seed: seed})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Template() != registry.Next("bumpy") {
		t.Errorf("Template() after tab = %q, expected %q", m.Template(), registry.Next("bumpy"))
	}
	if m.Level().Seed != seed.String() {
		t.Error("switching templates should keep the seed")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Template() != "bumpy" {
		t.Errorf("Template() after shift+tab = %q, expected bumpy", m.Template())
	}
}

func TestModelSave(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(PreviewOptions{Template: "spiky", Seed: rng.Seed{4}, Store: store, SaveDir: dir})
	m, cmd := update(t, m, runeKey('s'))

	path := filepath.Join(dir, m.Level().Name+".yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved level missing: %v", err)
	}
	if !strings.HasPrefix(m.Status(), "saved ") {
		t.Errorf("Status() = %q, expected saved message", m.Status())
	}
	if cmd == nil {
		t.Error("save should schedule clearing the status")
	}

	gens, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(gens) != 1 || gens[0].OutputPath != path || gens[0].Template != "spiky" {
		t.Errorf("history = %+v, expected one record for %s", gens, path)
	}
}

func TestModelSaveRejectsBadTopology(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	// Segments of width 0.9 push the leftmost spike base past the floor vertex.
	file := config.DefaultTrackFile()
	file.Segments.Count = 50

	m := NewModel(PreviewOptions{File: &file, Seed: rng.Seed{4}, Store: store, SaveDir: dir})
	if m.Err() == nil || m.Level() == nil {
		t.Fatalf("expected a rejected level, err = %v", m.Err())
	}

	m, _ = update(t, m, runeKey('s'))
	if !strings.Contains(m.Status(), "not saved") {
		t.Errorf("Status() = %q, expected a refusal", m.Status())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			t.Errorf("rejected level written to %s", e.Name())
		}
	}

	gens, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(gens) != 0 {
		t.Errorf("history = %+v, expected no records", gens)
	}
}

func TestModelSaveDisabled(t *testing.T) {
	m := NewModel(PreviewOptions{Template: "spiky"})
	m, _ = update(t, m, runeKey('s'))

	if !strings.Contains(m.Status(), "disabled") {
		t.Errorf("Status() = %q, expected saving disabled", m.Status())
	}

	// A stale clear message must not wipe a newer status.
	m, _ = update(t, m, clearStatusMsg{id: m.statusID - 1})
	if m.Status() == "" {
		t.Error("stale clearStatusMsg cleared the status")
	}
	m, _ = update(t, m, clearStatusMsg{id: m.statusID})
	if m.Status() != "" {
		t.Error("clearStatusMsg should clear the status")
	}
}

func TestModelHelpAndQuit(t *testing.T) {
	m := NewModel(PreviewOptions{Template: "flat"})

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}

	m, cmd := update(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelViewLayout(t *testing.T) {
	m := NewModel(PreviewOptions{Template: "spiky", Seed: rng.Seed{5}, Width: 60, Height: 20})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 70, Height: 22})

	view := m.View()
	if !strings.Contains(view, "Spike Alley (spiky)") {
		t.Errorf("View() missing title:\n%s", view)
	}
	if !strings.Contains(view, "seed "+rng.Seed{5}.String()) {
		t.Error("View() should show the full seed")
	}
	if !strings.Contains(view, "P") || !strings.Contains(view, "E") {
		t.Error("View() should draw the objects")
	}
	if m.screen.Width() != 70 {
		t.Errorf("screen width = %d, expected 70", m.screen.Width())
	}
}

func TestModelInvalidConfig(t *testing.T) {
	file := config.DefaultTrackFile()
	file.Strategy = "zigzag"

	m := NewModel(PreviewOptions{File: &file, Width: 60, Height: 20})
	if m.Err() == nil {
		t.Fatal("Err() should report the invalid config")
	}
	if m.Level() != nil {
		t.Error("Level() should be nil without a valid config")
	}

	view := m.View()
	if !strings.Contains(view, "no level") || !strings.Contains(view, "┌") {
		t.Errorf("View() should frame an empty area:\n%s", view)
	}

	// Picking a template recovers.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Err() != nil || m.Level() == nil {
		t.Errorf("tab should load a template, err = %v", m.Err())
	}
}
