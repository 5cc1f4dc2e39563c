// Package formats provides the level file formats trackgen writes and reads.
package formats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/trackgen/internal/core"
	"github.com/vovakirdan/trackgen/internal/level"
)

// YAMLLevel is the YAML structure of a level file.
type YAMLLevel struct {
	Name     string        `yaml:"name"`
	Seed     string        `yaml:"seed,omitempty"`
	Polygons []YAMLPolygon `yaml:"polygons"`
	Objects  []YAMLObject  `yaml:"objects"`
}

// YAMLPolygon is a polygon with [x, y] vertex pairs.
type YAMLPolygon struct {
	Grass    bool        `yaml:"grass,omitempty"`
	Vertices [][]float64 `yaml:"vertices,flow"`
}

// YAMLObject is a single object.
type YAMLObject struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// FormatExtensions returns the file extensions the YAML format handles.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// EncodeYAML serialises a level.
func EncodeYAML(l *level.Level) ([]byte, error) {
	doc := YAMLLevel{
		Name:     l.Name,
		Seed:     l.Seed,
		Polygons: make([]YAMLPolygon, 0, len(l.Polygons)),
		Objects:  make([]YAMLObject, 0, len(l.Objects)),
	}
	for _, p := range l.Polygons {
		yp := YAMLPolygon{Grass: p.Grass, Vertices: make([][]float64, len(p.Vertices))}
		for i, v := range p.Vertices {
			yp.Vertices[i] = []float64{v.X, v.Y}
		}
		doc.Polygons = append(doc.Polygons, yp)
	}
	for _, o := range l.Objects {
		doc.Objects = append(doc.Objects, YAMLObject{Type: o.Type.String(), X: o.Position.X, Y: o.Position.Y})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encoding level %q: %w", l.Name, err)
	}
	return data, nil
}

// ParseYAML parses level YAML data.
func ParseYAML(data []byte) (*level.Level, error) {
	var doc YAMLLevel
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	l := &level.Level{Name: doc.Name, Seed: doc.Seed}
	for pi, yp := range doc.Polygons {
		p := level.Polygon{Grass: yp.Grass, Vertices: make([]core.Position, len(yp.Vertices))}
		for i, v := range yp.Vertices {
			if len(v) != 2 {
				return nil, fmt.Errorf("polygon %d vertex %d: expected [x, y], got %d values", pi, i, len(v))
			}
			p.Vertices[i] = core.Pos(v[0], v[1])
		}
		l.Polygons = append(l.Polygons, p)
	}
	for i, yo := range doc.Objects {
		t, err := level.ParseObjectType(yo.Type)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		l.Objects = append(l.Objects, level.Object{Position: core.Pos(yo.X, yo.Y), Type: t})
	}
	return l, nil
}

// Save writes the level to path, creating parent directories. The format is
// chosen by extension.
func Save(path string, l *level.Level) error {
	if !supported(path) {
		return fmt.Errorf("unsupported level extension: %s", filepath.Ext(path))
	}

	data, err := EncodeYAML(l)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// Load reads a level file.
func Load(path string) (*level.Level, error) {
	if !supported(path) {
		return nil, fmt.Errorf("unsupported level extension: %s", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	l, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return l, nil
}

func supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range FormatExtensions() {
		if ext == e {
			return true
		}
	}
	return false
}
