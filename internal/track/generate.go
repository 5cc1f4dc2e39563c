package track

import (
	"github.com/vovakirdan/trackgen/internal/level"
	"github.com/vovakirdan/trackgen/internal/rng"
)

// Stats summarises one generation.
type Stats struct {
	Strategy    string
	Spikes      int // spikes emitted by a segment strategy
	Steps       int // vertices emitted by a walk strategy
	RawVertices int // vertices before Dedup
	Vertices    int // vertices after Dedup
}

// Result is the output handed to the level assembler.
type Result struct {
	Polygons []level.Polygon
	Objects  []level.Object
	Stats    Stats
}

// Generate builds the track polygon and objects for cfg, drawing all
// randomness from src. Identical configs and source states give identical
// results.
func Generate(cfg Config, src rng.Source) Result {
	vertices := Boundary(cfg.Width, cfg.Height)
	var stats Stats

	switch s := cfg.Strategy.(type) {
	case SegmentStrategy:
		stats.Strategy = s.Name()
		vertices, stats.Spikes = Spikes(vertices, cfg.Width, s, src)
	case PointWalkStrategy:
		stats.Strategy = s.Name()
		vertices, stats.Steps = Walk(vertices, cfg.Width, cfg.Height, s, src)
	}

	stats.RawVertices = len(vertices)
	vertices = Dedup(vertices)
	stats.Vertices = len(vertices)

	return Result{
		Polygons: []level.Polygon{{Grass: false, Vertices: vertices}},
		Objects:  PlaceObjects(cfg),
		Stats:    stats,
	}
}

// Level assembles the result into a named level.
func (r Result) Level(name string, seed rng.Seed) *level.Level {
	return &level.Level{
		Name:     name,
		Seed:     seed.String(),
		Polygons: r.Polygons,
		Objects:  r.Objects,
	}
}
