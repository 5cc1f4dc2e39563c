// Package app wires configuration, generation and validation into the single
// pipeline shared by the CLI commands and the preview viewer.
package app

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/trackgen/internal/config"
	"github.com/vovakirdan/trackgen/internal/level"
	"github.com/vovakirdan/trackgen/internal/registry"
	"github.com/vovakirdan/trackgen/internal/rng"
	"github.com/vovakirdan/trackgen/internal/storage"
	"github.com/vovakirdan/trackgen/internal/track"
)

// Request describes one generation.
type Request struct {
	File     config.TrackFile
	Template string // registry ID, empty when File came from a config file
	Seed     rng.Seed
}

// Output is a generated and topology-checked level.
type Output struct {
	Request
	Track  track.Config
	Result track.Result
	Level  *level.Level
}

// TemplateFile returns the config of a registered template with preset applied.
func TemplateFile(id string, preset config.Preset) (config.TrackFile, error) {
	tmpl, err := registry.Create(id)
	if err != nil {
		return config.TrackFile{}, err
	}
	file := tmpl.TrackFile()
	config.ApplyPreset(&file, preset)
	return file, nil
}

// Build validates the request's config, generates the level and checks its
// topology. A topology failure returns the output together with the error so
// callers can still show what was generated.
func Build(req Request) (*Output, error) {
	cfg, err := req.File.ToTrack()
	if err != nil {
		return nil, err
	}

	res := track.Generate(cfg, rng.New(req.Seed))
	out := &Output{
		Request: req,
		Track:   cfg,
		Result:  res,
		Level:   res.Level(req.Name(), req.Seed),
	}

	if err := level.CheckTopology(out.Level); err != nil {
		return out, fmt.Errorf("level: topology check failed: %w", err)
	}
	return out, nil
}

// Name is the level name derived from the template and a hash of the whole
// seed.
func (r Request) Name() string {
	prefix := r.Template
	if prefix == "" {
		prefix = "track"
	}
	return fmt.Sprintf("%s-%s", prefix, seedTag(r.Seed))
}

// seedTag is an 8-digit FNV-1a digest of every seed byte.
func seedTag(s rng.Seed) string {
	h := fnv.New32a()
	h.Write(s[:])
	return fmt.Sprintf("%08x", h.Sum32())
}

// Generation converts the output into a history record.
func (o *Output) Generation(outputPath string) storage.Generation {
	return storage.Generation{
		Seed:        o.Seed.String(),
		Template:    o.Template,
		Strategy:    o.Result.Stats.Strategy,
		Width:       o.Track.Width,
		Height:      o.Track.Height,
		VertexCount: o.Level.VertexCount(),
		SpikeCount:  o.Result.Stats.Spikes,
		OutputPath:  outputPath,
	}
}
