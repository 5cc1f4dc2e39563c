package main

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/trackgen/internal/app"
	"github.com/vovakirdan/trackgen/internal/config"
	"github.com/vovakirdan/trackgen/internal/rng"
	"github.com/vovakirdan/trackgen/internal/track"
)

// buildRequest resolves the seed and track config of a run from the global
// flags and the command's --template and --strategy values.
func buildRequest(template, strategy string) (app.Request, error) {
	seed, err := rng.Resolve(flagSeed)
	if err != nil {
		return app.Request{}, fmt.Errorf("invalid seed: %w", err)
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return app.Request{}, err
	}

	var file config.TrackFile
	switch {
	case template != "" && flagConfig != "":
		return app.Request{}, errors.New("use either --template or --config, not both")

	case template != "":
		file, err = app.TemplateFile(template, preset)
		if err != nil {
			return app.Request{}, err
		}
		logger.Debug("using template", "template", template, "preset", preset)

	default:
		var source string
		file, source, err = config.Load(flagConfig)
		if err != nil {
			return app.Request{}, err
		}
		config.ApplyPreset(&file, preset)
		logger.Debug("loaded config", "source", source, "preset", preset)
	}

	if strategy != "" {
		if strategy != track.StrategySegments && strategy != track.StrategyWalk {
			return app.Request{}, fmt.Errorf("unknown strategy %q (want %s or %s)", strategy, track.StrategySegments, track.StrategyWalk)
		}
		file.Strategy = strategy
	}

	return app.Request{File: file, Template: template, Seed: seed}, nil
}

// build runs the generator and logs a degenerate config. Topology failures
// are returned with the partial output.
func build(req app.Request) (*app.Output, error) {
	out, err := app.Build(req)
	if out != nil && out.Track.Degenerate() {
		logger.Warn("track is too small for obstacles",
			"width", out.Track.Width,
			"height", out.Track.Height,
		)
	}
	return out, err
}
