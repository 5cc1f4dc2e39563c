// Package config provides YAML-based track configuration loading and the
// roughness presets that tune a track before generation.
package config

import (
	"fmt"

	"github.com/vovakirdan/trackgen/internal/rng"
	"github.com/vovakirdan/trackgen/internal/track"
)

// TrackFile is the on-disk shape of a track configuration.
type TrackFile struct {
	Width    float64        `yaml:"width"`
	Height   float64        `yaml:"height"`
	Strategy string         `yaml:"strategy"` // "segments" or "walk"
	Segments SegmentsConfig `yaml:"segments"`
	Walk     WalkConfig     `yaml:"walk"`
	Objects  ObjectsConfig  `yaml:"objects"`
}

// SegmentsConfig holds the parameters of the spike strategy.
type SegmentsConfig struct {
	Count       float64   `yaml:"count"`
	SpikeHeight rng.Range `yaml:"spike_height"`
}

// WalkConfig holds the parameters of the random-walk strategy.
type WalkConfig struct {
	XStep       rng.Range `yaml:"x_step"`
	YDelta      rng.Range `yaml:"y_delta"`
	Clamp       string    `yaml:"clamp"` // "symmetric", "floor" or "none"
	ClampMargin float64   `yaml:"clamp_margin"`
}

// ObjectsConfig positions the start and finish objects.
type ObjectsConfig struct {
	BaseHeight float64 `yaml:"base_height"`
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Message)
}

// ToTrack converts the file into a validated track.Config.
func (f TrackFile) ToTrack() (track.Config, error) {
	cfg := track.Config{
		Width:   f.Width,
		Height:  f.Height,
		Objects: track.ObjectParams{BaseHeight: f.Objects.BaseHeight},
	}

	switch f.Strategy {
	case track.StrategySegments, "":
		cfg.Strategy = track.SegmentStrategy{
			SegmentCount: f.Segments.Count,
			SpikeHeight:  f.Segments.SpikeHeight,
		}
	case track.StrategyWalk:
		kind, err := track.ParseClampKind(f.Walk.Clamp)
		if err != nil {
			return cfg, ValidationError{"walk.clamp", err.Error()}
		}
		cfg.Strategy = track.PointWalkStrategy{
			XStep:  f.Walk.XStep,
			YDelta: f.Walk.YDelta,
			Clamp:  track.ClampPolicy{Kind: kind, Margin: f.Walk.ClampMargin},
		}
	default:
		return cfg, ValidationError{"strategy", fmt.Sprintf("must be %q or %q, got %q", track.StrategySegments, track.StrategyWalk, f.Strategy)}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
