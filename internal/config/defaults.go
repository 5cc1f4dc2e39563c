package config

import (
	_ "embed"

	"github.com/vovakirdan/trackgen/internal/rng"
	"github.com/vovakirdan/trackgen/internal/track"
)

//go:embed defaults/track.yaml
var defaultTrackYAML []byte

// DefaultTrackFile returns the built-in track configuration. It matches the
// embedded defaults/track.yaml.
func DefaultTrackFile() TrackFile {
	return TrackFile{
		Width:    50,
		Height:   7,
		Strategy: track.StrategySegments,
		Segments: SegmentsConfig{
			Count:       40,
			SpikeHeight: rng.R(-0.4, 1.0),
		},
		Walk: WalkConfig{
			XStep:       rng.R(0.1, 1.2),
			YDelta:      rng.R(-0.5, 0.7),
			Clamp:       track.ClampSymmetric.String(),
			ClampMargin: track.DefaultClampMargin,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTrackYAML
}
