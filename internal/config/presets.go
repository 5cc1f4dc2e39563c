package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/trackgen/internal/track"
)

// Preset is a named roughness level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the known presets from gentlest to roughest.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetNormal, PresetHard}
}

// ParsePreset parses a preset name. The empty string means normal.
func ParsePreset(s string) (Preset, error) {
	if s == "" {
		return PresetNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return PresetNormal, fmt.Errorf("config: unknown preset %q (want easy, normal or hard)", s)
}

// ScaleForPreset returns the factor spike heights and walk deltas are
// multiplied by.
func ScaleForPreset(p Preset) float64 {
	switch p {
	case PresetEasy:
		return 0.5
	case PresetHard:
		return 1.6
	default:
		return 1.0
	}
}

// hardCountFactor is how many more segments a hard track asks for.
const hardCountFactor = 1.25

// ApplyPreset scales the obstacle ranges of cfg. Hard tracks also get
// narrower segments so spikes sit closer together.
func ApplyPreset(cfg *TrackFile, p Preset) {
	f := ScaleForPreset(p)
	cfg.Segments.SpikeHeight = cfg.Segments.SpikeHeight.Scale(f)
	cfg.Walk.YDelta = cfg.Walk.YDelta.Scale(f)

	if p == PresetHard {
		cfg.Segments.Count = hardSegmentCount(cfg.Width, cfg.Segments.Count)
	}
}

// hardSegmentCount raises count by hardCountFactor, backing off one segment
// at a time until the leftmost spike base lies strictly right of the closing
// floor vertex. It returns count unchanged when no larger count fits.
func hardSegmentCount(width, count float64) float64 {
	for n := math.Floor(count * hardCountFactor); n > count; n-- {
		centers, w := track.SpikeCenters(width, n)
		if len(centers) == 0 {
			return count
		}
		if centers[len(centers)-1]-w/2 > track.SpikeFloorX {
			return n
		}
	}
	return count
}
