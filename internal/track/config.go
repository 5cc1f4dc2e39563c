// Package track generates the boundary polygon and start/finish objects of a
// single-track level.
//
// A Config selects exactly one Strategy. Generation always starts from the
// rectangular envelope built by Boundary, lets the strategy append its floor
// vertices, collapses near-coincident vertices with Dedup and finally places
// the Player and Exit objects. The only input besides the Config is an
// rng.Source, which is borrowed for the duration of one call.
package track

import (
	"fmt"

	"github.com/vovakirdan/trackgen/internal/core"
	"github.com/vovakirdan/trackgen/internal/rng"
)

// Fixed layout of the track interior.
const (
	// InteriorStartX is the left clearance boundary; no obstacle starts left of it.
	InteriorStartX = 3.0
	// EndCap is the clearance kept free of spikes at the right wall.
	EndCap = 2.0
	// SpikeFloorX is the floor vertex closing a spiked floor.
	SpikeFloorX = 4.0
	// WalkInset is the distance from the right wall where a walk starts,
	// and the x of the vertex that closes it.
	WalkInset = 3.0
	// DedupEpsilon is the per-axis tolerance under which consecutive
	// vertices are merged.
	DedupEpsilon = 0.005
	// MinDimension is the width/height below which the interior degenerates.
	MinDimension = 6.0
)

// Config describes one track.
type Config struct {
	Width    float64
	Height   float64
	Strategy Strategy
	Objects  ObjectParams
}

// ObjectParams positions the start and finish objects.
type ObjectParams struct {
	// BaseHeight is added to the object radius to get the objects' y.
	BaseHeight float64
}

// Strategy is the floor generation strategy of a Config. The set of
// strategies is closed: SegmentStrategy and PointWalkStrategy.
type Strategy interface {
	// Name returns the strategy identifier used in config files.
	Name() string
	strategy()
}

// Strategy names as used in config files and the history store.
const (
	StrategySegments = "segments"
	StrategyWalk     = "walk"
)

// SegmentStrategy splits the interior into equal segments, one spike each.
type SegmentStrategy struct {
	// SegmentCount is the number of segments. It is a real number because
	// the segment width is derived from it by division.
	SegmentCount float64
	// SpikeHeight is the range the apex y of every spike is drawn from.
	// Negative values dip below the floor.
	SpikeHeight rng.Range
}

// Name implements Strategy.
func (SegmentStrategy) Name() string { return StrategySegments }

func (SegmentStrategy) strategy() {}

// PointWalkStrategy walks from the right wall to the left clearance with
// random steps.
type PointWalkStrategy struct {
	// XStep is the range of the x decrement per step. Low must be positive.
	XStep rng.Range
	// YDelta is the range of the vertical displacement per step.
	YDelta rng.Range
	// Clamp bounds every proposed y.
	Clamp ClampPolicy
}

// Name implements Strategy.
func (PointWalkStrategy) Name() string { return StrategyWalk }

func (PointWalkStrategy) strategy() {}

// ClampKind selects how a walk bounds its y-coordinates.
type ClampKind int

const (
	// ClampSymmetric bounds y to [-(height-margin), height-margin].
	ClampSymmetric ClampKind = iota
	// ClampFloor bounds y to [0, height-margin].
	ClampFloor
	// ClampNone leaves y unbounded.
	ClampNone
)

var clampNames = map[ClampKind]string{
	ClampSymmetric: "symmetric",
	ClampFloor:     "floor",
	ClampNone:      "none",
}

// String returns the config-file name of the clamp kind.
func (k ClampKind) String() string {
	if name, ok := clampNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ClampKind(%d)", int(k))
}

// ParseClampKind parses a clamp kind name. The empty string means symmetric.
func ParseClampKind(s string) (ClampKind, error) {
	if s == "" {
		return ClampSymmetric, nil
	}
	for k, name := range clampNames {
		if name == s {
			return k, nil
		}
	}
	return ClampSymmetric, fmt.Errorf("unknown clamp policy %q", s)
}

// DefaultClampMargin keeps a walk this far below the ceiling.
const DefaultClampMargin = 3.0

// ClampPolicy bounds the y-coordinates of a walk.
type ClampPolicy struct {
	Kind   ClampKind
	Margin float64
}

// DefaultClamp returns the symmetric policy with the default margin.
func DefaultClamp() ClampPolicy {
	return ClampPolicy{Kind: ClampSymmetric, Margin: DefaultClampMargin}
}

// Bounds returns the interval the policy clamps to for a track of the given
// height. ok is false for ClampNone.
func (p ClampPolicy) Bounds(height float64) (lo, hi float64, ok bool) {
	limit := max(height-p.Margin, 0)
	switch p.Kind {
	case ClampSymmetric:
		return -limit, limit, true
	case ClampFloor:
		return 0, limit, true
	default:
		return 0, 0, false
	}
}

// Apply bounds a proposed y.
func (p ClampPolicy) Apply(height, y float64) float64 {
	lo, hi, ok := p.Bounds(height)
	if !ok {
		return y
	}
	return core.ClampF(y, lo, hi)
}

// ValidationError reports an invalid Config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("track: %s %s", e.Field, e.Message)
}

// Validate checks the Config at the configuration boundary. Generate does not
// call it: a degenerate but well-formed config still generates a (trivial)
// track.
func (c Config) Validate() error {
	if !(c.Width > 0) {
		return ValidationError{"width", "must be positive"}
	}
	if !(c.Height > 0) {
		return ValidationError{"height", "must be positive"}
	}

	switch s := c.Strategy.(type) {
	case SegmentStrategy:
		if !(s.SegmentCount > 0) {
			return ValidationError{"segments.count", "must be positive"}
		}
		if s.SpikeHeight.Empty() {
			return ValidationError{"segments.spike_height", "must be a non-empty range"}
		}
	case PointWalkStrategy:
		if !(s.XStep.Low > 0) {
			return ValidationError{"walk.x_step.low", "must be positive"}
		}
		if s.XStep.Empty() {
			return ValidationError{"walk.x_step", "must be a non-empty range"}
		}
		if s.YDelta.Empty() {
			return ValidationError{"walk.y_delta", "must be a non-empty range"}
		}
		if s.Clamp.Margin < 0 {
			return ValidationError{"walk.clamp_margin", "must not be negative"}
		}
	case nil:
		return ValidationError{"strategy", "is required"}
	}
	return nil
}

// Degenerate reports whether the interior span is too small to hold any
// obstacles. Such configs generate a flat track.
func (c Config) Degenerate() bool {
	return c.Width <= MinDimension || c.Height <= MinDimension
}
