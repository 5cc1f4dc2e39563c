// Package rng provides the randomness source consumed by the track generator
// and the seed format used to reproduce a level.
//
// The generator never owns a source: callers create one per generation and
// pass it down explicitly, so the same seed always yields the same level.
package rng

import (
	"math"
	"math/rand/v2"
)

// Range is the half-open interval [Low, High).
type Range struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// R is shorthand for Range{Low: low, High: high}.
func R(low, high float64) Range {
	return Range{Low: low, High: high}
}

// Contains reports whether v lies in [Low, High).
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v < r.High
}

// Empty reports whether the interval has no members.
func (r Range) Empty() bool {
	return !(r.High > r.Low)
}

// Scale multiplies both bounds by f.
func (r Range) Scale(f float64) Range {
	return Range{Low: r.Low * f, High: r.High * f}
}

// Source yields uniform values over a range. Implementations are stateful and
// must be deterministic for a fixed internal state and draw order.
type Source interface {
	Sample(r Range) float64
}

// Rand is a Source backed by a ChaCha8 stream.
type Rand struct {
	seed Seed
	r    *rand.Rand
}

// New creates a source seeded with seed.
func New(seed Seed) *Rand {
	return &Rand{
		seed: seed,
		r:    rand.New(rand.NewChaCha8(seed)),
	}
}

// Seed returns the seed the source was created with.
func (g *Rand) Seed() Seed {
	return g.seed
}

// Sample returns a uniform value in [r.Low, r.High).
// An empty range yields r.Low without consuming the stream.
func (g *Rand) Sample(r Range) float64 {
	if r.Empty() {
		return r.Low
	}
	v := r.Low + g.r.Float64()*(r.High-r.Low)
	// Rounding can land exactly on High for wide ranges.
	if v >= r.High {
		v = math.Nextafter(r.High, r.Low)
	}
	return v
}

// Recorder wraps a Source and keeps every value it hands out.
type Recorder struct {
	src   Source
	draws []float64
}

// NewRecorder wraps src.
func NewRecorder(src Source) *Recorder {
	return &Recorder{src: src}
}

// Sample draws from the wrapped source and records the value.
func (rec *Recorder) Sample(r Range) float64 {
	v := rec.src.Sample(r)
	rec.draws = append(rec.draws, v)
	return v
}

// Draws returns the recorded values in draw order.
func (rec *Recorder) Draws() []float64 {
	return rec.draws
}

// Len returns the number of draws so far.
func (rec *Recorder) Len() int {
	return len(rec.draws)
}

// Sequence is a Source that replays fixed fractions in [0, 1), mapping each
// onto the requested range. It wraps around when exhausted.
type Sequence struct {
	fractions []float64
	next      int
}

// NewSequence creates a replaying source. With no fractions every draw
// returns the low bound.
func NewSequence(fractions ...float64) *Sequence {
	return &Sequence{fractions: fractions}
}

// Sample maps the next fraction onto r.
func (s *Sequence) Sample(r Range) float64 {
	if len(s.fractions) == 0 {
		return r.Low
	}
	f := s.fractions[s.next%len(s.fractions)]
	s.next++
	return r.Low + f*(r.High-r.Low)
}
