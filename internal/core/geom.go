// Package core provides fundamental types shared by the track generator, the
// level model and the terminal preview. It has no external dependencies so
// the geometry code stays pure and testable.
package core

import (
	"fmt"
	"math"
)

// Position is a point in level space. Y grows upwards from the track floor.
type Position struct {
	X, Y float64
}

// Pos creates a new position.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Sub returns p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Near reports whether both coordinates of p and o differ by less than eps.
func (p Position) Near(o Position, eps float64) bool {
	return math.Abs(p.X-o.X) < eps && math.Abs(p.Y-o.Y) < eps
}

// String formats the position with three decimals.
func (p Position) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

// Bounds is an axis-aligned bounding box in level space.
type Bounds struct {
	Min, Max Position
}

// BoundsOf returns the bounding box of the given points.
// An empty slice yields a zero Bounds.
func BoundsOf(points []Position) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Union returns the smallest box containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: Position{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: Position{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Rect represents an axis-aligned box of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
