package track

import "github.com/vovakirdan/trackgen/internal/core"

// Boundary returns the four corners of the track envelope: the left wall
// bottom to top, then the right wall top to bottom.
func Boundary(width, height float64) []core.Position {
	return []core.Position{
		core.Pos(0, 0),
		core.Pos(0, height),
		core.Pos(width, height),
		core.Pos(width, 0),
	}
}
