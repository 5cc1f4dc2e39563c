package track

import (
	"github.com/vovakirdan/trackgen/internal/core"
	"github.com/vovakirdan/trackgen/internal/rng"
)

// maxWalkSteps bounds a walk whose XStep was never validated.
const maxWalkSteps = 1 << 20

// Walk appends a random-walk floor to dst, from (width-WalkInset, 0) towards
// the left clearance, and the closing vertex (WalkInset, 0). Every step draws
// an x decrement and then a y delta; y is bounded by the strategy's clamp
// policy. It returns the extended slice and the number of steps taken.
func Walk(dst []core.Position, width, height float64, s PointWalkStrategy, src rng.Source) ([]core.Position, int) {
	last := core.Pos(width-WalkInset, 0)
	appended := 0

	for last.X > InteriorStartX && appended < maxWalkSteps {
		dst = append(dst, last)
		appended++

		last.X -= src.Sample(s.XStep)
		last.Y += src.Sample(s.YDelta)
		last.Y = s.Clamp.Apply(height, last.Y)
	}

	// A walk that overshot the clearance also gives up its last vertex.
	// Landing exactly on InteriorStartX keeps it.
	if last.X < InteriorStartX && appended > 0 {
		dst = dst[:len(dst)-1]
	}

	dst = append(dst, core.Pos(WalkInset, 0))
	return dst, appended
}
