package track

import (
	"github.com/vovakirdan/trackgen/internal/core"
	"github.com/vovakirdan/trackgen/internal/rng"
)

// SpikeCenters returns the x of every spike center for a track of the given
// width, in decreasing order, and the segment width.
//
// Centers are found by stepping down from the rightmost segment center while
// still right of InteriorStartX; the last center found is dropped so no spike
// crowds the left clearance.
func SpikeCenters(width, segmentCount float64) (centers []float64, segmentWidth float64) {
	startX := InteriorStartX
	endX := width - EndCap
	if endX <= startX || !(segmentCount > 0) {
		return nil, 0
	}

	segmentWidth = (endX - startX) / segmentCount
	// Repeated subtraction, not multiplication: centers must match the
	// accumulated values bit for bit across versions.
	for c := endX - segmentWidth/2; c > startX; c -= segmentWidth {
		centers = append(centers, c)
	}
	if len(centers) > 0 {
		centers = centers[:len(centers)-1]
	}
	return centers, segmentWidth
}

// Spikes appends one triangular spike per center to dst, followed by the
// closing floor vertex. It draws exactly one apex height per spike, in
// center order. It returns the extended slice and the number of spikes.
func Spikes(dst []core.Position, width float64, s SegmentStrategy, src rng.Source) ([]core.Position, int) {
	centers, w := SpikeCenters(width, s.SegmentCount)
	half := w / 2

	for _, c := range centers {
		apex := src.Sample(s.SpikeHeight)
		dst = append(dst,
			core.Pos(c+half, 0),
			core.Pos(c, apex),
			core.Pos(c-half, 0),
		)
	}
	dst = append(dst, core.Pos(SpikeFloorX, 0))
	return dst, len(centers)
}
