package level

import (
	"fmt"
	"math"

	"github.com/vovakirdan/trackgen/internal/core"
)

// Topology error codes.
const (
	CodeNoPolygons       = "NO_POLYGONS"
	CodeTooFewVertices   = "TOO_FEW_VERTICES"
	CodeZeroLengthEdge   = "ZERO_LENGTH_EDGE"
	CodeSelfIntersection = "SELF_INTERSECTION"
	CodeMissingPlayer    = "MISSING_PLAYER"
	CodeMissingExit      = "MISSING_EXIT"
)

// minEdgeLength is the shortest edge the engine accepts.
const minEdgeLength = 1e-9

// TopologyError describes why a level was rejected.
type TopologyError struct {
	Code    string
	Message string
}

func (e TopologyError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// CheckTopology validates the level:
//   - at least one polygon, each with at least three vertices
//   - no zero-length edges
//   - no polygon crosses or touches itself, and no edge doubles back
//   - exactly one player start and at least one exit
func CheckTopology(l *Level) error {
	if len(l.Polygons) == 0 {
		return TopologyError{CodeNoPolygons, "level has no polygons"}
	}

	for i, p := range l.Polygons {
		if err := checkPolygon(i, p); err != nil {
			return err
		}
	}

	if n := l.CountObjects(ObjectPlayer); n != 1 {
		return TopologyError{CodeMissingPlayer, fmt.Sprintf("level needs exactly one player start, has %d", n)}
	}
	if l.CountObjects(ObjectExit) == 0 {
		return TopologyError{CodeMissingExit, "level has no exit"}
	}
	return nil
}

func checkPolygon(idx int, p Polygon) error {
	v := p.Vertices
	n := len(v)
	if n < 3 {
		return TopologyError{CodeTooFewVertices, fmt.Sprintf("polygon %d has %d vertices", idx, n)}
	}

	for i := 0; i < n; i++ {
		a, b := v[i], v[(i+1)%n]
		if length(b.Sub(a)) < minEdgeLength {
			return TopologyError{CodeZeroLengthEdge, fmt.Sprintf("polygon %d: edge %d at %v has zero length", idx, i, a)}
		}
	}

	for i := 0; i < n; i++ {
		a1, a2 := v[i], v[(i+1)%n]
		for j := i + 1; j < n; j++ {
			b1, b2 := v[j], v[(j+1)%n]

			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				// Shared vertex is fine unless the second edge runs back
				// over the first.
				if backtracks(a1, a2, b1, b2, j == i+1) {
					return TopologyError{CodeSelfIntersection, fmt.Sprintf("polygon %d: edges %d and %d overlap", idx, i, j)}
				}
				continue
			}
			if segmentsIntersect(a1, a2, b1, b2) {
				return TopologyError{CodeSelfIntersection, fmt.Sprintf("polygon %d: edges %d and %d intersect near %v", idx, i, j, a1)}
			}
		}
	}
	return nil
}

// backtracks reports whether two edges sharing a vertex are collinear and
// point back into each other.
// consecutive is true when b directly follows a, false for the closing pair
// (b is the last edge, a the first).
func backtracks(a1, a2, b1, b2 core.Position, consecutive bool) bool {
	var shared, pa, pb core.Position
	if consecutive {
		shared, pa, pb = a2, a1, b2
	} else {
		shared, pa, pb = a1, a2, b1
	}
	da, db := pa.Sub(shared), pb.Sub(shared)
	return cross(da, db) == 0 && dot(da, db) > 0
}

// segmentsIntersect reports whether the closed segments p1p2 and q1q2 share
// a point. Based on orientation tests.
func segmentsIntersect(p1, p2, q1, q2 core.Position) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

func orient(a, b, c core.Position) float64 {
	return cross(b.Sub(a), c.Sub(a))
}

// onSegment assumes c is collinear with ab.
func onSegment(a, b, c core.Position) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}

func cross(a, b core.Position) float64 {
	return a.X*b.Y - a.Y*b.X
}

func dot(a, b core.Position) float64 {
	return a.X*b.X + a.Y*b.Y
}

func length(d core.Position) float64 {
	return math.Hypot(d.X, d.Y)
}
