package track

import "github.com/vovakirdan/trackgen/internal/core"

// Dedup drops every vertex lying within DedupEpsilon on both axes of the
// previously kept vertex. The first of a run of near-coincident vertices
// survives. It reuses the backing array of vertices.
func Dedup(vertices []core.Position) []core.Position {
	if len(vertices) < 2 {
		return vertices
	}

	out := vertices[:1]
	for _, v := range vertices[1:] {
		if v.Near(out[len(out)-1], DedupEpsilon) {
			continue
		}
		out = append(out, v)
	}
	return out
}
