package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/trackgen/internal/core"
)

func objects() []Object {
	return []Object{
		{Position: core.Pos(1, 0.4), Type: ObjectPlayer},
		{Position: core.Pos(7, 0.4), Type: ObjectExit},
	}
}

func box(w, h float64) []core.Position {
	return []core.Position{core.Pos(0, 0), core.Pos(0, h), core.Pos(w, h), core.Pos(w, 0)}
}

func TestCheckTopology(t *testing.T) {
	tests := []struct {
		name     string
		polygons []Polygon
		objects  []Object
		code     string
	}{
		{
			name:     "valid box",
			polygons: []Polygon{{Vertices: box(10, 7)}},
			objects:  objects(),
		},
		{
			name:     "valid spiked floor",
			polygons: []Polygon{{Vertices: append(box(10, 7), core.Pos(8, 0), core.Pos(7, 1), core.Pos(6, 0), core.Pos(5, -0.3), core.Pos(4, 0))}},
			objects:  objects(),
		},
		{
			name:    "no polygons",
			objects: objects(),
			code:    CodeNoPolygons,
		},
		{
			name:     "two vertices",
			polygons: []Polygon{{Vertices: []core.Position{core.Pos(0, 0), core.Pos(1, 1)}}},
			objects:  objects(),
			code:     CodeTooFewVertices,
		},
		{
			name:     "repeated vertex",
			polygons: []Polygon{{Vertices: append(box(10, 7), core.Pos(10, 0))}},
			objects:  objects(),
			code:     CodeZeroLengthEdge,
		},
		{
			name: "bow tie",
			polygons: []Polygon{{Vertices: []core.Position{
				core.Pos(0, 0), core.Pos(4, 4), core.Pos(4, 0), core.Pos(0, 4),
			}}},
			objects: objects(),
			code:    CodeSelfIntersection,
		},
		{
			name:     "floor point past right wall",
			polygons: []Polygon{{Vertices: append(box(3, 7), core.Pos(4, 0))}},
			objects:  objects(),
			code:     CodeSelfIntersection,
		},
		{
			name:     "floor above ceiling",
			polygons: []Polygon{{Vertices: append(box(10, 7), core.Pos(6, 9), core.Pos(3, 0))}},
			objects:  objects(),
			code:     CodeSelfIntersection,
		},
		{
			name:     "missing player",
			polygons: []Polygon{{Vertices: box(10, 7)}},
			objects:  objects()[1:],
			code:     CodeMissingPlayer,
		},
		{
			name:     "two players",
			polygons: []Polygon{{Vertices: box(10, 7)}},
			objects:  append(objects(), Object{Type: ObjectPlayer}),
			code:     CodeMissingPlayer,
		},
		{
			name:     "missing exit",
			polygons: []Polygon{{Vertices: box(10, 7)}},
			objects:  objects()[:1],
			code:     CodeMissingExit,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckTopology(&Level{Polygons: tc.polygons, Objects: tc.objects})
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			var terr TopologyError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tc.code, terr.Code, terr.Message)
		})
	}
}

func TestSegmentsIntersect(t *testing.T) {
	p := core.Pos
	assert.True(t, segmentsIntersect(p(0, 0), p(2, 2), p(0, 2), p(2, 0)))
	assert.True(t, segmentsIntersect(p(0, 0), p(2, 0), p(1, 0), p(1, 3)), "T junction")
	assert.True(t, segmentsIntersect(p(0, 0), p(3, 0), p(2, 0), p(5, 0)), "collinear overlap")
	assert.False(t, segmentsIntersect(p(0, 0), p(1, 0), p(2, 0), p(3, 0)), "collinear apart")
	assert.False(t, segmentsIntersect(p(0, 0), p(1, 1), p(0, 1), p(0.4, 0.9)))
}

func TestLevelHelpers(t *testing.T) {
	l := &Level{
		Polygons: []Polygon{
			{Vertices: box(10, 7)},
			{Grass: true, Vertices: []core.Position{core.Pos(2, -1), core.Pos(3, 1), core.Pos(4, -1)}},
		},
		Objects: objects(),
	}

	assert.Equal(t, 7, l.VertexCount())
	assert.Equal(t, 1, l.CountObjects(ObjectPlayer))
	assert.Equal(t, 0, l.CountObjects(ObjectApple))

	b := l.Bounds()
	assert.Equal(t, core.Pos(0, -1), b.Min)
	assert.Equal(t, core.Pos(10, 7), b.Max)
}

func TestObjectTypeNames(t *testing.T) {
	for _, typ := range []ObjectType{ObjectExit, ObjectApple, ObjectKiller, ObjectPlayer} {
		got, err := ParseObjectType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	_, err := ParseObjectType("flower")
	assert.Error(t, err)
	assert.Equal(t, "ObjectType(42)", ObjectType(42).String())
}
