package track

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/trackgen/internal/core"
	"github.com/vovakirdan/trackgen/internal/level"
	"github.com/vovakirdan/trackgen/internal/rng"
)

func seedFor(t *testing.T, b byte) rng.Seed {
	t.Helper()
	var s rng.Seed
	for i := range s {
		s[i] = b + byte(i)
	}
	return s
}

func spikeConfig() Config {
	return Config{
		Width:  50,
		Height: 7,
		Strategy: SegmentStrategy{
			SegmentCount: 40,
			SpikeHeight:  rng.R(-0.4, 1.0),
		},
	}
}

func walkConfig() Config {
	return Config{
		Width:  50,
		Height: 7,
		Strategy: PointWalkStrategy{
			XStep:  rng.R(0.1, 1.2),
			YDelta: rng.R(-0.5, 0.7),
			Clamp:  DefaultClamp(),
		},
	}
}

func TestBoundary(t *testing.T) {
	assert.Equal(t, []core.Position{
		core.Pos(0, 0), core.Pos(0, 7), core.Pos(50, 7), core.Pos(50, 0),
	}, Boundary(50, 7))
}

func TestGenerateStartsWithBoundary(t *testing.T) {
	for _, cfg := range []Config{spikeConfig(), walkConfig(), {Width: 12.5, Height: 9}} {
		res := Generate(cfg, rng.New(seedFor(t, 1)))
		require.Len(t, res.Polygons, 1)

		v := res.Polygons[0].Vertices
		require.GreaterOrEqual(t, len(v), 4)
		assert.Equal(t, Boundary(cfg.Width, cfg.Height), v[:4])
		assert.False(t, res.Polygons[0].Grass)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, cfg := range []Config{spikeConfig(), walkConfig()} {
		a := Generate(cfg, rng.New(seedFor(t, 7)))
		b := Generate(cfg, rng.New(seedFor(t, 7)))
		assert.Equal(t, a, b)

		c := Generate(cfg, rng.New(seedFor(t, 8)))
		assert.NotEqual(t, a.Polygons, c.Polygons)
	}
}

func TestSpikeCenters(t *testing.T) {
	centers, w := SpikeCenters(50, 40)
	assert.InDelta(t, 1.125, w, 1e-12)
	assert.Len(t, centers, 39)

	assert.InDelta(t, 48-w/2, centers[0], 1e-12)
	for i := 1; i < len(centers); i++ {
		assert.Less(t, centers[i], centers[i-1])
	}
	assert.Greater(t, centers[len(centers)-1], InteriorStartX)
}

func TestSpikeCentersCount(t *testing.T) {
	tests := []struct {
		count    float64
		expected int
	}{
		{40, 39},
		{20, 19},
		{44, 43},
		{7.2, 6},
		{12.25, 11},
		// Past half a segment the stepping admits one center more than
		// floor(count) would.
		{7.8, 7},
	}

	for _, tc := range tests {
		centers, _ := SpikeCenters(50, tc.count)
		assert.Len(t, centers, tc.expected, "segment count %v", tc.count)
	}
}

func TestSpikeCentersDegenerate(t *testing.T) {
	tests := []struct {
		name         string
		width, count float64
	}{
		{"end before start", 5, 40},
		{"end equals start", 5, 1},
		{"zero segments", 50, 0},
		{"negative segments", 50, -3},
		{"single segment", 50, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			centers, _ := SpikeCenters(tc.width, tc.count)
			assert.Empty(t, centers)
		})
	}

	centers, _ := SpikeCenters(50, 2)
	assert.Len(t, centers, 1, "two segments keep one spike")
}

func TestSpikesScenario(t *testing.T) {
	cfg := spikeConfig()
	s := cfg.Strategy.(SegmentStrategy)
	rec := rng.NewRecorder(rng.New(seedFor(t, 3)))

	v, n := Spikes(Boundary(cfg.Width, cfg.Height), cfg.Width, s, rec)

	assert.Equal(t, 39, n)
	assert.Len(t, v, 4+3*n+1)
	assert.Equal(t, n, rec.Len(), "one draw per spike")
	assert.Equal(t, core.Pos(SpikeFloorX, 0), v[len(v)-1])

	for k := 0; k < n; k++ {
		right, apex, left := v[4+3*k], v[4+3*k+1], v[4+3*k+2]
		assert.Zero(t, right.Y)
		assert.Zero(t, left.Y)
		assert.True(t, s.SpikeHeight.Contains(apex.Y), "apex %d = %v", k, apex.Y)
		assert.Equal(t, rec.Draws()[k], apex.Y, "apex draws follow center order")
		assert.InDelta(t, 1.125, right.X-left.X, 1e-9)
	}
}

func TestSpikesDegenerate(t *testing.T) {
	src := rng.NewRecorder(rng.New(seedFor(t, 3)))
	v, n := Spikes(Boundary(5, 7), 5, SegmentStrategy{SegmentCount: 40, SpikeHeight: rng.R(0, 1)}, src)

	assert.Zero(t, n)
	assert.Zero(t, src.Len())
	assert.Equal(t, append(Boundary(5, 7), core.Pos(SpikeFloorX, 0)), v)
}

func TestGenerateSpikeScenario(t *testing.T) {
	res := Generate(spikeConfig(), rng.New(seedFor(t, 11)))

	assert.Equal(t, StrategySegments, res.Stats.Strategy)
	assert.Equal(t, 4+3*res.Stats.Spikes+1, res.Stats.RawVertices)
	// Adjacent spike bases coincide and merge.
	assert.Equal(t, res.Stats.RawVertices-(res.Stats.Spikes-1), res.Stats.Vertices)

	require.Len(t, res.Objects, 2)
	assert.Equal(t, level.Object{Position: core.Pos(1, 0.4), Type: level.ObjectPlayer}, res.Objects[0])
	assert.Equal(t, level.Object{Position: core.Pos(47, 0.4), Type: level.ObjectExit}, res.Objects[1])
}

func TestWalkScenario(t *testing.T) {
	cfg := walkConfig()
	s := cfg.Strategy.(PointWalkStrategy)

	for b := byte(0); b < 20; b++ {
		v, steps := Walk(nil, cfg.Width, cfg.Height, s, rng.New(seedFor(t, b)))
		require.NotEmpty(t, v)
		assert.Equal(t, core.Pos(WalkInset, 0), v[len(v)-1])

		walked := v[:len(v)-1]
		assert.True(t, len(walked) == steps || len(walked) == steps-1)
		assert.Equal(t, core.Pos(47, 0), walked[0])
		for i, p := range walked {
			assert.GreaterOrEqual(t, p.X, InteriorStartX-1.2)
			assert.LessOrEqual(t, math.Abs(p.Y), cfg.Height-DefaultClampMargin)
			if i > 0 {
				assert.Less(t, p.X, walked[i-1].X, "x must strictly decrease")
			}
		}
	}
}

func TestWalkDrawOrder(t *testing.T) {
	s := PointWalkStrategy{XStep: rng.R(1, 2), YDelta: rng.R(-0.5, 0.7), Clamp: DefaultClamp()}
	// x draws take fraction 0 (step 1), y draws 0.5 (delta 0.1).
	v, steps := Walk(nil, 10, 7, s, rng.NewSequence(0, 0.5))

	assert.Equal(t, 4, steps)
	require.Len(t, v, 5)
	assert.Equal(t, 7.0, v[0].X)
	assert.Equal(t, 6.0, v[1].X)
	assert.InDelta(t, 0.1, v[1].Y, 1e-12)
	assert.InDelta(t, 0.3, v[3].Y, 1e-12)
	// The walk landed exactly on the clearance: nothing is dropped.
	assert.Equal(t, 4.0, v[3].X)
	assert.Equal(t, core.Pos(3, 0), v[4])
}

func TestWalkOvershootDropsLastPoint(t *testing.T) {
	s := PointWalkStrategy{XStep: rng.R(1.5, 2), YDelta: rng.R(0, 1), Clamp: DefaultClamp()}
	// 7 -> 5.5 -> 4 -> 2.5; the point at 4 is dropped.
	v, steps := Walk(nil, 10, 7, s, rng.NewSequence(0))

	assert.Equal(t, 3, steps)
	assert.Equal(t, []core.Position{core.Pos(7, 0), core.Pos(5.5, 0), core.Pos(3, 0)}, v)
}

func TestWalkDegenerate(t *testing.T) {
	s := PointWalkStrategy{XStep: rng.R(0.1, 1.2), YDelta: rng.R(-0.5, 0.7), Clamp: DefaultClamp()}
	src := rng.NewRecorder(rng.New(seedFor(t, 0)))

	v, steps := Walk(Boundary(5.5, 7), 5.5, 7, s, src)

	assert.Zero(t, steps)
	assert.Zero(t, src.Len())
	assert.Equal(t, append(Boundary(5.5, 7), core.Pos(3, 0)), v)
}

func TestWalkClamp(t *testing.T) {
	tests := []struct {
		name   string
		clamp  ClampPolicy
		delta  rng.Range
		lo, hi float64
	}{
		{"symmetric up", DefaultClamp(), rng.R(5, 6), -4, 4},
		{"symmetric down", DefaultClamp(), rng.R(-6, -5), -4, 4},
		{"floor", ClampPolicy{Kind: ClampFloor, Margin: 3}, rng.R(-6, -5), 0, 4},
		{"wide margin", ClampPolicy{Kind: ClampSymmetric, Margin: 1}, rng.R(5, 6), -6, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := PointWalkStrategy{XStep: rng.R(1, 2), YDelta: tc.delta, Clamp: tc.clamp}
			v, _ := Walk(nil, 20, 7, s, rng.New(seedFor(t, 5)))
			for _, p := range v[1 : len(v)-1] {
				assert.GreaterOrEqual(t, p.Y, tc.lo)
				assert.LessOrEqual(t, p.Y, tc.hi)
			}
			last := v[len(v)-2]
			assert.True(t, last.Y == tc.lo || last.Y == tc.hi, "walk should be pinned, y=%v", last.Y)
		})
	}

	assert.Equal(t, 12.0, ClampPolicy{Kind: ClampNone}.Apply(7, 12))
}

func TestGenerateWalkScenario(t *testing.T) {
	for b := byte(0); b < 10; b++ {
		res := Generate(walkConfig(), rng.New(seedFor(t, b)))
		v := res.Polygons[0].Vertices

		assert.Equal(t, StrategyWalk, res.Stats.Strategy)
		assert.Equal(t, core.Pos(3, 0), v[len(v)-1])
		for _, p := range v[4 : len(v)-1] {
			assert.GreaterOrEqual(t, p.X, 3.0-1.2)
		}
	}
}

func TestDedup(t *testing.T) {
	tests := []struct {
		name     string
		in, want []core.Position
	}{
		{"empty", nil, nil},
		{"single", []core.Position{core.Pos(1, 1)}, []core.Position{core.Pos(1, 1)}},
		{
			"merges consecutive",
			[]core.Position{core.Pos(0, 0), core.Pos(0.004, -0.004), core.Pos(1, 0)},
			[]core.Position{core.Pos(0, 0), core.Pos(1, 0)},
		},
		{
			"compares against kept vertex",
			[]core.Position{core.Pos(0, 0), core.Pos(0.004, 0), core.Pos(0.008, 0)},
			[]core.Position{core.Pos(0, 0), core.Pos(0.008, 0)},
		},
		{
			"one axis apart is kept",
			[]core.Position{core.Pos(0, 0), core.Pos(0.001, 0.01)},
			[]core.Position{core.Pos(0, 0), core.Pos(0.001, 0.01)},
		},
		{
			"non-consecutive duplicates kept",
			[]core.Position{core.Pos(0, 0), core.Pos(1, 1), core.Pos(0, 0)},
			[]core.Position{core.Pos(0, 0), core.Pos(1, 1), core.Pos(0, 0)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Dedup(tc.in))
		})
	}
}

func TestDedupOutputHasNoNearNeighbours(t *testing.T) {
	for _, cfg := range []Config{spikeConfig(), walkConfig()} {
		v := Generate(cfg, rng.New(seedFor(t, 21))).Polygons[0].Vertices
		for i := 1; i < len(v); i++ {
			assert.False(t, v[i].Near(v[i-1], DedupEpsilon), "vertices %d and %d coincide", i-1, i)
		}
	}
}

func TestPlaceObjects(t *testing.T) {
	cfg := spikeConfig()
	cfg.Objects.BaseHeight = 0.1

	objs := PlaceObjects(cfg)
	require.Len(t, objs, 2)
	assert.Equal(t, level.ObjectPlayer, objs[0].Type)
	assert.Equal(t, level.ObjectExit, objs[1].Type)
	assert.Equal(t, 1.0, objs[0].Position.X)
	assert.Equal(t, 47.0, objs[1].Position.X)
	assert.Equal(t, objs[0].Position.Y, objs[1].Position.Y)
	assert.InDelta(t, 0.5, objs[0].Position.Y, 1e-12)
}

func TestGeneratedLevelsPassTopology(t *testing.T) {
	for _, cfg := range []Config{spikeConfig(), walkConfig()} {
		for b := byte(0); b < 10; b++ {
			seed := seedFor(t, b)
			l := Generate(cfg, rng.New(seed)).Level("test", seed)
			assert.NoError(t, level.CheckTopology(l), "strategy %s seed %s", cfg.Strategy.Name(), seed)
		}
	}
}

func TestGenerateWithoutStrategy(t *testing.T) {
	res := Generate(Config{Width: 20, Height: 8}, rng.NewSequence())
	assert.Equal(t, Boundary(20, 8), res.Polygons[0].Vertices)
	assert.Empty(t, res.Stats.Strategy)
}
