package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nttcslab/cs-reliability/core"
	"github.com/nttcslab/cs-reliability/engine"
	"github.com/nttcslab/cs-reliability/matrix"
	"github.com/nttcslab/cs-reliability/state"
)

const eps = 1e-9

func valueAt(t *testing.T, res *engine.Result, level, vertex int) float64 {
	t.Helper()
	for _, lvl := range res.Levels {
		if lvl.Level != level {
			continue
		}
		for _, v := range lvl.Values {
			if v.Vertex == vertex {
				return v.P
			}
		}
		t.Fatalf("vertex %d not found at level %d", vertex, level)
	}
	t.Fatalf("level %d not found", level)
	return 0
}

func TestCompute_S1_SingleEdge(t *testing.T) {
	edges := []core.Edge{{U: 1, V: 2}}
	pi := []float64{0.4}
	res, err := engine.Compute(2, edges, pi, []int{1})
	require.NoError(t, err)

	// Vertex 2 is touched only by the single (and therefore final) edge,
	// so it is never a member of any Fi for i in [1,m) — this is the
	// smallest instance of the k_m = 0 trap documented on engine.Result.
	require.Empty(t, res.Levels)
	require.InDelta(t, 0.4, matrixReliability(t, 2, edges, pi, []int{1}, 2), eps)
}

func TestCompute_S2_Triangle(t *testing.T) {
	edges := []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}}
	pi := []float64{0.5, 0.5, 0.5}
	res, err := engine.Compute(3, edges, pi, []int{1})
	require.NoError(t, err)

	// Vertex 2 leaves the frontier after edge 1 and vertex 3 after edge 2;
	// each is only ever live in one Fi, but that level's emitted value
	// already reflects the full backward-computed probability over every
	// remaining edge.
	require.InDelta(t, 0.625, valueAt(t, res, 1, 2), eps)
	require.InDelta(t, 0.625, valueAt(t, res, 2, 3), eps)
}

func TestCompute_S3_Path(t *testing.T) {
	edges := []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}
	pi := []float64{0.9, 0.8, 0.7}
	res, err := engine.Compute(4, edges, pi, []int{1})
	require.NoError(t, err)

	require.InDelta(t, 0.9, valueAt(t, res, 1, 2), eps)
	require.InDelta(t, 0.72, valueAt(t, res, 2, 3), eps)

	// Vertex 4 is touched only by the final edge, so it never occupies a
	// live Fi for i in [1,m) (spec's k_m = 0 invariant) — its reliability
	// is recovered via the independent cross-check oracle instead.
	got := matrixReliability(t, 4, edges, pi, []int{1}, 4)
	require.InDelta(t, 0.504, got, eps)
}

func TestCompute_S4_DisjointComponents(t *testing.T) {
	edges := []core.Edge{{U: 1, V: 2}, {U: 3, V: 4}}
	pi := []float64{0.5, 0.5}
	res, err := engine.Compute(4, edges, pi, []int{1}, engine.WithStrictSourceCheck(false))
	require.NoError(t, err)

	// Both edges are isolated (every endpoint's first and last touch
	// coincide), so nothing ever occupies a live Fi: the single level
	// reported, level 1, carries no values, and every vertex's answer is
	// checked against the cross-check oracle instead.
	require.Equal(t, []engine.LevelResult{{Level: 1, Values: []engine.VertexProb{}}}, res.Levels)
	require.InDelta(t, 0.5, matrixReliability(t, 2, edges, pi, []int{1}, 4), eps)
	require.InDelta(t, 0, matrixReliability(t, 3, edges, pi, []int{1}, 4), eps)
	require.InDelta(t, 0, matrixReliability(t, 4, edges, pi, []int{1}, 4), eps)
}

func TestCompute_S5_TwoSources(t *testing.T) {
	edges := []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}}
	pi := []float64{0.5, 0.5, 0.5}
	res, err := engine.Compute(3, edges, pi, []int{1, 2})
	require.NoError(t, err)

	require.InDelta(t, 0.75, valueAt(t, res, 2, 3), eps)
}

func TestCompute_S6_IndependenceOfOrdering(t *testing.T) {
	pi := map[core.Edge]float64{
		{U: 1, V: 2}: 0.5,
		{U: 2, V: 3}: 0.6,
		{U: 1, V: 3}: 0.7,
	}
	orderings := [][]core.Edge{
		{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}},
		{{U: 1, V: 3}, {U: 1, V: 2}, {U: 2, V: 3}},
		{{U: 2, V: 3}, {U: 1, V: 3}, {U: 1, V: 2}},
	}

	want := map[int]float64{}
	for idx, edges := range orderings {
		probs := make([]float64, len(edges))
		for i, e := range edges {
			probs[i] = pi[e]
		}
		res, err := engine.Compute(3, edges, probs, []int{1})
		require.NoError(t, err)

		got := map[int]float64{}
		for _, lvl := range res.Levels {
			for _, v := range lvl.Values {
				got[v.Vertex] = v.P
			}
		}
		if idx == 0 {
			want = got
			continue
		}
		for vertex, p := range want {
			require.InDelta(t, p, got[vertex], 1e-12, "vertex %d mismatch under reordering", vertex)
		}
	}
}

func TestCompute_UntouchedSource(t *testing.T) {
	edges := []core.Edge{{U: 1, V: 2}}
	_, err := engine.Compute(3, edges, []float64{0.4}, []int{1, 3})
	require.ErrorIs(t, err, engine.ErrSourceUntouched)

	_, err = engine.Compute(3, edges, []float64{0.4}, []int{1, 3}, engine.WithStrictSourceCheck(false))
	require.NoError(t, err)
}

func TestCompute_SourceSelfReliability(t *testing.T) {
	// Source vertex 2 sits between 1 and 3, so it stays live through F1
	// before leaving at edge 1; its own emitted value must be exactly 1.
	edges := []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}}
	res, err := engine.Compute(3, edges, []float64{0.5, 0.5}, []int{2})
	require.NoError(t, err)

	require.InDelta(t, 1, valueAt(t, res, 1, 2), eps)
}

func TestCompute_DeterministicLimits(t *testing.T) {
	edges := []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}

	allOnes := []float64{1, 1, 1}
	res, err := engine.Compute(4, edges, allOnes, []int{1})
	require.NoError(t, err)
	require.InDelta(t, 1, valueAt(t, res, 1, 2), eps)
	require.InDelta(t, 1, valueAt(t, res, 2, 3), eps)

	allZeros := []float64{0, 0, 0}
	res, err = engine.Compute(4, edges, allZeros, []int{1})
	require.NoError(t, err)
	require.InDelta(t, 0, valueAt(t, res, 1, 2), eps)
	require.InDelta(t, 0, valueAt(t, res, 2, 3), eps)
}

func TestCompute_Monotonicity(t *testing.T) {
	edges := []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}}
	lo := []float64{0.3, 0.4, 0.2}
	hi := []float64{0.5, 0.6, 0.3}

	resLo, err := engine.Compute(3, edges, lo, []int{1})
	require.NoError(t, err)
	resHi, err := engine.Compute(3, edges, hi, []int{1})
	require.NoError(t, err)

	loVals, hiVals := map[int]float64{}, map[int]float64{}
	for _, lvl := range resLo.Levels {
		for _, v := range lvl.Values {
			loVals[v.Vertex] = v.P
		}
	}
	for _, lvl := range resHi.Levels {
		for _, v := range lvl.Values {
			hiVals[v.Vertex] = v.P
		}
	}
	for vertex, p := range loVals {
		require.GreaterOrEqual(t, hiVals[vertex]+eps, p, "vertex %d: monotonicity violated", vertex)
	}
}

func TestCompute_ProgressCallback(t *testing.T) {
	edges := []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}}
	var seen []int
	_, err := engine.Compute(3, edges, []float64{0.5, 0.5}, []int{1}, engine.WithProgress(func(level, n int) {
		seen = append(seen, level)
	}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, seen)
}

func TestCompute_FrontierOverflow(t *testing.T) {
	// 70 leaves, each opened by its own private opener vertex and later
	// closed by its own private closer vertex. No two leaves ever share
	// an edge, so once every opener edge has run, all 70 leaves are live
	// simultaneously as 70 distinct singleton components — a frontier
	// wider than the 64-bit asterisk mask can represent.
	const width = 70
	leaf := func(i int) int { return 1 + i }
	opener := func(i int) int { return 1 + width + i }
	closer := func(i int) int { return 1 + 2*width + i }
	n := 1 + 3*width

	var edges []core.Edge
	var pi []float64
	for i := 0; i < width; i++ {
		edges = append(edges, core.Edge{U: opener(i), V: leaf(i)})
		pi = append(pi, 0.5)
	}
	for i := 0; i < width; i++ {
		edges = append(edges, core.Edge{U: leaf(i), V: closer(i)})
		pi = append(pi, 0.5)
	}

	_, err := engine.Compute(n, edges, pi, []int{opener(0)})
	require.ErrorIs(t, err, state.ErrFrontierOverflow)
}

// matrixReliability cross-checks a vertex's reliability against the
// independent brute-force solver in package matrix — used for vertices
// that fall outside the Result Emitter's per-level stream (the k_m = 0
// pendant-vertex case documented on engine.Result).
func matrixReliability(t *testing.T, target int, edges []core.Edge, pi []float64, sources []int, n int) float64 {
	t.Helper()
	net, err := core.NewNetwork(n, edges, pi, sources)
	require.NoError(t, err)
	got, err := matrix.Reliability(net, target)
	require.NoError(t, err)
	return got
}
