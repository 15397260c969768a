package engine

import (
	"github.com/nttcslab/cs-reliability/frontier"
	"github.com/nttcslab/cs-reliability/state"
)

// emit runs the Result Emitter: for every edge level i in [1, m), sum
// p(id) * q(id, comp[k]) over every state live at that level, for each
// frontier position k, and report the result against the vertex
// occupying that position.
func emit(st *state.Store, an *frontier.Analysis) []LevelResult {
	levels := make([]LevelResult, 0, an.M-1)

	for i := 1; i < an.M; i++ {
		frontierSet := an.Frontiers[i]
		res := make([]float64, len(frontierSet))

		for _, ent := range st.Level(i) {
			nd := st.Node(ent.ID)
			for k := range frontierSet {
				res[k] += nd.P * nd.Q[ent.State.Comp[k]]
			}
		}

		values := make([]VertexProb, len(frontierSet))
		for k, v := range frontierSet {
			values[k] = VertexProb{Vertex: v, P: res[k]}
		}
		levels = append(levels, LevelResult{Level: i, Values: values})
	}

	return levels
}
