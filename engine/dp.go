package engine

import "github.com/nttcslab/cs-reliability/state"

// forwardPass accumulates probability mass from the root outward in
// id-ascending order. It starts at id 1 (the root itself), not 2: the
// root's own Lo/Hi transition — set by build when it processed level 0
// — must run for any mass to reach id 2 at all; starting from 2 would
// strand the root's mass. See DESIGN.md.
func forwardPass(st *state.Store, pi []float64) {
	n := st.Len()
	for id := 1; id < n; id++ {
		nd := st.Node(state.NodeID(id))
		if nd.Level >= len(pi) {
			// A level-m node (interned only when no source asterisk is
			// live, e.g. every source untouched) makes no decision.
			continue
		}
		p := nd.P
		piv := pi[nd.Level]

		st.Node(nd.Lo).P += (1 - piv) * p
		st.Node(nd.Hi).P += piv * p
	}
}

// backwardPass accumulates per-component connect-to-source probability
// from the leaves inward, in id-descending order from snum-1 down to 2.
// TerminalFalse's Q = [0, 1] and Root has no components, so ids 0 and 1
// are never themselves processed here.
func backwardPass(st *state.Store, pi []float64) {
	for id := st.Len() - 1; id >= 2; id-- {
		nd := st.Node(state.NodeID(id))
		if nd.Level >= len(pi) {
			continue // level-m node: no components, no decision
		}
		piv := pi[nd.Level]

		loQ := st.Node(nd.Lo).Q
		hiQ := st.Node(nd.Hi).Q

		for c := 0; c < int(nd.CNum); c++ {
			var q float64
			if nd.VLo[c] >= 0 {
				q += (1 - piv) * loQ[nd.VLo[c]]
			}
			if nd.VHi[c] >= 0 {
				q += piv * hiQ[nd.VHi[c]]
			}
			nd.Q[c] = q
		}
	}
}
