// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/nttcslab/cs-reliability/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete simple graph K_n: every unordered pair
// (u,v), u<v, in lexicographic order — the worst case for frontier width,
// since every prefix of vertices touched so far stays mutually connected
// and no vertex ever leaves the frontier before the last edge that
// touches it. Useful as a stress topology for order heuristics and for
// exercising state.ErrFrontierOverflow.
//
// Contract: n >= 1, else ErrTooFewVertices. n==1 yields zero edges.
// Complexity: O(n^2) time and space.
func Complete(n int, opts ...Option) (Spec, error) {
	if n < minCompleteNodes {
		return Spec{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	edges := make([]core.Edge, 0, n*(n-1)/2)
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			edges = append(edges, core.Edge{U: u, V: v})
		}
	}

	pi, err := assignProbs(methodComplete, len(edges), cfg)
	if err != nil {
		return Spec{}, err
	}
	return Spec{N: n, Edges: edges, Pi: pi}, nil
}
