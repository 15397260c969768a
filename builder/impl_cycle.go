// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/nttcslab/cs-reliability/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds a simple cycle C_n: the path edges (1,2),...,(n-1,n) plus
// the closing edge (n,1), in that order. The closing edge is the worst
// case for a path-style order — it reconnects the two ends of the chain,
// so the frontier briefly holds both the first and last vertex at once.
//
// Contract: n >= 3, else ErrTooFewVertices.
// Complexity: O(n) time, O(n) space.
func Cycle(n int, opts ...Option) (Spec, error) {
	if n < minCycleNodes {
		return Spec{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	edges := make([]core.Edge, n)
	for i := 1; i < n; i++ {
		edges[i-1] = core.Edge{U: i, V: i + 1}
	}
	edges[n-1] = core.Edge{U: n, V: 1}

	pi, err := assignProbs(methodCycle, len(edges), cfg)
	if err != nil {
		return Spec{}, err
	}
	return Spec{N: n, Edges: edges, Pi: pi}, nil
}
