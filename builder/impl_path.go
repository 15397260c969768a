// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/nttcslab/cs-reliability/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds a simple path P_n: vertices 1..n, edges (1,2),(2,3),...,
// (n-1,n), in that stable increasing order — the canonical minimum-
// pathwidth ordering, so the Frontier Analyzer never holds more than one
// live component.
//
// Contract: n >= 2, else ErrTooFewVertices.
// Complexity: O(n) time, O(n) space for the returned Spec.
// Determinism: pure function of n and the resolved probFn/rng.
func Path(n int, opts ...Option) (Spec, error) {
	if n < minPathNodes {
		return Spec{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	edges := make([]core.Edge, n-1)
	for i := 1; i < n; i++ {
		edges[i-1] = core.Edge{U: i, V: i + 1}
	}
	pi, err := assignProbs(methodPath, len(edges), cfg)
	if err != nil {
		return Spec{}, err
	}
	return Spec{N: n, Edges: edges, Pi: pi}, nil
}
