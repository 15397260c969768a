// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/nttcslab/cs-reliability/core"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 2
)

// RandomSparse builds an Erdős–Rényi-style G(n,p) simple graph: for every
// unordered pair (u,v), u<v, the edge is included independently with
// probability p. Edges are emitted in the same lexicographic (u,v) order
// Complete uses, so the result is a deterministic function of which pairs
// the RNG happened to draw — not of draw order.
//
// Contract: n >= 2 and 0 <= p <= 1, else ErrTooFewVertices /
// ErrInvalidProbability. Requires an RNG resolved via WithSeed or WithRand,
// else ErrNeedRandSource — G(n,p) with no randomness source is not a
// meaningful request.
//
// Complexity: O(n^2) time (every pair is tested once), O(n*p*n) expected
// edges.
// Determinism: identical (n, p, seed) always yields the identical edge set.
func RandomSparse(n int, p float64, opts ...Option) (Spec, error) {
	if n < minRandomSparseNodes {
		return Spec{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
	}
	if !validateProb(p) {
		return Spec{}, fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return Spec{}, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	var edges []core.Edge
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if cfg.rng.Float64() < p {
				edges = append(edges, core.Edge{U: u, V: v})
			}
		}
	}

	pi, err := assignProbs(methodRandomSparse, len(edges), cfg)
	if err != nil {
		return Spec{}, err
	}
	return Spec{N: n, Edges: edges, Pi: pi}, nil
}
