// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/nttcslab/cs-reliability/core"
)

// Spec is the output of every generator in this package: a vertex count,
// an edge order, and an aligned survival-probability vector — exactly the
// three inputs core.NewNetwork needs alongside a source set.
type Spec struct {
	N     int
	Edges []core.Edge
	Pi    []float64
}

// Network resolves this Spec against a source set into a validated
// *core.Network. It is a thin convenience wrapper; callers needing custom
// validation behavior can call core.NewNetwork directly with s.N, s.Edges,
// s.Pi.
func (s Spec) Network(sources []int) (*core.Network, error) {
	return core.NewNetwork(s.N, s.Edges, s.Pi, sources)
}

// assignProbs draws one probability per edge from cfg.probFn, validating
// each draw lands in [0,1] — a misconfigured custom ProbFn is a
// programmer error, surfaced immediately rather than silently clamped.
func assignProbs(method string, m int, cfg *builderConfig) ([]float64, error) {
	pi := make([]float64, m)
	for i := range pi {
		p := cfg.probFn(cfg.rng)
		if !validateProb(p) {
			return nil, fmt.Errorf("%s: probFn returned %g at edge %d: %w", method, p, i, ErrInvalidProbability)
		}
		pi[i] = p
	}
	return pi, nil
}
