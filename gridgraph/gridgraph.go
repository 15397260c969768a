package gridgraph

import (
	"fmt"
	"math/rand"

	"github.com/nttcslab/cs-reliability/builder"
	"github.com/nttcslab/cs-reliability/core"
)

// config mirrors builder's functional-options resolution (rng + probFn)
// but stays package-local: gridgraph's only public knob is which
// probability each edge gets, so it does not need builder's full surface.
type config struct {
	rng    *rand.Rand
	probFn builder.ProbFn
}

// Option customizes New's edge-probability assignment.
type Option func(*config)

// WithProbFn overrides the per-edge probability generator (default:
// builder.DefaultProbFn, a constant builder.DefaultProb).
func WithProbFn(fn builder.ProbFn) Option {
	return func(c *config) {
		if fn != nil {
			c.probFn = fn
		}
	}
}

// WithUniformProb assigns the same constant probability to every edge.
func WithUniformProb(p float64) Option {
	return func(c *config) {
		c.probFn = func(*rand.Rand) float64 { return p }
	}
}

// WithRand supplies an RNG for stochastic ProbFns (e.g. jittered weights).
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// New builds an rows x cols 4-neighborhood lattice network. Vertex
// (r,c), 0-indexed, is numbered r*cols+c+1 — row-major, 1-indexed to
// match core.Network's vertex convention. Edges are emitted per cell, in
// row-major scan order, right-neighbor before below-neighbor, which is
// the edge order that keeps the frontier bounded by cols+1.
//
// Contract: rows >= 1 and cols >= 1, else ErrTooSmall. A 1x1 grid has no
// edges (core.NewNetwork will reject it downstream with ErrNoEdges).
// Complexity: O(rows*cols) time and space.
func New(rows, cols int, opts ...Option) (builder.Spec, error) {
	if rows < 1 || cols < 1 {
		return builder.Spec{}, fmt.Errorf("gridgraph: rows=%d cols=%d: %w", rows, cols, ErrTooSmall)
	}
	cfg := &config{probFn: builder.DefaultProbFn}
	for _, opt := range opts {
		opt(cfg)
	}

	id := func(r, c int) int { return r*cols + c + 1 }

	var edges []core.Edge
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, core.Edge{U: id(r, c), V: id(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, core.Edge{U: id(r, c), V: id(r + 1, c)})
			}
		}
	}

	pi := make([]float64, len(edges))
	for i := range pi {
		pi[i] = cfg.probFn(cfg.rng)
	}

	return builder.Spec{N: rows * cols, Edges: edges, Pi: pi}, nil
}

// Coordinate converts a 1-indexed vertex id (as produced by New) back to
// its 0-indexed (row, col) position for a grid with the given cols.
// Complexity: O(1).
func Coordinate(vertex, cols int) (row, col int) {
	idx := vertex - 1
	return idx / cols, idx % cols
}
