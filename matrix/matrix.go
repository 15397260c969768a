// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/nttcslab/cs-reliability/core"
)

// DefaultMaxEdges bounds the brute-force enumeration to 2^DefaultMaxEdges
// outcomes, a budget generous enough for worked examples and unit tests
// but nowhere near what the frontier engine is built to handle.
const DefaultMaxEdges = 24

// Options configures the brute-force solver's enumeration budget.
type Options struct {
	MaxEdges int
}

// Option customizes Options.
type Option func(*Options)

// DefaultOptions returns the default enumeration budget.
func DefaultOptions() Options { return Options{MaxEdges: DefaultMaxEdges} }

// WithMaxEdges raises (or lowers) the edge-count budget.
func WithMaxEdges(n int) Option { return func(o *Options) { o.MaxEdges = n } }

// BruteForce enumerates all 2^m edge-survival outcomes and returns, for
// every vertex in [1,net.N()], the exact probability that it connects to
// some source vertex in a random subgraph where each edge i survives
// independently with probability net.Pi()[i]. Source vertices are
// reported with probability 1 by definition, without spending any
// enumeration on them.
//
// Complexity: O(2^m * (n + m*alpha(n))) time — one connected-components
// pass per outcome. m is net.M(); see ErrTooManyEdges for the guard.
func BruteForce(net *core.Network, opts ...Option) ([]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := net.M()
	if m > cfg.MaxEdges {
		return nil, fmt.Errorf("matrix: m=%d > budget=%d: %w", m, cfg.MaxEdges, ErrTooManyEdges)
	}

	n := net.N()
	edges := net.Edges()
	pi := net.Pi()
	result := make([]float64, n+1) // 1-indexed; result[0] unused

	for v := 1; v <= n; v++ {
		if net.IsSource(v) {
			result[v] = 1
		}
	}

	outcomes := uint64(1) << uint(m)
	for mask := uint64(0); mask < outcomes; mask++ {
		g := simple.NewUndirectedGraph()
		for v := 1; v <= n; v++ {
			g.AddNode(simple.Node(v))
		}
		p := 1.0
		for i := 0; i < m; i++ {
			if mask&(1<<uint(i)) != 0 {
				p *= pi[i]
				g.SetEdge(simple.Edge{F: simple.Node(edges[i].U), T: simple.Node(edges[i].V)})
			} else {
				p *= 1 - pi[i]
			}
		}
		if p == 0 {
			continue
		}

		connectedToSource := reachableFromSources(g, net.Sources(), n)
		for v := 1; v <= n; v++ {
			if !net.IsSource(v) && connectedToSource[v] {
				result[v] += p
			}
		}
	}

	return result, nil
}

// Reliability returns the single-vertex probability BruteForce would
// report for target, without allocating the full per-vertex slice twice
// over — it is a thin convenience wrapper for callers that only need one
// answer (e.g. a targeted cross-check in a test).
func Reliability(net *core.Network, target int, opts ...Option) (float64, error) {
	all, err := BruteForce(net, opts...)
	if err != nil {
		return 0, err
	}
	return all[target], nil
}

// reachableFromSources marks every vertex in the same connected component
// as any source vertex, via gonum's undirected connected-components walk.
func reachableFromSources(g graph.Undirected, sources []int, n int) []bool {
	components := topo.ConnectedComponents(g)
	reachable := make([]bool, n+1)

	isSource := make(map[int64]bool, len(sources))
	for _, s := range sources {
		isSource[int64(s)] = true
	}

	for _, comp := range components {
		hasSource := false
		for _, nd := range comp {
			if isSource[nd.ID()] {
				hasSource = true
				break
			}
		}
		if !hasSource {
			continue
		}
		for _, nd := range comp {
			reachable[nd.ID()] = true
		}
	}
	return reachable
}
