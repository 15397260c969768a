// Package core defines the four-input data model the reliability engine
// operates on — vertex count, edge order, per-edge survival probabilities,
// and the source set — plus the InputShape validation that guards every
// other package in this module.
//
// Vertices are 1-indexed integers in [1,n], matching the file formats the
// original front-end reads (see ioformat). Edges are undirected and must
// not be self-loops; the edge order is significant — it is the order the
// Frontier Analyzer scans — but it is supplied by the caller (or by the
// order package's heuristics), never decided here.
//
// Errors:
//
//	ErrInputShape        - umbrella sentinel; wrapped by every shape error below.
//	ErrTooFewVertices    - n < 1.
//	ErrNoEdges           - edges is empty.
//	ErrVertexRange       - an edge endpoint is outside [1,n], or u == v.
//	ErrProbabilityLength - len(pi) != len(edges).
//	ErrProbabilityRange  - a probability is outside [0,1].
//	ErrNoSources         - sources is empty.
//	ErrSourceRange       - a source vertex is outside [1,n].
package core

import (
	"errors"
	"fmt"
)

// ErrInputShape is the umbrella sentinel for every input-validation failure.
// Callers that only care "was the input malformed" can do:
//
//	if errors.Is(err, core.ErrInputShape) { ... }
var ErrInputShape = errors.New("core: invalid input shape")

// Specific causes, each wrapping ErrInputShape via fmt.Errorf("...: %w", ErrInputShape).
var (
	ErrTooFewVertices    = fmt.Errorf("core: n must be >= 1: %w", ErrInputShape)
	ErrNoEdges           = fmt.Errorf("core: edge list is empty: %w", ErrInputShape)
	ErrVertexRange       = fmt.Errorf("core: edge endpoint out of range or a self-loop: %w", ErrInputShape)
	ErrProbabilityLength = fmt.Errorf("core: len(pi) does not match len(edges): %w", ErrInputShape)
	ErrProbabilityRange  = fmt.Errorf("core: probability outside [0,1]: %w", ErrInputShape)
	ErrNoSources         = fmt.Errorf("core: sources set is empty: %w", ErrInputShape)
	ErrSourceRange       = fmt.Errorf("core: source vertex out of range: %w", ErrInputShape)
)

// Edge is an undirected edge between two 1-indexed vertices. U and V are
// unordered for equality purposes, but the engine and frontier packages
// treat U as the "first" and V as the "second" endpoint when they need a
// stable position (e.g. e_pos in the Frontier Analyzer).
type Edge struct {
	U, V int
}

// Network bundles the four inputs the reliability engine needs: vertex
// count, edge order, aligned survival probabilities, and the source set.
// A Network is immutable once constructed by NewNetwork; callers must not
// mutate the slices returned by its accessors.
type Network struct {
	n       int
	edges   []Edge
	pi      []float64
	sources []int // sorted, de-duplicated
}

// NewNetwork validates (n, edges, pi, sources) and returns an immutable
// Network, or the first ErrInputShape cause encountered. Validation order
// matches the priority a caller would want to see first: shape before
// range, vertices before edges before probabilities before sources.
func NewNetwork(n int, edges []Edge, pi []float64, sources []int) (*Network, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	for i, e := range edges {
		if e.U < 1 || e.U > n || e.V < 1 || e.V > n || e.U == e.V {
			return nil, fmt.Errorf("core: edge[%d]=(%d,%d): %w", i, e.U, e.V, ErrVertexRange)
		}
	}
	if len(pi) != len(edges) {
		return nil, fmt.Errorf("core: len(pi)=%d, len(edges)=%d: %w", len(pi), len(edges), ErrProbabilityLength)
	}
	for i, p := range pi {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("core: pi[%d]=%g: %w", i, p, ErrProbabilityRange)
		}
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	seen := make(map[int]struct{}, len(sources))
	uniq := make([]int, 0, len(sources))
	for _, s := range sources {
		if s < 1 || s > n {
			return nil, fmt.Errorf("core: source %d: %w", s, ErrSourceRange)
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		uniq = append(uniq, s)
	}
	sortInts(uniq)

	edgesCopy := make([]Edge, len(edges))
	copy(edgesCopy, edges)
	piCopy := make([]float64, len(pi))
	copy(piCopy, pi)

	return &Network{n: n, edges: edgesCopy, pi: piCopy, sources: uniq}, nil
}

// N returns the vertex count.
func (net *Network) N() int { return net.n }

// M returns the edge count.
func (net *Network) M() int { return len(net.edges) }

// Edges returns the edge order. The caller must not mutate the result.
func (net *Network) Edges() []Edge { return net.edges }

// Pi returns the per-edge survival probabilities, aligned with Edges().
func (net *Network) Pi() []float64 { return net.pi }

// Sources returns the sorted, de-duplicated source vertex set.
func (net *Network) Sources() []int { return net.sources }

// IsSource reports whether v is one of the source vertices.
func (net *Network) IsSource(v int) bool {
	// Sources is small and sorted; linear scan is simpler and fast enough
	// than a map for the sizes this engine targets.
	for _, s := range net.sources {
		if s == v {
			return true
		}
		if s > v {
			break
		}
	}
	return false
}

// sortInts sorts a small slice of vertex ids in place (insertion sort is
// plenty for source-set sizes, which are bounded by the 64-component
// frontier limit in practice).
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}
