package ioformat

import (
	"fmt"
	"io"

	"github.com/nttcslab/cs-reliability/core"
	"github.com/nttcslab/cs-reliability/order"
)

// ReadGraphFile parses a whitespace-separated edge-list file: a header
// "n m" followed by m "u v" edges, vertices 1-indexed. Whitespace
// (spaces or newlines) between tokens is insignificant, matching the
// reference front-end's fscanf-based reader.
//
// Complexity: O(m) time and space.
func ReadGraphFile(r io.Reader) (n int, edges []core.Edge, err error) {
	var m int
	if _, err := fmt.Fscan(r, &n, &m); err != nil {
		return 0, nil, fmt.Errorf("ioformat: graph header: %w: %v", ErrMalformedGraphFile, err)
	}
	if n < 0 || m < 0 {
		return 0, nil, fmt.Errorf("ioformat: graph header n=%d m=%d: %w", n, m, ErrMalformedGraphFile)
	}
	edges = make([]core.Edge, m)
	for i := 0; i < m; i++ {
		var u, v int
		if _, err := fmt.Fscan(r, &u, &v); err != nil {
			return 0, nil, fmt.Errorf("ioformat: graph edge %d: %w: %v", i, ErrMalformedGraphFile, err)
		}
		edges[i] = core.Edge{U: u, V: v}
	}
	return n, edges, nil
}

// ReadOrderFile parses an order file in the same "n m" + edge-list format as
// ReadGraphFile, then resolves it into an order.Permutation against base —
// the permutation that reorders base into the order file's sequence.
// Each order-file edge must match, as an unordered pair, exactly one
// unused edge of base.
//
// Complexity: O(m) expected time with the internal index map, O(m) space.
func ReadOrderFile(r io.Reader, base []core.Edge) (order.Permutation, error) {
	_, edges, err := ReadGraphFile(r)
	if err != nil {
		return nil, err
	}
	if len(edges) != len(base) {
		return nil, fmt.Errorf("ioformat: order has %d edges, graph has %d: %w", len(edges), len(base), ErrOrderLengthMismatch)
	}

	type key struct{ a, b int }
	normalize := func(e core.Edge) key {
		if e.U <= e.V {
			return key{e.U, e.V}
		}
		return key{e.V, e.U}
	}

	available := make(map[key][]int, len(base))
	for i, e := range base {
		k := normalize(e)
		available[k] = append(available[k], i)
	}

	perm := make(order.Permutation, len(edges))
	for pos, e := range edges {
		k := normalize(e)
		slots := available[k]
		if len(slots) == 0 {
			return nil, fmt.Errorf("ioformat: order edge %d=(%d,%d): %w", pos, e.U, e.V, ErrUnknownEdge)
		}
		perm[pos] = slots[0]
		available[k] = slots[1:]
	}
	return perm, nil
}
