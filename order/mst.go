package order

import "github.com/nttcslab/cs-reliability/core"

// EdgeWeight scores an edge for MSTOrder's spanning-tree selection. A
// lower weight means the edge is more likely to be kept in the tree.
// The default, DefaultEdgeWeight, prefers high-survival edges (1-p) so
// the tree captures the most reliable backbone of the network.
type EdgeWeight func(e core.Edge, pi float64) float64

// DefaultEdgeWeight scores an edge by its failure probability 1-p: the
// more reliable an edge, the lower its weight, the more likely Kruskal
// keeps it in the spanning tree.
func DefaultEdgeWeight(e core.Edge, pi float64) float64 { return 1 - pi }

// MSTOrder builds a minimum spanning forest (Kruskal's algorithm, via a
// union-find sweep) under weight, then visits its vertices via
// depth-first search, and orders every edge — tree and non-tree alike —
// by (max(visit[u],visit[v]), min(...), original index). Non-tree
// "chord" edges close as soon as DFS has visited both endpoints, which
// keeps the frontier from holding stale components open any longer than
// necessary.
//
// Contract: n >= 1, else ErrNoVertices. len(pi) must equal len(edges);
// mismatches are silently tolerated by treating a missing probability as
// 0 (an edge-ordering heuristic degrading gracefully is preferable to
// failing a best-effort preprocessing step, unlike core.NewNetwork's
// strict input validation).
// Complexity: O(m^2) worst case for each of the two insertion sorts
// (weight order and final order), near-linear union-find, and a DFS over
// the spanning forest.
func MSTOrder(n int, edges []core.Edge, pi []float64, weight EdgeWeight) (Permutation, error) {
	if n < 1 {
		return nil, ErrNoVertices
	}
	if weight == nil {
		weight = DefaultEdgeWeight
	}

	byWeight := identity(len(edges))
	stableSortByKey(byWeight, func(ei int) [2]int {
		p := 0.0
		if ei < len(pi) {
			p = pi[ei]
		}
		// weight() returns a float; scale to an int key at high precision
		// since stableSortByKey's key is integer-keyed for simplicity.
		return [2]int{int(weight(edges[ei], p) * 1e9), ei}
	})

	parent := make([]int, n+1)
	for v := range parent {
		parent[v] = v
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	treeAdj := make([][]int, n+1)
	for _, ei := range byWeight {
		e := edges[ei]
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		parent[ru] = rv
		treeAdj[e.U] = append(treeAdj[e.U], e.V)
		treeAdj[e.V] = append(treeAdj[e.V], e.U)
	}

	const unvisited = -1
	visit := make([]int, n+1)
	for v := range visit {
		visit[v] = unvisited
	}
	clock := 0
	var stack []int
	for start := 1; start <= n; start++ {
		if visit[start] != unvisited {
			continue
		}
		stack = append(stack, start)
		visit[start] = clock
		clock++
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			advanced := false
			for _, v := range treeAdj[u] {
				if visit[v] == unvisited {
					visit[v] = clock
					clock++
					stack = append(stack, v)
					advanced = true
					break
				}
			}
			if !advanced {
				stack = stack[:len(stack)-1]
			}
		}
	}

	perm := identity(len(edges))
	stableSortByKey(perm, func(ei int) [2]int {
		e := edges[ei]
		a, b := visit[e.U], visit[e.V]
		if a < b {
			a, b = b, a
		}
		return [2]int{a, b}
	})
	return perm, nil
}
