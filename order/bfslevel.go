package order

import "github.com/nttcslab/cs-reliability/core"

// BFSLevelOrder runs a multi-source breadth-first search seeded from
// every vertex in sources simultaneously (the classic 0-1 multi-source
// BFS: all sources start at level 0), then orders edges by
// (max(level[u],level[v]), min(level[u],level[v]), original index).
// Vertices unreachable from any source get a level past every reachable
// one, so their incident edges sort last rather than disrupting the
// reachable layers' order.
//
// Contract: n >= 1, else ErrNoVertices.
// Complexity: O(n+m) for the BFS, O(m^2) worst case for the sort
// (insertion sort here, fine for the small-to-moderate m this engine
// targets).
func BFSLevelOrder(n int, edges []core.Edge, sources []int) (Permutation, error) {
	if n < 1 {
		return nil, ErrNoVertices
	}

	adj := make([][]int, n+1) // vertex -> list of edge indices incident to it
	for i, e := range edges {
		adj[e.U] = append(adj[e.U], i)
		adj[e.V] = append(adj[e.V], i)
	}

	const unreached = 1<<31 - 1
	level := make([]int, n+1)
	for v := range level {
		level[v] = unreached
	}

	queue := make([]int, 0, n)
	for _, s := range sources {
		if s < 1 || s > n || level[s] != unreached {
			continue
		}
		level[s] = 0
		queue = append(queue, s)
	}

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, ei := range adj[u] {
			e := edges[ei]
			nb := e.V
			if nb == u {
				nb = e.U
			}
			if level[nb] != unreached {
				continue
			}
			level[nb] = level[u] + 1
			queue = append(queue, nb)
		}
	}

	perm := identity(len(edges))
	stableSortByKey(perm, func(ei int) [2]int {
		e := edges[ei]
		lu, lv := level[e.U], level[e.V]
		if lu < lv {
			lu, lv = lv, lu
		}
		return [2]int{lu, lv}
	})
	return perm, nil
}
