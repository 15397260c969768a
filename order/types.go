package order

import (
	"fmt"

	"github.com/nttcslab/cs-reliability/core"
)

// Permutation maps a new edge position to the index it held in the
// original edge slice: Permutation[newPos] == originalIndex.
type Permutation []int

// Apply reorders edges and pi according to perm, returning new slices —
// neither input is mutated. Returns ErrPermutationLength if len(pi) !=
// len(edges) or len(perm).
func Apply(perm Permutation, edges []core.Edge, pi []float64) ([]core.Edge, []float64, error) {
	if len(pi) != len(edges) || len(perm) != len(edges) {
		return nil, nil, fmt.Errorf("order: len(edges)=%d len(pi)=%d len(perm)=%d: %w",
			len(edges), len(pi), len(perm), ErrPermutationLength)
	}
	newEdges := make([]core.Edge, len(perm))
	newPi := make([]float64, len(perm))
	for newPos, origIdx := range perm {
		newEdges[newPos] = edges[origIdx]
		newPi[newPos] = pi[origIdx]
	}
	return newEdges, newPi, nil
}

// identity returns the trivial permutation 0..m-1.
func identity(m int) Permutation {
	p := make(Permutation, m)
	for i := range p {
		p[i] = i
	}
	return p
}

// stableSortByKey sorts perm in place by the given key function,
// breaking ties by the original (pre-sort) relative order — equivalent
// to sort.SliceStable but written out explicitly (insertion sort) since
// m is small in the networks this package targets and it avoids pulling
// in a comparator closure per call on the hot path of repeated reorders.
func stableSortByKey(perm Permutation, key func(edgeIdx int) [2]int) {
	for i := 1; i < len(perm); i++ {
		v := perm[i]
		kv := key(v)
		j := i - 1
		for j >= 0 {
			kj := key(perm[j])
			if kj[0] < kv[0] || (kj[0] == kv[0] && kj[1] <= kv[1]) {
				break
			}
			perm[j+1] = perm[j]
			j--
		}
		perm[j+1] = v
	}
}
