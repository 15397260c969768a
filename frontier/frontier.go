package frontier

import (
	"sort"

	"github.com/nttcslab/cs-reliability/core"
)

const unseen = -1

// Analyze computes the Frontier Analyzer output for a fixed edge order
// over n vertices, given the source vertex set.
//
// Complexity: O(n + m) to compute first/last touch, O(sum|F̃ᵢ|) to build
// frontiers and cross-index maps — linear in the total frontier mass,
// which is the same quantity the rest of the engine is polynomial in.
func Analyze(n int, edges []core.Edge, sources []int) *Analysis {
	m := len(edges)

	firstTouch := make([]int, n+1)
	lastTouch := make([]int, n+1)
	for v := 1; v <= n; v++ {
		firstTouch[v] = unseen
		lastTouch[v] = unseen
	}
	for i, e := range edges {
		if firstTouch[e.U] == unseen {
			firstTouch[e.U] = i
		}
		if firstTouch[e.V] == unseen {
			firstTouch[e.V] = i
		}
		lastTouch[e.U] = i
		lastTouch[e.V] = i
	}

	frontiers := make([]Set, m+1)
	for i := 0; i <= m; i++ {
		frontiers[i] = frontierAt(n, firstTouch, lastTouch, i)
	}

	srcSet := make(map[int]struct{}, len(sources))
	for _, s := range sources {
		srcSet[s] = struct{}{}
	}

	steps := make([]Step, m)
	srcFinal := 0
	claimed := make(map[int]bool, len(sources))
	for i, e := range edges {
		med := mediumAt(n, firstTouch, lastTouch, i)
		prev := frontiers[i]
		next := frontiers[i+1]

		st := Step{Prev: prev, Med: med, Next: next}
		st.MedToPrev, st.PrevToMed = crossIndex(med, prev)
		st.NextToMed, st.MedToNext = crossIndexInverse(med, next)
		st.UPos = med.Position(e.U)
		st.VPos = med.Position(e.V)

		// A source is claimed by the first edge that touches either of
		// its endpoints, in endpoint order (U before V), matching the
		// legacy front-end's erase-on-first-touch behavior.
		for _, v := range [2]int{e.U, e.V} {
			if _, isSrc := srcSet[v]; !isSrc || claimed[v] {
				continue
			}
			claimed[v] = true
			st.Sources = append(st.Sources, v)
			srcFinal = i
		}

		steps[i] = st
	}

	var untouched []int
	for _, s := range sources {
		if !claimed[s] {
			untouched = append(untouched, s)
		}
	}
	sort.Ints(untouched)

	return &Analysis{
		N:                n,
		M:                m,
		Frontiers:        frontiers,
		Steps:            steps,
		SrcFinal:         srcFinal,
		UntouchedSources: untouched,
	}
}

// frontierAt returns Fᵢ: vertices first touched strictly before i and
// last touched at or after i, in ascending vertex-id order.
func frontierAt(n int, firstTouch, lastTouch []int, i int) Set {
	var out Set
	for v := 1; v <= n; v++ {
		if firstTouch[v] != unseen && firstTouch[v] < i && lastTouch[v] >= i {
			out = append(out, v)
		}
	}
	return out
}

// mediumAt returns F̃ᵢ: vertices first touched at or before i and last
// touched at or after i, i.e. Fᵢ ∪ endpoints(eᵢ).
func mediumAt(n int, firstTouch, lastTouch []int, i int) Set {
	var out Set
	for v := 1; v <= n; v++ {
		if firstTouch[v] != unseen && firstTouch[v] <= i && lastTouch[v] >= i {
			out = append(out, v)
		}
	}
	return out
}

// crossIndex zips two ascending subsets (sub is a subset of sup's
// membership in the sense relevant here: every element of small appears
// in big) and returns (bigToSmall, smallToBig).
func crossIndex(big, small Set) (bigToSmall, smallToBig []int) {
	bigToSmall = make([]int, len(big))
	smallToBig = make([]int, len(small))
	j := 0
	for t, v := range big {
		if j < len(small) && small[j] == v {
			bigToSmall[t] = j
			smallToBig[j] = t
			j++
		} else {
			bigToSmall[t] = unseen
		}
	}
	return bigToSmall, smallToBig
}

// crossIndexInverse mirrors crossIndex but returns (smallToBig, bigToSmall)
// to match the Next/Med naming in Step (Next is the smaller, later set).
func crossIndexInverse(big, small Set) (smallToBig, bigToSmall []int) {
	bigToSmall, smallToBig = crossIndex(big, small)
	return smallToBig, bigToSmall
}
