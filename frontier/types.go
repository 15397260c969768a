// Package frontier implements the Frontier Analyzer: a pure function of an
// edge ordering that derives, for every edge index i, the entering
// frontier Fᵢ, the intermediate frontier F̃ᵢ = Fᵢ ∪ endpoints(eᵢ), and the
// exiting frontier Fᵢ₊₁ = F̃ᵢ ∖ {vertices last touched by eᵢ} — plus the
// cross-index maps between them that the Transition Builder (package
// engine) needs to translate component labels across a single edge step.
//
// Nothing here depends on edge-survival probabilities or on how states
// are represented; Analyze only looks at which vertices each edge
// touches and in what order. Two different edge orderings over the same
// graph produce different Analysis values (frontier width is
// order-dependent), but Analyze itself is deterministic and side-effect
// free.
package frontier

// Set is an ordered, strictly-increasing sequence of 1-indexed vertex ids.
// All frontiers use the same canonical order (ascending vertex id), which
// is also the order state.State.Comp entries are indexed by.
type Set []int

// Position returns the index of v within s, or -1 if absent. Sets are
// small (bounded in practice by the 64-component frontier limit), so a
// linear scan beats maintaining a side index.
func (s Set) Position(v int) int {
	for i, u := range s {
		if u == v {
			return i
		}
	}
	return -1
}

// Step holds everything the Transition Builder needs for a single edge
// index i: the three frontiers around eᵢ, the maps between them, the
// positions of eᵢ's own endpoints within the intermediate frontier, and
// the sources that first become live at this edge.
type Step struct {
	Prev Set // Fᵢ
	Med  Set // F̃ᵢ = Fᵢ ∪ endpoints(eᵢ)
	Next Set // Fᵢ₊₁

	// MedToPrev[t] is the position of Med[t] within Prev, or -1 if Med[t]
	// is newly entering at this edge (not in Fᵢ).
	MedToPrev []int
	// PrevToMed[k] is the position of Prev[k] within Med. Always >= 0:
	// every vertex in Fᵢ is also in F̃ᵢ.
	PrevToMed []int
	// NextToMed[l] is the position of Next[l] within Med. Always >= 0:
	// every vertex in Fᵢ₊₁ is also in F̃ᵢ.
	NextToMed []int
	// MedToNext[t] is the position of Med[t] within Next, or -1 if Med[t]
	// leaves the frontier after this edge (its last touch is eᵢ).
	MedToNext []int

	// UPos, VPos are the positions of eᵢ's two endpoints within Med.
	UPos, VPos int

	// Sources lists the source vertices whose first touching edge is eᵢ,
	// i.e. the sources that gain an asterisk at this step.
	Sources []int
}

// Analysis is the full output of Analyze: one Step per edge, and the
// Fᵢ sequence for every i in [0,m] (Frontiers[0] and Frontiers[m] are
// always empty).
type Analysis struct {
	N int
	M int

	// Frontiers[i] is Fᵢ for i in [0,m]. Frontiers[i] == Steps[i].Prev for
	// i < m, and Frontiers[m] == Steps[m-1].Next.
	Frontiers []Set
	Steps     []Step

	// SrcFinal is the largest edge index i such that Steps[i].Sources is
	// non-empty. Zero if no source is touched by any edge (see
	// UntouchedSources).
	SrcFinal int

	// UntouchedSources lists source vertices never touched by any edge.
	// Analyze does not treat this as an error; it is policy for the
	// caller (see engine.Options.StrictSourceCheck) to decide whether an
	// untouched source is a hard input error or a silent no-op.
	UntouchedSources []int
}
