// Package state implements the State Store: a level-indexed collection
// of hash maps from canonical frontier state to node id, plus a flat,
// append-only arena of DP nodes.
//
// A State is canonical by construction: component labels are assigned in
// first-occurrence order, so two states are structurally equal iff they
// are value-equal, which is exactly what makes hash-based interning
// sound. The asterisk mixing used for State.Hash is ported from the
// original C++ implementation's FNV-1a constants (mylib/common.hpp) for
// bit-for-bit reproducibility with the reference tool's hashing scheme.
package state

import (
	"errors"
)

// ErrFrontierOverflow is returned by Store.Intern when a state would need
// more than 64 connectivity classes — the asterisk bitmask's capacity.
var ErrFrontierOverflow = errors.New("state: frontier exceeds 64 live components")

// FNV-1a 64-bit constants, ported from the reference implementation's
// mylib/common.hpp so State.Hash reproduces the same mixing scheme.
const (
	fnvOffsetBasis64 uint64 = 14695981039346656037
	fnvPrime64       uint64 = 1099511628211
)

// NodeID indexes Store's arena. 0 and 1 are reserved for the terminal
// "false" node and the root node respectively.
type NodeID uint32

const (
	// TerminalFalse is the reserved id of the "dead/disconnected" terminal.
	// Its Q is the two-cell [0, 1] artifact: index 0 is the "never
	// connects" outcome, index 1 is the "accepted via the pruning fast
	// path" outcome.
	TerminalFalse NodeID = 0
	// Root is the reserved id of the level-0 root node (empty frontier,
	// no components, P = 1).
	Root NodeID = 1
)

// State is a canonically-labelled frontier partition: Comp[k] is the
// connectivity class of the k-th frontier vertex (in the frontier's
// ascending vertex-id order), and Ast is a bitmask over class indices
// marking which classes contain a source.
//
// Canonical form: Comp[0] == 0, and for every k > 0,
// Comp[k] <= 1 + max(Comp[0:k]). Two States are equal iff Comp and Ast
// are identical.
type State struct {
	Comp []int8
	Ast  uint64
}

// CNum returns the number of connectivity classes represented by Comp:
// one more than the largest label, or zero for an empty frontier.
func (s State) CNum() int {
	max := int8(-1)
	for _, c := range s.Comp {
		if c > max {
			max = c
		}
	}
	return int(max) + 1
}

// IsCanonical reports whether Comp is in first-occurrence canonical form.
// Used by tests to check the canonical-labelling invariant; not called
// on the hot path.
func (s State) IsCanonical() bool {
	next := int8(0)
	for _, c := range s.Comp {
		if c < 0 || c > next {
			return false
		}
		if c == next {
			next++
		}
	}
	return true
}

// key returns a value usable as a Go map key that is equal iff the State
// is equal. Comp is copied into a string, which Go treats as an
// immutable, comparable value — no custom equality or hashing needed for
// the actual interning map (see Store).
func (s State) key() string {
	buf := make([]byte, len(s.Comp)+8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(s.Ast >> (8 * i))
	}
	for i, c := range s.Comp {
		buf[8+i] = byte(c)
	}
	return string(buf)
}

// Hash mixes Ast and Comp using the reference implementation's FNV-1a
// constants, seeded with seed instead of the default offset basis. It is
// not used by Store's interning map (Go's native map already gives
// correct, fast hashing over State.key()); it exists so callers —
// notably engine.Options.WithHashSeed and the metrics package — can
// obtain a reproducible per-state fingerprint for logging, tracing, and
// determinism tests.
func (s State) Hash(seed uint64) uint64 {
	h := seed
	h = fnvPrime64*h ^ s.Ast
	for _, c := range s.Comp {
		h = fnvPrime64*h ^ uint64(uint8(c))
	}
	return h
}

// DefaultHashSeed is the reference implementation's FNV-1a offset basis.
func DefaultHashSeed() uint64 { return fnvOffsetBasis64 }

// Node is one DP node: the decision at a given edge level, its two
// successors, the per-component value maps linking this node's
// components to its successors' components (or to -1, "does not
// survive"), and the two DP scalars filled by the forward/backward
// passes in package engine.
type Node struct {
	ID    NodeID
	Level int   // edge index at which this node decides
	CNum  int8  // number of connectivity classes in this node's own state
	Lo    NodeID
	Hi    NodeID
	VLo   []int8 // length CNum; -1 means "does not survive on the 0-branch"
	VHi   []int8 // length CNum; -1 means "does not survive on the 1-branch"

	P float64   // probability mass reaching this node from the root
	Q []float64 // length CNum; per-component connect-to-source probability

	// Fingerprint is State.Hash(seed) for the state this node was interned
	// from, recorded at creation time purely for diagnostics (metrics,
	// deterministic-hash tests); it plays no role in DP correctness.
	Fingerprint uint64
}
