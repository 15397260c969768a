// Package engine implements the Transition Builder, the two-pass DP
// engine, and the Result Emitter: everything that turns a
// frontier.Analysis plus per-edge survival probabilities into the
// per-vertex, per-level connect-to-source probabilities.
//
// Compute is the sole entry point. It is synchronous and single-threaded
// end to end: no goroutines, no channels, no context.Context — callers
// that need cancellation or progress reporting wrap Compute from the
// outside (see package metrics) via WithProgress.
package engine

import (
	"errors"

	"github.com/nttcslab/cs-reliability/state"
)

// ErrSourceUntouched is returned when StrictSourceCheck is enabled (the
// default) and at least one source vertex is never touched by any edge.
var ErrSourceUntouched = errors.New("engine: source vertex is never touched by any edge")

// Options configures a single Compute call.
type Options struct {
	// StrictSourceCheck rejects untouched sources with ErrSourceUntouched
	// when true (default). When false, an untouched source is silently
	// ignored, matching the legacy front-end's erase-on-first-touch
	// behavior for sources that never appear in the edge list.
	StrictSourceCheck bool

	// HashSeed seeds state.State.Hash for the Fingerprint recorded on
	// every interned node. It does not affect which states are
	// considered equal (Store's interning map uses exact value
	// equality regardless of seed) — only the diagnostic fingerprint
	// package metrics and reproducibility tests observe.
	HashSeed uint64

	// Progress, if non-nil, is invoked once after each edge level finishes
	// construction, with the edge index and the number of states that
	// were live at that level. Package metrics installs none; its
	// Collector.Compute passes caller options through unchanged.
	Progress func(level, statesAtLevel int)
}

// Option is a functional option for Compute.
type Option func(*Options)

// DefaultOptions returns the engine's default configuration: strict
// source checking enabled, the reference implementation's FNV-1a offset
// basis as the hash seed, and no progress hook.
func DefaultOptions() Options {
	return Options{
		StrictSourceCheck: true,
		HashSeed:          state.DefaultHashSeed(),
	}
}

// WithStrictSourceCheck overrides whether an untouched source is a hard
// error (true, the default) or a silent no-op (false).
func WithStrictSourceCheck(strict bool) Option {
	return func(o *Options) { o.StrictSourceCheck = strict }
}

// WithHashSeed overrides the FNV-1a seed used for node fingerprints.
func WithHashSeed(seed uint64) Option {
	return func(o *Options) { o.HashSeed = seed }
}

// WithProgress installs a per-level progress callback.
func WithProgress(fn func(level, statesAtLevel int)) Option {
	return func(o *Options) { o.Progress = fn }
}

// VertexProb pairs a vertex id with its computed connect-to-source
// probability at one level.
type VertexProb struct {
	Vertex int
	P      float64
}

// LevelResult is the Result Emitter's output for one edge level: Level
// is the edge index i, Values holds one VertexProb per vertex in Fᵢ.
type LevelResult struct {
	Level  int
	Values []VertexProb
}

// Result is the full output of Compute.
type Result struct {
	// Levels holds one LevelResult per i in [1, m), in ascending Level
	// order, including levels whose Fᵢ is empty (their Values is empty).
	// A vertex touched by only one edge never appears in any Fᵢ for i in
	// that range (the k_m = 0 case; e.g. vertex 2 of the single edge
	// (1,2)) — its reliability is still recoverable, e.g. via package
	// matrix's brute-force cross-check, just not via this per-level
	// stream.
	Levels []LevelResult

	// StateCount is the number of allocated DP nodes, including the two
	// reserved terminal/root ids.
	StateCount int
}
