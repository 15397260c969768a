// SPDX-License-Identifier: MIT
package builder

import "math/rand"

// ProbFn produces a survival probability for one edge given an RNG (which
// may be nil when the generator is deterministic). Implementations must
// return a value in [0,1].
type ProbFn func(rng *rand.Rand) float64

// DefaultProb is the survival probability assigned to every edge when the
// caller supplies no ProbFn.
const DefaultProb = 0.9

// DefaultProbFn always returns DefaultProb, independent of rng.
func DefaultProbFn(rng *rand.Rand) float64 { return DefaultProb }

// Option customizes a generator by mutating a builderConfig before edges
// are emitted.
type Option func(*builderConfig)

type builderConfig struct {
	rng    *rand.Rand
	probFn ProbFn
}

func newBuilderConfig(opts ...Option) *builderConfig {
	cfg := &builderConfig{probFn: DefaultProbFn}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand supplies an explicit RNG. A nil argument is a no-op, leaving
// any RNG already resolved (e.g. by an earlier WithSeed) untouched.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a deterministic *rand.Rand from seed and installs it.
// Use this to get reproducible RandomSparse topologies in tests.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithProbFn overrides the per-edge probability generator. A nil argument
// is a no-op.
func WithProbFn(fn ProbFn) Option {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.probFn = fn
		}
	}
}

// WithUniformProb assigns the same constant probability p to every edge.
// Panics are avoided here by design (option constructors only mutate
// config); p is validated by each generator via validateProb.
func WithUniformProb(p float64) Option {
	return func(cfg *builderConfig) {
		cfg.probFn = func(rng *rand.Rand) float64 { return p }
	}
}

func validateProb(p float64) bool { return p >= 0 && p <= 1 }
