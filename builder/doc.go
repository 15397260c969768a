// SPDX-License-Identifier: MIT
// Package builder provides synthetic network generators — path, cycle,
// complete, and Erdős–Rényi sparse topologies — for benchmarking and
// property-testing the reliability engine without hand-writing edge
// lists.
//
// Every generator returns a Spec: an edge order plus an aligned
// survival-probability vector, ready to become a *core.Network via
// Spec.Network(sources). Probabilities are assigned by a ProbFn
// (constant by default, WithProbFn/WithUniformProb/WithRand/WithSeed
// to customize), resolved through a functional-options config.
//
// Determinism: Path, Cycle, and Complete are pure functions of n and
// the probability options — same inputs, same Spec, always. RandomSparse
// additionally requires an RNG (WithSeed or WithRand); the same seed and
// n reproduce the same edge set and probabilities.
package builder
