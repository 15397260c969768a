// SPDX-License-Identifier: MIT
package builder

import "errors"

// ErrTooFewVertices indicates n is smaller than the minimum a constructor
// requires (Path needs n>=2, Cycle n>=3, Complete n>=1).
var ErrTooFewVertices = errors.New("builder: n too small")

// ErrInvalidProbability indicates a probability argument (RandomSparse's
// edge-inclusion probability p, or a WithUniformProb value) lies outside
// the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor (RandomSparse) ran
// without an RNG resolved into builderConfig — callers must supply
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
