package order

import "errors"

// ErrNoVertices indicates n < 1.
var ErrNoVertices = errors.New("order: n must be >= 1")

// ErrPermutationLength indicates Apply was called with a probability slice
// whose length does not match the permutation's edge count.
var ErrPermutationLength = errors.New("order: len(pi) does not match permutation length")
