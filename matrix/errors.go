// SPDX-License-Identifier: MIT
package matrix

import "errors"

// ErrTooManyEdges indicates the network has more edges than this
// brute-force solver's enumeration budget allows (2^m outcomes). Raise
// MaxEdges explicitly via Option if a larger exhaustive run is truly
// intended; this sentinel exists to fail fast rather than hang.
var ErrTooManyEdges = errors.New("matrix: edge count exceeds brute-force budget")
