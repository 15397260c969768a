// Package gridgraph builds rectangular lattice networks with the
// canonical row-major edge order: for each cell, in row-major scan
// order, the edge to its right neighbor then the edge to its neighbor
// below. That order is the classical bounded-pathwidth showcase for
// frontier-based algorithms — the frontier never holds more than
// cols+1 live vertices (one row's width plus one).
package gridgraph
