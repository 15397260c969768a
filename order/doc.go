// Package order provides edge-ordering heuristics that choose a good
// permutation of a core.Network's edges before frontier analysis. The
// Frontier Analyzer's memory and time cost is governed by how wide the
// frontier gets at its worst point; a bad edge order can make a
// path-like network behave like a complete graph. Both heuristics here
// are graph-structural proxies for "small pathwidth", not exact
// pathwidth solvers (which are themselves NP-hard):
//
//   - BFSLevelOrder groups edges by the BFS layer (from the source set)
//     their far endpoint sits in, so the frontier advances roughly one
//     layer at a time.
//   - MSTOrder builds a minimum/maximum spanning tree and orders edges by
//     DFS discovery time over that tree, so tree edges are processed in
//     a single depth-first sweep and chords close as soon as possible.
//
// Neither strategy requires the caller to already have a core.Network;
// both operate on the raw (n, edges) shape so they can run before
// probabilities or sources are even finalized, then Apply reorders a
// parallel probability slice to match.
package order
