// SPDX-License-Identifier: MIT
// Package matrix provides an independent, brute-force exact reliability
// solver: it enumerates every one of the 2^m edge-survival outcomes of a
// core.Network, and for each outcome, asks "which vertices are connected
// to a source" via gonum's graph/topo connected-components routine. It is
// deliberately exponential, and deliberately simple — its only job is to
// be trustworthy ground truth for the engine package's frontier-based
// dynamic program, per the cross-check testable property.
//
// Not on the hot path: BruteForce is exponential in edge count and is
// meant for small networks (tests, worked examples), never production
// traffic.
package matrix
