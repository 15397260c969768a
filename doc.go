// Package reliability is the exact multi-target network-reliability engine
// behind cs-reliability.
//
// Given an undirected graph with independent per-edge survival
// probabilities and a set of source vertices, it computes — for every
// vertex live on the frontier at some level of a fixed edge scan, sources
// included (a vertex touched by only one edge is not reported) — the
// probability that the vertex is connected to at least one source.
//
//	A modern frontier-based-search (FBS) engine built from:
//
//	  • Frontier analysis: derives per-edge frontier sets and cross-index maps
//	  • State interning: canonical vertex-partition states, hashed into an arena
//	  • A two-pass DP over the resulting BDD-like DAG
//
// Under the hood, the engine is organized across subpackages:
//
//	core/       — the (n, edges, pi, sources) input model and its validation
//	frontier/   — Frontier Analyzer: entering/intermediate/exiting frontiers
//	state/      — State Store: canonical states, arena, hash-based interning
//	engine/     — Transition Builder + forward/backward DP + result emission
//	order/      — edge-ordering heuristics that keep frontiers narrow
//	builder/    — synthetic network generators for benchmarks and tests
//	gridgraph/  — lattice network generator with a canonical row-major order
//	matrix/     — brute-force exact solver used to cross-check the engine
//	metrics/    — Prometheus/OpenTelemetry instrumentation around Compute
//	ioformat/   — legacy file-format readers and the level-wise result writer
//	cmd/reliability/ — CLI front end
package reliability
