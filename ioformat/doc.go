// Package ioformat implements the reliability engine's external
// front-end contract: a whitespace-separated graph edge-list file, a
// probability file, a source-vertex file, and an order file that is a
// permutation of the graph file's edges — plus a JSON network document
// validated against a JSON Schema (github.com/xeipuuv/gojsonschema) for
// callers who would rather hand the engine one self-describing file. It
// also reproduces the reference front-end's level-wise result format
// exactly ("LEVEL i:\n vertex : probability\n..."), so output stays
// diffable against the original tool's stdout.
//
// None of this package is on the engine's hot path — it is the CLI
// layer wired in front of the core, mirroring how the reference
// front-end's main routine drives its own engine.
package ioformat
