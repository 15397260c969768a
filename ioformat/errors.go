package ioformat

import "errors"

// ErrMalformedGraphFile indicates the graph/order edge-list file's header
// or an edge line could not be parsed as whitespace-separated integers.
var ErrMalformedGraphFile = errors.New("ioformat: malformed graph file")

// ErrMalformedProbabilityFile indicates the probability file yielded
// fewer floats than the edge count it must align to.
var ErrMalformedProbabilityFile = errors.New("ioformat: malformed probability file")

// ErrUnknownEdge indicates an order file names an edge that is not one
// of the base graph file's edges (checked as an unordered pair).
var ErrUnknownEdge = errors.New("ioformat: order file references an edge absent from the graph file")

// ErrOrderLengthMismatch indicates the order file's edge count does not
// match the base graph's edge count — a permutation must be a bijection.
var ErrOrderLengthMismatch = errors.New("ioformat: order file edge count does not match the graph file")

// ErrSchemaValidation indicates a JSON network document failed the
// package's JSON Schema.
var ErrSchemaValidation = errors.New("ioformat: network document failed schema validation")
