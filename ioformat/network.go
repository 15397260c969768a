package ioformat

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/nttcslab/cs-reliability/core"
)

// networkSchema is the JSON Schema every network document must satisfy
// before it is even unmarshalled into networkDocument — catching type
// errors and missing fields with a human-readable report instead of a
// generic encoding/json error.
const networkSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "cs-reliability network document",
  "type": "object",
  "required": ["n", "edges", "pi", "sources"],
  "properties": {
    "n": {"type": "integer", "minimum": 1},
    "edges": {
      "type": "array",
      "items": {
        "type": "array",
        "items": {"type": "integer", "minimum": 1},
        "minItems": 2,
        "maxItems": 2
      }
    },
    "pi": {
      "type": "array",
      "items": {"type": "number", "minimum": 0, "maximum": 1}
    },
    "sources": {
      "type": "array",
      "items": {"type": "integer", "minimum": 1}
    }
  }
}`

// networkDocument mirrors the four-input data model core.Network
// validates, in a single JSON document: {"n":3,"edges":[[1,2],[2,3]],
// "pi":[0.9,0.8],"sources":[1]}.
type networkDocument struct {
	N       int     `json:"n"`
	Edges   [][]int `json:"edges"`
	Pi      []float64 `json:"pi"`
	Sources []int   `json:"sources"`
}

// ReadNetworkJSON parses a JSON network document from r, validates it
// against networkSchema, and resolves it into a *core.Network via
// core.NewNetwork (which performs its own, stricter, shape checks —
// schema validation here only guards the document's outer JSON shape).
func ReadNetworkJSON(r io.Reader) (*core.Network, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading network document: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(networkSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("ioformat: schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("ioformat: %s: %w", strings.Join(msgs, "; "), ErrSchemaValidation)
	}

	var doc networkDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("ioformat: decoding network document: %w", err)
	}

	edges := make([]core.Edge, len(doc.Edges))
	for i, pair := range doc.Edges {
		edges[i] = core.Edge{U: pair[0], V: pair[1]}
	}

	return core.NewNetwork(doc.N, edges, doc.Pi, doc.Sources)
}

// WriteNetwork serializes net back into the networkDocument JSON shape,
// the inverse of ReadNetworkJSON.
func WriteNetwork(w io.Writer, net *core.Network) error {
	doc := networkDocument{
		N:       net.N(),
		Edges:   make([][]int, net.M()),
		Pi:      net.Pi(),
		Sources: net.Sources(),
	}
	for i, e := range net.Edges() {
		doc.Edges[i] = []int{e.U, e.V}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
