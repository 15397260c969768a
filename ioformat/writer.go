package ioformat

import (
	"fmt"
	"io"

	"github.com/nttcslab/cs-reliability/engine"
)

// WriteLevels writes res in the reference front-end's exact level-wise
// format:
//
//	LEVEL <i>:
//	<vertex> : <probability, %.15f>
//	...
//
// one block per engine.LevelResult, in the order res.Levels already
// holds them (ascending level). This is byte-for-byte compatible with
// original_source/src/main.cpp's stdout, modulo Go's %.15f vs C's
// %.15lf (identical formatting for finite floats).
func WriteLevels(w io.Writer, res *engine.Result) error {
	for _, lvl := range res.Levels {
		if _, err := fmt.Fprintf(w, "LEVEL %d:\n", lvl.Level); err != nil {
			return err
		}
		for _, v := range lvl.Values {
			if _, err := fmt.Fprintf(w, "%d : %.15f\n", v.Vertex, v.P); err != nil {
				return err
			}
		}
	}
	return nil
}
