package ioformat

import (
	"fmt"
	"io"
)

// ReadProbabilityFile parses m whitespace-separated floats — the survival
// probability file, aligned index-for-index with the graph file's
// original edge order (not the order file's: the order file only
// decides processing order, probabilities stay keyed to the original
// edge identity).
//
// Complexity: O(m) time and space.
func ReadProbabilityFile(r io.Reader, m int) ([]float64, error) {
	pi := make([]float64, m)
	for i := 0; i < m; i++ {
		if _, err := fmt.Fscan(r, &pi[i]); err != nil {
			return nil, fmt.Errorf("ioformat: probability %d: %w: %v", i, ErrMalformedProbabilityFile, err)
		}
	}
	return pi, nil
}
