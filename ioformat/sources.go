package ioformat

import (
	"fmt"
	"io"
)

// ReadSourceFile parses one-or-more whitespace-separated vertex ids — the
// source-vertex file. Unlike ReadGraphFile/ReadProbabilityFile, its length is
// not known up front; it reads until EOF.
//
// Complexity: O(k) time and space, k = number of source ids in the file.
func ReadSourceFile(r io.Reader) ([]int, error) {
	var sources []int
	for {
		var v int
		_, err := fmt.Fscan(r, &v)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("ioformat: source vertex file: %w", err)
		}
		sources = append(sources, v)
	}
	return sources, nil
}
