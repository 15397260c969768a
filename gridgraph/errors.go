package gridgraph

import "errors"

// ErrTooSmall indicates rows or cols is smaller than 1.
var ErrTooSmall = errors.New("gridgraph: rows and cols must be >= 1")
