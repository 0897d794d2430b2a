package graphpack

import "errors"

// Sentinel errors for GraphPack construction.
var (
	// ErrTooManyNodes indicates the grid has more cells (blocked or not)
	// than fit in a 32-bit node id space.
	ErrTooManyNodes = errors.New("graphpack: node count overflows 32 bits")

	// ErrTooManyEdges indicates the grid produces more directed edges
	// than fit in a 32-bit edge index.
	ErrTooManyEdges = errors.New("graphpack: edge count overflows 32 bits")

	// ErrNilGrid indicates Build was called with a nil *grid.Grid.
	ErrNilGrid = errors.New("graphpack: grid is nil")
)
