package grid

import "errors"

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfBounds indicates a coordinate or node id outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrBlockedCell indicates an operation was asked to treat a blocked
	// cell as a valid endpoint.
	ErrBlockedCell = errors.New("grid: cell is blocked")
)
