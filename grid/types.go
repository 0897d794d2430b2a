// Package grid treats a 2D boolean obstacle map as an immutable graph:
// every passable cell is a node, dense-indexed in row-major order, and
// edges connect it to its 4 or 8 neighbors at Euclidean cost.
//
// A Grid never changes after NewGrid returns. graphpack.Build flattens it
// into the device-friendly arrays both search engines dispatch against.
// ReachabilityClass/SameComponent precompute connected components with a
// direct flood fill over Neighbors, used to short-circuit NO_PATH queries
// before any search work is done for them.
package grid

import (
	"sync"

	"github.com/oclpath/parastar/search"
)

// Connectivity selects 4- or 8-directional neighbor adjacency.
type Connectivity int

const (
	// Conn4 connects each cell to its N, E, S, W neighbors.
	Conn4 Connectivity = iota
	// Conn8 additionally connects the four diagonal neighbors.
	Conn8
)

// String renders the connectivity for logs and test failure messages.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "Conn4"
	case Conn8:
		return "Conn8"
	default:
		return "Connectivity(?)"
	}
}

// Neighbor is one adjacency candidate returned by Grid.Neighbors.
type Neighbor struct {
	ID   search.NodeID
	Cost float64
}

// Grid is an immutable W×H rectangle of passable/blocked cells.
//
// blocked[y][x] is a deep copy of the caller's input, so later mutation
// of the slice the caller passed to NewGrid cannot affect this Grid.
// neighborOffsets is precomputed once from the chosen Connectivity.
type Grid struct {
	width, height int
	blocked       [][]bool
	conn          Connectivity
	neighborOffsets [][2]int

	// reachability precomputation, lazily built by ReachabilityClass /
	// SameComponent on first use and memoized for the Grid's lifetime.
	reachOnce  sync.Once
	reachClass []int32
}
