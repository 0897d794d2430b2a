package graphpack

import (
	"fmt"
	"math"

	"github.com/oclpath/parastar/grid"
	"github.com/oclpath/parastar/search"
)

// Build scans g in row-major order and flattens it into a GraphPack.
//
// Every cell, blocked or not, gets a node entry at its dense id = y*W+x
// so that id arithmetic never needs a compaction table; a blocked cell
// simply ends up with an empty adjacency range, since grid.Grid.Neighbors
// never returns it as anyone's neighbor and it has none of its own.
//
// Fails fast with a %w-wrapped ErrTooManyNodes or ErrTooManyEdges if
// either count would overflow the 32-bit id/index space the device layout
// commits to, mirroring the ordered validation builder.Grid performs. The
// node count is checked before any storage is allocated; the edge count
// is checked during the scan. No partial GraphPack is returned on failure.
func Build(g *grid.Grid) (*GraphPack, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	w, h := g.Width(), g.Height()
	n := w * h
	if int64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("%dx%d grid: %w", w, h, ErrTooManyNodes)
	}

	maxSucc := 4
	if g.Connectivity() == grid.Conn8 {
		maxSucc = 8
	}

	nodes := make([]Node, n)
	adjacency := make([]AdjacencyRange, n)
	edges := make([]Edge, 0, n*maxSucc)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := search.NodeID(y*w + x)
			nodes[id] = Node{X: int32(x), Y: int32(y)}

			begin := uint64(len(edges))
			for _, nb := range g.Neighbors(id) {
				if uint64(len(edges))+1 > math.MaxUint32 {
					return nil, fmt.Errorf("node %d: %w", id, ErrTooManyEdges)
				}
				edges = append(edges, Edge{Target: uint32(nb.ID), Cost: float32(nb.Cost)})
			}
			adjacency[id] = AdjacencyRange{Begin: uint32(begin), End: uint32(len(edges))}
		}
	}

	return &GraphPack{
		nodes:     nodes,
		edges:     edges,
		adjacency: adjacency,
		width:     w,
		height:    h,
		maxSucc:   maxSucc,
	}, nil
}
