// Package oracle is a sequential, heap-based CPU A* used only by this
// module's test suite as ground truth: every engine result is expected
// to match the oracle's cost within the tolerance spec.md's testable
// properties require, regardless of which path of equal cost either
// engine actually returns.
//
// It is deliberately unoptimized next to enginem/engines: no local
// memory budget, no partitioned queues, no device backend — a plain
// classical A* over grid.Grid, generalized from itohio-EasyRobot's
// FastAStar (reusable map-backed buffers, container/heap open list) from
// a fixed-obstacle matrix to this module's Grid abstraction.
package oracle

import (
	"container/heap"
	"math"

	"github.com/oclpath/parastar/grid"
	"github.com/oclpath/parastar/search"
)

// euclidean is the admissible, consistent heuristic both engines also
// use: straight-line distance between cell centers.
func euclidean(g *grid.Grid, a, b search.NodeID) float64 {
	ax, ay := g.Coordinate(a)
	bx, by := g.Coordinate(b)
	dx, dy := float64(bx-ax), float64(by-ay)
	return math.Hypot(dx, dy)
}

// ShortestPath runs classical A* from src to dst over g. If src == dst
// it trivially returns ([]search.NodeID{src}, 0, true), matching the
// contract both SolveOne and SolveMany must satisfy. found is false iff
// dst is unreachable from src.
func ShortestPath(g *grid.Grid, src, dst search.NodeID) (path []search.NodeID, cost float64, found bool) {
	if src == dst {
		return []search.NodeID{src}, 0, true
	}

	gScore := map[search.NodeID]float64{src: 0}
	cameFrom := map[search.NodeID]search.NodeID{}
	closed := map[search.NodeID]bool{}

	open := &openHeap{}
	heap.Init(open)
	heap.Push(open, &item{id: src, fScore: euclidean(g, src, dst), gScore: 0})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*item)
		if closed[cur.id] {
			continue
		}
		if cur.id == dst {
			return reconstruct(cameFrom, src, dst), cur.gScore, true
		}
		closed[cur.id] = true

		for _, n := range g.Neighbors(cur.id) {
			if closed[n.ID] {
				continue
			}
			tentative := cur.gScore + n.Cost
			if existing, ok := gScore[n.ID]; ok && tentative >= existing {
				continue
			}
			gScore[n.ID] = tentative
			cameFrom[n.ID] = cur.id
			heap.Push(open, &item{
				id:     n.ID,
				gScore: tentative,
				fScore: tentative + euclidean(g, n.ID, dst),
			})
		}
	}

	return nil, 0, false
}

func reconstruct(cameFrom map[search.NodeID]search.NodeID, src, dst search.NodeID) []search.NodeID {
	path := []search.NodeID{dst}
	cur := dst
	for cur != src {
		prev := cameFrom[cur]
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
