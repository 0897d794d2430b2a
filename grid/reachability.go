package grid

import "github.com/oclpath/parastar/search"

// computeReachability assigns every passable cell a connected-component
// label with a direct breadth-first flood fill over Neighbors, starting a
// new label at each unvisited passable cell. Blocked cells keep label -1.
//
// This is the teacher lineage's gridgraph.ConnectedComponents repurposed:
// gridgraph groups cells by equal value to find terrain "islands", while
// here every passable cell belongs to the same single value class and the
// grouping answers a different question — "can an engine possibly reach
// dst from src" — so engines can return NO_PATH without dispatching a
// single kernel, and enginem without running A* for that agent, when src
// and dst fall in different components.
func (g *Grid) computeReachability() {
	g.reachClass = make([]int32, g.Size())
	for i := range g.reachClass {
		g.reachClass[i] = -1
	}

	var queue []search.NodeID
	label := int32(0)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Blocked(x, y) {
				continue
			}
			start := g.index(x, y)
			if g.reachClass[start] != -1 {
				continue
			}

			g.reachClass[start] = label
			queue = append(queue[:0], start)
			for len(queue) > 0 {
				id := queue[0]
				queue = queue[1:]
				for _, n := range g.Neighbors(id) {
					if g.reachClass[n.ID] != -1 {
						continue
					}
					g.reachClass[n.ID] = label
					queue = append(queue, n.ID)
				}
			}
			label++
		}
	}
}

// ReachabilityClass returns the connected-component label of id under
// the grid's connectivity, or -1 if id names a blocked cell. Two
// passable ids with equal labels are mutually reachable; two with
// differing labels are not.
func (g *Grid) ReachabilityClass(id search.NodeID) int {
	g.reachOnce.Do(g.computeReachability)
	if int(id) < 0 || int(id) >= len(g.reachClass) {
		return -1
	}
	return int(g.reachClass[id])
}

// SameComponent reports whether src and dst are mutually reachable. When
// given the grid via WithReachability, engines consults this before
// dispatching any kernel and enginem before running an agent's A*: a
// negative result lets them return search.NoPath immediately.
func (g *Grid) SameComponent(src, dst search.NodeID) bool {
	cs := g.ReachabilityClass(src)
	cd := g.ReachabilityClass(dst)
	return cs >= 0 && cs == cd
}
