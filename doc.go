// Package parastar computes shortest paths over 2D grid graphs with
// obstacles using mass-parallel search engines modeled after GPU compute.
//
// What is parastar?
//
//	A Go module that marries classical best-first search with data-parallel
//	dispatch. It ships two engines on top of a shared, read-only device
//	layout:
//
//	  - enginem — one independent A* worker per (src,dst) agent
//	  - engines — a single query cooperatively solved by Q partitioned
//	    priority queues (a "GPU A*" / GA* variant)
//
// Why two engines?
//
//   - Batching many independent agents over a static grid is embarrassingly
//     parallel: enginem gives each agent its own worker and open/closed
//     state, sharing only the read-only adjacency data.
//   - A single very large query benefits from cooperative parallelism
//     instead: engines partitions the frontier across Q queues and routes
//     successors to their home queue so at most one queue ever closes a
//     given node, even though expansion happens concurrently.
//
// Under the hood, everything is organized under focused subpackages:
//
//	grid/      — immutable passable/blocked grid, Euclidean edge costs
//	graphpack/ — flattens a grid into dense, device-friendly arrays
//	search/    — shared NodeID/Coord/ReturnCode/Pair/Result vocabulary
//	device/    — abstract compute backend (buffers, kernel dispatch, atomics)
//	enginem/   — multi-agent parallel A*
//	engines/   — single-source cooperative GA*
//	oracle/    — sequential CPU A*, used by the test suite as ground truth
//
// A query never mutates the grid or the graph pack it was built from:
// GraphPack is immutable after Build, and every search's open/closed state
// is allocated per query and discarded once results are downloaded.
//
//	go get github.com/oclpath/parastar
package parastar
