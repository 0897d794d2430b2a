// Package engines is the single-source cooperative GA* engine: one
// shortest-path query solved by Q partitioned priority queues advancing
// in lock-step through a four-phase outer loop (extract&expand, clear,
// duplicate-detection, compute&push-back), routing successors to their
// home queue so at most one queue ever closes a given node even though
// every queue expands concurrently.
package engines

import "github.com/oclpath/parastar/grid"

// defaultQueueCount is Q, the design parameter from the spec's worked
// example.
const defaultQueueCount = 16

// Options configures a SolveOne call.
type Options struct {
	queueCount   int
	queueSize    int // 0 means "derive from N and queueCount"
	heuristic    func(ax, ay, bx, by int32) float64
	reachability *grid.Grid
}

// Option configures Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		queueCount: defaultQueueCount,
		heuristic:  euclideanHeuristic,
	}
}

// WithQueueCount overrides Q, the number of partitioned open lists.
// Correctness does not depend on Q; it only affects parallelism.
// Panics if n <= 0.
func WithQueueCount(n int) Option {
	if n <= 0 {
		panic("engines: WithQueueCount requires n > 0")
	}
	return func(o *Options) { o.queueCount = n }
}

// WithQueueSize overrides S, the per-queue capacity, which otherwise
// defaults to the next power of two >= ceil(N/Q). Panics if n <= 0.
func WithQueueSize(n int) Option {
	if n <= 0 {
		panic("engines: WithQueueSize requires n > 0")
	}
	return func(o *Options) { o.queueSize = n }
}

// WithHeuristic overrides the default Euclidean heuristic with an
// alternative admissible estimate, e.g. octile distance under
// 8-connectivity (see spec design notes).
func WithHeuristic(fn func(ax, ay, bx, by int32) float64) Option {
	return func(o *Options) { o.heuristic = fn }
}

// WithReachability supplies the grid.Grid a GraphPack was built from so
// SolveOne can answer NO_PATH immediately, without dispatching a single
// kernel, when src and dst fall in different connected components.
func WithReachability(g *grid.Grid) Option {
	return func(o *Options) { o.reachability = g }
}
