// Package enginem is the multi-agent parallel A* engine: given a batch of
// independent (src,dst) pairs, it runs one classical A* search per agent,
// each on its own workgroup, sharing only the read-only graphpack.GraphPack
// they were all built against.
package enginem

import "github.com/oclpath/parastar/grid"

// Options configures a SolveMany call.
type Options struct {
	maxPathLength int
	reachability  *grid.Grid
}

// Option configures Options.
type Option func(*Options)

// defaultOptions mirrors dijkstra.DefaultOptions: a fully-populated
// struct callers can override piecemeal via the functional options
// below.
func defaultOptions() Options {
	return Options{
		maxPathLength: 0, // 0 means "derive from L_max = 2*(W+H)"
	}
}

// WithMaxPathLength overrides the default L_max = 2*(W+H) path-length
// bound with an explicit value. Panics if n <= 0, the same precedent
// dijkstra.WithMaxDistance sets for caller-supplied constants. How many
// agents run concurrently is a property of the device.Backend passed to
// SolveMany (see device.NewCPUBackend), not of this engine.
func WithMaxPathLength(n int) Option {
	if n <= 0 {
		panic("enginem: WithMaxPathLength requires n > 0")
	}
	return func(o *Options) { o.maxPathLength = n }
}

// WithReachability supplies the grid.Grid a GraphPack was built from so
// SolveMany can consult its precomputed reachability classes
// (grid.Grid.SameComponent) and answer NO_PATH for an unreachable pair
// without running A* for that agent at all.
func WithReachability(g *grid.Grid) Option {
	return func(o *Options) { o.reachability = g }
}
