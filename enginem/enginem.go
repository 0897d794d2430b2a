package enginem

import (
	"context"
	"math"

	"github.com/oclpath/parastar/device"
	"github.com/oclpath/parastar/graphpack"
	"github.com/oclpath/parastar/search"
)

const (
	stateUnseen uint8 = iota
	stateOpen
	stateClosed
)

// SolveMany runs one independent A* search per (src,dst) pair in
// pairs, each on its own workgroup dispatched through backend. The
// result slice has the same length and order as pairs: Engine-M is
// order-independent, so permuting pairs permutes results identically.
//
// A failure in one agent's search (e.g. PathTooLong) never affects any
// other agent: each workgroup writes only its own result slot, and a
// kernel-level error from the backend itself (device failure, context
// cancellation) is the only thing that aborts the whole batch.
func SolveMany(ctx context.Context, pack *graphpack.GraphPack, pairs []search.Pair, backend device.Backend, opts ...Option) ([]search.Result, error) {
	if pack == nil || pack.NodeCount() == 0 {
		return nil, search.ErrEmptyPack
	}
	if backend == nil {
		return nil, search.ErrDeviceUnavailable
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Upload the pack once, up front; every agent's workgroup dispatches
	// against this device copy, never touching the host pack again.
	dp := device.Upload(pack)

	maxPathLength := cfg.maxPathLength
	if maxPathLength == 0 {
		maxPathLength = 2 * (dp.Width() + dp.Height())
	}

	caps := backend.Capabilities()
	results := make([]search.Result, len(pairs))

	err := backend.Launch(ctx, "enginem.astar", len(pairs), func(_ context.Context, wg int) error {
		defer func() {
			if r := recover(); r != nil {
				results[wg] = search.Result{Code: search.DeviceError}
			}
		}()
		pair := pairs[wg]
		if int(pair.Src) >= dp.NodeCount() || int(pair.Dst) >= dp.NodeCount() {
			results[wg] = search.Result{Code: search.NoPath}
			return nil
		}
		if cfg.reachability != nil && pair.Src != pair.Dst && !cfg.reachability.SameComponent(pair.Src, pair.Dst) {
			results[wg] = search.Result{Code: search.NoPath}
			return nil
		}
		results[wg] = solveAgent(dp, pair, maxPathLength, caps)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// solveAgent is one worker's full A* search, isolated from every other
// agent: its own info table (gScore/state/pred indexed directly by the
// dense node id, as the spec's per-worker data model describes) and its
// own localOpenList. It reads the graph only through dp, the uploaded
// device copy.
func solveAgent(dp *device.DevicePack, pair search.Pair, maxPathLength int, caps device.Capabilities) search.Result {
	if pair.Src == pair.Dst {
		return search.Result{Code: search.Found, Path: []search.NodeID{pair.Src}, Cost: 0}
	}

	n := dp.NodeCount()
	gScore := make([]float64, n)
	state := make([]uint8, n)
	pred := make([]search.NodeID, n)

	dstX, dstY, _ := dp.NodeCoord(pair.Dst)
	h := func(id search.NodeID) float64 {
		x, y, _ := dp.NodeCoord(id)
		return math.Hypot(float64(x-dstX), float64(y-dstY))
	}

	open := newLocalOpenList(caps.LocalMemoryPerGroupBytes)
	state[pair.Src] = stateOpen
	pred[pair.Src] = pair.Src
	open.push(openEntry{id: pair.Src, f: h(pair.Src), g: 0})

	for open.len() > 0 {
		cur, _ := open.popMin()
		if state[cur.id] == stateClosed {
			continue // stale entry from an earlier relaxation; skip
		}

		if cur.id == pair.Dst {
			path := reconstructPath(pred, pair.Src, pair.Dst)
			if len(path) > maxPathLength {
				return search.Result{Code: search.PathTooLong}
			}
			return search.Result{Code: search.Found, Path: path, Cost: gScore[cur.id]}
		}
		state[cur.id] = stateClosed

		edges, err := dp.OutEdges(cur.id)
		if err != nil {
			continue
		}
		for _, e := range edges {
			v := search.NodeID(e.Target)
			if state[v] == stateClosed {
				continue
			}
			tentative := gScore[cur.id] + float64(e.Cost)
			if state[v] == stateOpen && tentative >= gScore[v] {
				continue
			}
			gScore[v] = tentative
			pred[v] = cur.id
			state[v] = stateOpen
			open.push(openEntry{id: v, f: tentative + h(v), g: tentative})
		}
	}

	return search.Result{Code: search.NoPath}
}

// reconstructPath walks pred from dst back to src (whose own
// predecessor is itself, the self-predecessor sentinel the spec
// mandates), then reverses the walk into src-to-dst order.
func reconstructPath(pred []search.NodeID, src, dst search.NodeID) []search.NodeID {
	path := []search.NodeID{dst}
	cur := dst
	for cur != src {
		cur = pred[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
