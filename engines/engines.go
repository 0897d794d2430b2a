package engines

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/oclpath/parastar/device"
	"github.com/oclpath/parastar/graphpack"
	"github.com/oclpath/parastar/search"
)

// successor is one candidate edge produced by ExtractAndExpand, pending
// duplicate detection.
type successor struct {
	from   search.NodeID
	target search.NodeID
	cost   float32
}

// pending is one entry DuplicateDetection has committed to the info
// table and routed toward a home queue for ComputeAndPushBack.
type pending struct {
	id search.NodeID
	f  float64
	g  float64
}

// SolveOne finds a single shortest path from src to dst over pack using
// Q partitioned open lists dispatched through backend. If src == dst it
// trivially returns ([dst], 0, FOUND) without touching the device.
//
// Returns search.ErrMissingCapability if backend lacks 64-bit atomics:
// this engine packs (g_score, predecessor) into one word per node and
// relaxes it via compare-and-swap, so a backend without that capability
// can never run it correctly.
func SolveOne(ctx context.Context, pack *graphpack.GraphPack, src, dst search.NodeID, backend device.Backend, opts ...Option) (search.Result, error) {
	if pack == nil || pack.NodeCount() == 0 {
		return search.Result{}, search.ErrEmptyPack
	}
	if backend == nil {
		return search.Result{}, search.ErrDeviceUnavailable
	}
	n := pack.NodeCount()
	if int(src) >= n || int(dst) >= n {
		return search.Result{}, search.ErrNodeOutOfRange
	}
	if src == dst {
		return search.Result{Code: search.Found, Path: []search.NodeID{dst}, Cost: 0}, nil
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.reachability != nil && !cfg.reachability.SameComponent(src, dst) {
		return search.Result{Code: search.NoPath}, nil
	}

	caps := backend.Capabilities()
	if !caps.Atomic64 {
		return search.Result{}, search.ErrMissingCapability
	}

	// Upload the pack once, up front; every phase of the outer loop
	// dispatches against this device copy, never touching the host pack
	// again.
	dp := device.Upload(pack)
	e := newEngine(dp, src, dst, cfg)

	for {
		if err := e.clearS(ctx, backend); err != nil {
			return search.Result{}, err
		}
		if err := e.extractAndExpand(ctx, backend); err != nil {
			return search.Result{}, err
		}
		if err := e.clearT(ctx, backend); err != nil {
			return search.Result{}, err
		}
		if err := e.duplicateDetection(ctx, backend); err != nil {
			return search.Result{}, err
		}
		if err := e.computeAndPushBack(ctx, backend); err != nil {
			return search.Result{}, err
		}

		switch e.code() {
		case search.Found:
			return search.Result{Code: search.Found, Path: e.reconstruct(), Cost: e.goalCost()}, nil
		case search.QueueOverflow:
			return search.Result{Code: search.QueueOverflow}, nil
		case search.NoPath:
			return search.Result{Code: search.NoPath}, nil
		}
		// RUNNING: continue the outer loop.
	}
}

// engine holds one SolveOne call's shared state across outer-loop
// iterations.
type engine struct {
	pack *device.DevicePack
	src  search.NodeID
	dst  search.NodeID
	q    int

	heuristic func(ax, ay, bx, by int32) float64
	dstX      int32
	dstY      int32

	queues []*partitionQueue

	info     *device.AtomicWords
	closed   []uint32 // 0 = open, 1 = closed, via atomic CAS/Store
	overflow int32    // 0/1, set atomically on QUEUE_OVERFLOW

	found int32 // 0/1, set atomically when dst is extracted

	sChunks [][]successor
	tChunks [][]pending
	tMu     []sync.Mutex
}

func homeQueue(id search.NodeID, q int) int { return int(id) % q }

func queueSize(n, q int) int {
	per := (n + q - 1) / q
	size := 1
	for size < per {
		size *= 2
	}
	if size < 1 {
		size = 1
	}
	return size
}

func newEngine(pack *device.DevicePack, src, dst search.NodeID, cfg Options) *engine {
	n := pack.NodeCount()
	q := cfg.queueCount
	if q > n {
		q = n
	}
	if q < 1 {
		q = 1
	}
	s := cfg.queueSize
	if s == 0 {
		s = queueSize(n, q)
	}

	dstX, dstY, _ := pack.NodeCoord(dst)

	e := &engine{
		pack:      pack,
		src:       src,
		dst:       dst,
		q:         q,
		heuristic: cfg.heuristic,
		dstX:      dstX,
		dstY:      dstY,
		queues:    make([]*partitionQueue, q),
		info:      device.NewAtomicWords(n),
		closed:    make([]uint32, n),
		sChunks:   make([][]successor, q),
		tChunks:   make([][]pending, q),
		tMu:       make([]sync.Mutex, q),
	}
	for i := range e.queues {
		e.queues[i] = newPartitionQueue(s)
	}
	for i := 0; i < n; i++ {
		e.info.Store(i, unvisitedWord)
	}

	e.info.Store(int(src), packWord(0, src))
	home := homeQueue(src, q)
	e.queues[home].pushOrUpdate(src, e.h(src), 0)

	return e
}

func (e *engine) h(id search.NodeID) float64 {
	x, y, _ := e.pack.NodeCoord(id)
	return e.heuristic(x, y, e.dstX, e.dstY)
}

func (e *engine) clearS(ctx context.Context, backend device.Backend) error {
	return backend.Launch(ctx, "engines.clearS", e.q, func(_ context.Context, wg int) error {
		e.sChunks[wg] = e.sChunks[wg][:0]
		return nil
	})
}

func (e *engine) clearT(ctx context.Context, backend device.Backend) error {
	return backend.Launch(ctx, "engines.clearT", e.q, func(_ context.Context, wg int) error {
		e.tChunks[wg] = e.tChunks[wg][:0]
		return nil
	})
}

// extractAndExpand pops each queue's minimum entry (skipping stale
// entries whose id was already closed by another iteration's routing),
// marks it closed, and stages its non-closed successors into this
// queue's S-chunk.
func (e *engine) extractAndExpand(ctx context.Context, backend device.Backend) error {
	return backend.Launch(ctx, "engines.extractAndExpand", e.q, func(_ context.Context, wg int) error {
		queue := e.queues[wg]
		var popped qEntry
		var ok bool
		for {
			popped, ok = queue.popMin()
			if !ok {
				return nil
			}
			if atomic.LoadUint32(&e.closed[popped.id]) == 0 {
				break
			}
		}

		atomic.StoreUint32(&e.closed[popped.id], 1)

		if popped.id == e.dst {
			atomic.StoreInt32(&e.found, 1)
			return nil
		}

		edges, err := e.pack.OutEdges(popped.id)
		if err != nil {
			return err
		}
		for _, edge := range edges {
			target := search.NodeID(edge.Target)
			if atomic.LoadUint32(&e.closed[target]) == 1 {
				continue
			}
			e.sChunks[wg] = append(e.sChunks[wg], successor{from: popped.id, target: target, cost: edge.Cost})
		}
		return nil
	})
}

// duplicateDetection processes each queue's S-chunk, atomically
// relaxing the info table entry for every successor, and routes winners
// to their home queue's T-chunk.
func (e *engine) duplicateDetection(ctx context.Context, backend device.Backend) error {
	return backend.Launch(ctx, "engines.duplicateDetection", e.q, func(_ context.Context, wg int) error {
		for _, s := range e.sChunks[wg] {
			if atomic.LoadUint32(&e.closed[s.target]) == 1 {
				continue
			}
			fromWord := e.info.Load(int(s.from))
			gFrom, _ := unpackWord(fromWord)
			tentative := float32(float64(gFrom) + float64(s.cost))

			for {
				oldWord := e.info.Load(int(s.target))
				oldG, _ := unpackWord(oldWord)
				if tentative >= oldG {
					break // not an improvement
				}
				newWord := packWord(tentative, s.from)
				if e.info.CAS(int(s.target), oldWord, newWord) {
					home := homeQueue(s.target, e.q)
					g := float64(tentative)
					f := g + e.h(s.target)
					e.tMu[home].Lock()
					e.tChunks[home] = append(e.tChunks[home], pending{id: s.target, f: f, g: g})
					e.tMu[home].Unlock()
					break
				}
				// CAS lost the race to a concurrent relaxation; retry
				// with the fresh value.
			}
		}
		return nil
	})
}

// computeAndPushBack inserts each of this queue's T-chunk entries into
// its own open list, deduplicating against entries already present.
func (e *engine) computeAndPushBack(ctx context.Context, backend device.Backend) error {
	return backend.Launch(ctx, "engines.computeAndPushBack", e.q, func(_ context.Context, wg int) error {
		for _, p := range e.tChunks[wg] {
			if atomic.LoadUint32(&e.closed[p.id]) == 1 {
				continue
			}
			if !e.queues[wg].pushOrUpdate(p.id, p.f, p.g) {
				atomic.StoreInt32(&e.overflow, 1)
			}
		}
		return nil
	})
}

// code reports the driver's current termination verdict.
func (e *engine) code() search.ReturnCode {
	if atomic.LoadInt32(&e.found) == 1 {
		return search.Found
	}
	if atomic.LoadInt32(&e.overflow) == 1 {
		return search.QueueOverflow
	}
	for _, q := range e.queues {
		if q.len() > 0 {
			return search.Running
		}
	}
	return search.NoPath
}

// goalCost returns dst's final g_score, valid only once code() == Found.
func (e *engine) goalCost() float64 {
	g, _ := unpackWord(e.info.Load(int(e.dst)))
	return float64(g)
}

// reconstruct walks the info table's predecessor chain from dst back to
// src (src's own predecessor sentinel is itself) and reverses it.
func (e *engine) reconstruct() []search.NodeID {
	path := []search.NodeID{e.dst}
	cur := e.dst
	for cur != e.src {
		_, pred := unpackWord(e.info.Load(int(cur)))
		cur = pred
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
