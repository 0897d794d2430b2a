package device

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultLocalMemoryPerGroupBytes is CPUBackend's advertised fast-memory
// budget per workgroup: generous enough that a few hundred open-list
// entries fit before an engine needs to spill to its overflow region.
const DefaultLocalMemoryPerGroupBytes = 64 * 1024

// CPUBackend is the one conforming device.Backend shipped in this
// module: it runs every workgroup as a goroutine, bounded to WorkerLimit
// concurrent goroutines via golang.org/x/sync/errgroup, mirroring the
// hprof package's ParallelConfig.MaxWorkers + errgroup pattern and
// dd0wney-graphdb's WorkerPool sizing from runtime.NumCPU when unset.
//
// It always reports Atomic64: true, since AtomicWords is backed directly
// by sync/atomic, which every Go platform supports.
type CPUBackend struct {
	workerLimit int
}

// NewCPUBackend returns a CPUBackend that runs at most workerLimit
// workgroups concurrently. workerLimit <= 0 defaults to runtime.NumCPU().
func NewCPUBackend(workerLimit int) *CPUBackend {
	if workerLimit <= 0 {
		workerLimit = runtime.NumCPU()
	}
	return &CPUBackend{workerLimit: workerLimit}
}

// Capabilities reports CPUBackend's fixed capability set.
func (b *CPUBackend) Capabilities() Capabilities {
	return Capabilities{
		Atomic64:                 true,
		LocalMemoryPerGroupBytes: DefaultLocalMemoryPerGroupBytes,
	}
}

// Launch runs fn once per workgroup in [0, workgroups), at most
// b.workerLimit concurrently, and blocks until every workgroup has
// returned or ctx is cancelled. Once ctx is cancelled no further
// workgroups are started; Launch waits for those already running and
// returns ctx's error. A panic inside fn is recovered into an
// error tagged ErrKernelPanic rather than crashing the process, so a bug
// in one workgroup surfaces as a normal error the caller can inspect.
func (b *CPUBackend) Launch(ctx context.Context, name string, workgroups int, fn KernelFunc) error {
	if workgroups <= 0 {
		return ErrNoCapacity
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workerLimit)

	for wg := 0; wg < workgroups; wg++ {
		if gctx.Err() != nil {
			break
		}
		wg := wg
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s: workgroup %d: %w: %v", name, wg, ErrKernelPanic, r)
				}
			}()
			return fn(gctx, wg)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
