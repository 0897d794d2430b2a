// Package device abstracts the compute backend both search engines
// dispatch against: buffer allocation, kernel dispatch by name, and the
// capabilities (notably 64-bit atomics) a backend advertises.
//
// The accelerator API a real deployment would use — OpenCL, CUDA, compute
// shaders, SIMD-on-CPU — is deliberately out of scope; this package only
// specifies and implements the contract, the same way nornicdb's gpu
// package advertises a Backend enum and falls back to BackendNone rather
// than binding to an actual GPU driver. CPUBackend is the one conforming
// implementation shipped here: it runs each workgroup as a goroutine,
// bounded by golang.org/x/sync/errgroup, and backs 64-bit atomics with
// sync/atomic directly — a substrate honest about being a CPU fallback,
// not a polished simulation of a GPU.
package device

import "context"

// Capabilities describes what a Backend can do. Engine-S requires
// Atomic64; a backend lacking it is unusable for that engine and must be
// rejected before any kernel is dispatched (search.ErrMissingCapability).
type Capabilities struct {
	// Atomic64 reports whether the backend supports atomic
	// compare-and-swap on 64-bit words, needed to pack (g_score, id)
	// into one atomically-updatable record.
	Atomic64 bool

	// LocalMemoryPerGroupBytes advertises how much fast local/shared
	// memory is available per workgroup, so engines can size their
	// local open-list buffers to fit before overflowing into the
	// global scratch region.
	LocalMemoryPerGroupBytes int
}

// KernelFunc is the body of one workgroup's execution within a Launch
// call. workgroup is this call's index in [0, workgroups).
type KernelFunc func(ctx context.Context, workgroup int) error

// Backend is the abstract compute device both engines target: it reports
// its capabilities and dispatches kernels by name over a fixed number of
// workgroups, with an implicit barrier at the end of Launch (every
// workgroup has finished before Launch returns).
type Backend interface {
	// Capabilities reports what this backend supports.
	Capabilities() Capabilities

	// Launch runs fn once per workgroup in [0, workgroups), blocking
	// until all workgroups complete or ctx is cancelled. name is used
	// only for diagnostics (error messages, panics); backends do not
	// dispatch by string lookup the way a real kernel-compilation API
	// would, since there is nothing to compile here.
	Launch(ctx context.Context, name string, workgroups int, fn KernelFunc) error
}
