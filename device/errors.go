package device

import "errors"

// Sentinel errors for device backends.
var (
	// ErrNoCapacity indicates Launch was asked for zero or negative
	// workgroups.
	ErrNoCapacity = errors.New("device: workgroup count must be positive")

	// ErrKernelPanic wraps a kernel function that panicked instead of
	// returning an error; CPUBackend recovers it so one bad workgroup
	// cannot take down the host process.
	ErrKernelPanic = errors.New("device: kernel panicked")
)
