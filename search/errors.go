package search

import "errors"

// Sentinel errors shared across the device, enginem, engines, and
// graphpack packages, following the "<package>: <condition>" convention
// used throughout this module's lineage (see core, dijkstra).
var (
	// ErrDeviceUnavailable indicates no usable device backend was
	// supplied to a query.
	ErrDeviceUnavailable = errors.New("search: device backend unavailable")

	// ErrMissingCapability indicates the supplied device backend lacks a
	// capability a query requires (e.g. 64-bit atomics for Engine-S).
	// This is fatal and must be surfaced before any kernel is dispatched.
	ErrMissingCapability = errors.New("search: device backend missing required capability")

	// ErrEmptyPack indicates a query was given a GraphPack with zero
	// nodes.
	ErrEmptyPack = errors.New("search: graph pack is empty")

	// ErrNodeOutOfRange indicates a src/dst NodeID does not index into
	// the supplied GraphPack.
	ErrNodeOutOfRange = errors.New("search: node id out of range")

	// ErrCancelled indicates the caller's context was cancelled before
	// the query converged.
	ErrCancelled = errors.New("search: query cancelled")
)
