// Package search defines the vocabulary shared by both parallel search
// engines (enginem, engines): node identity, coordinates, return codes, and
// the request/response shapes a caller sends to and receives from a query.
//
// Keeping these types in one place mirrors how the teacher lineage's
// dijkstra/types.go and bfs/types.go each define their own Options/Result
// shapes next to their algorithm — except here two independent engines
// must agree on the wire shape, so it is promoted to its own package rather
// than duplicated.
package search

import "fmt"

// NodeID is the dense row-major identifier of a grid cell: id = y*W + x.
// GraphPack commits to a 32-bit id space (spec: "Fails if any resulting
// index would overflow 32 bits"), so NodeID is a uint32 rather than int.
type NodeID uint32

// Coord is an integer grid coordinate pair.
type Coord struct {
	X, Y int32
}

// ReturnCode is the per-agent (Engine-M) or global (Engine-S) result code.
// Values are fixed by the external interface contract: callers may persist
// or log the raw integer, so the numbering must never change.
type ReturnCode uint8

const (
	// Found indicates a path was located.
	Found ReturnCode = 0
	// Running is a transient, internal-only code; it must never be
	// observed by a caller of SolveMany/SolveOne.
	Running ReturnCode = 1
	// NoPath indicates the destination is unreachable from the source.
	NoPath ReturnCode = 2
	// PathTooLong indicates a path was found but exceeds the engine's
	// maximum path length bound (Engine-M only; see
	// enginem.WithMaxPathLength).
	PathTooLong ReturnCode = 3
	// QueueOverflow indicates a partitioned open list exceeded its
	// capacity before the query converged (Engine-S only).
	QueueOverflow ReturnCode = 4
	// DeviceError indicates the device backend failed to dispatch or
	// execute a kernel.
	DeviceError ReturnCode = 5
)

// String renders the code for logs and test failure messages.
func (c ReturnCode) String() string {
	switch c {
	case Found:
		return "FOUND"
	case Running:
		return "RUNNING"
	case NoPath:
		return "NO_PATH"
	case PathTooLong:
		return "PATH_TOO_LONG"
	case QueueOverflow:
		return "QUEUE_OVERFLOW"
	case DeviceError:
		return "DEVICE_ERROR"
	default:
		return fmt.Sprintf("ReturnCode(%d)", uint8(c))
	}
}

// Pair is one Engine-M query: find a path from Src to Dst.
type Pair struct {
	Src, Dst NodeID
}

// Result is the outcome of a single query, returned per agent by
// enginem.SolveMany and as the sole value from engines.SolveOne.
type Result struct {
	// Code reports why Path is or isn't populated. Running is never
	// observed here.
	Code ReturnCode
	// Path is the sequence of node ids from source to destination
	// inclusive. Empty unless Code == Found.
	Path []NodeID
	// Cost is the total path cost. Zero unless Code == Found.
	Cost float64
}

// Found reports whether r represents a successful query.
func (r Result) Found() bool { return r.Code == Found }
