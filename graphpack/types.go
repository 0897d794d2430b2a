// Package graphpack flattens a grid.Grid into the dense, pointer-free
// arrays both search engines dispatch against: a node coordinate table,
// an edge table, and a per-node adjacency range index into the edge
// table. The layout matches what a real device upload would carry —
// positional, fixed-width records, no host-side pointers — even though
// device.CPUBackend stores it in ordinary Go slices.
package graphpack

import "github.com/oclpath/parastar/search"

// Node is the per-id coordinate record in GraphPack.nodes, used for path
// reconstruction (decoding ids back to (x,y)) and heuristic evaluation.
type Node struct {
	X, Y int32
}

// Edge is one directed out-edge in GraphPack.edges: a target node id and
// its traversal cost. Target is 32-bit to match the node id space; Cost
// is 32-bit to match what a real device buffer would carry.
type Edge struct {
	Target uint32
	Cost   float32
}

// AdjacencyRange locates node u's out-edges as edges[Begin:End].
type AdjacencyRange struct {
	Begin, End uint32
}

// GraphPack is an immutable, device-friendly flattening of a grid.Grid.
// Once Build returns, nodes, edges, and adjacency never change: per the
// data model, GraphPack is owned by the host driver and treated as
// read-only once uploaded to a device.Backend.
type GraphPack struct {
	nodes     []Node
	edges     []Edge
	adjacency []AdjacencyRange

	width, height int
	maxSucc       int
}

// NodeCount returns N, the number of nodes in the pack: one per cell of
// the source grid's full W*H rectangle, including blocked cells (which
// simply carry an empty adjacency range).
func (p *GraphPack) NodeCount() int { return len(p.nodes) }

// EdgeCount returns E, the total number of directed out-edges.
func (p *GraphPack) EdgeCount() int { return len(p.edges) }

// Width and Height return the source grid's dimensions, needed by
// enginem to compute the L_max = 2*(W+H) path-length bound.
func (p *GraphPack) Width() int  { return p.width }
func (p *GraphPack) Height() int { return p.height }

// MaxSucc returns the maximum number of out-edges any node can have: 4
// for Conn4, 8 for Conn8. Engine-S sizes its S/T-chunk scratch from this.
func (p *GraphPack) MaxSucc() int { return p.maxSucc }

// NodeCoord returns the (x,y) coordinate of id, or ErrNodeOutOfRange if
// id does not index into the pack.
func (p *GraphPack) NodeCoord(id search.NodeID) (x, y int32, err error) {
	if int(id) < 0 || int(id) >= len(p.nodes) {
		return 0, 0, search.ErrNodeOutOfRange
	}
	n := p.nodes[id]
	return n.X, n.Y, nil
}

// OutEdges returns id's out-edges as a read-only slice view into the
// pack's edge table, or ErrNodeOutOfRange if id is invalid.
func (p *GraphPack) OutEdges(id search.NodeID) ([]Edge, error) {
	if int(id) < 0 || int(id) >= len(p.adjacency) {
		return nil, search.ErrNodeOutOfRange
	}
	r := p.adjacency[id]
	return p.edges[r.Begin:r.End], nil
}

// Nodes returns a read-only view of the pack's node coordinate table, for
// a one-time upload into a device buffer (see device.Upload).
func (p *GraphPack) Nodes() []Node { return p.nodes }

// Edges returns a read-only view of the pack's edge table, for a
// one-time upload into a device buffer (see device.Upload).
func (p *GraphPack) Edges() []Edge { return p.edges }

// Adjacency returns a read-only view of the pack's per-node adjacency
// ranges, for a one-time upload into a device buffer (see device.Upload).
func (p *GraphPack) Adjacency() []AdjacencyRange { return p.adjacency }
