package device

import (
	"github.com/oclpath/parastar/graphpack"
	"github.com/oclpath/parastar/search"
)

// DevicePack is a graphpack.GraphPack's node, edge, and adjacency arrays
// uploaded once into device buffers. Per the data model, a query uploads
// its GraphPack exactly once and then dispatches every kernel phase
// against the uploaded copy; neither engine touches the host GraphPack
// again once Upload returns.
type DevicePack struct {
	nodes     *Buffer[graphpack.Node]
	edges     *Buffer[graphpack.Edge]
	adjacency *Buffer[graphpack.AdjacencyRange]

	width, height, maxSucc int
}

// Upload copies pack's node, edge, and adjacency arrays into fresh
// device buffers. On CPUBackend this is a plain slice copy; on a real
// accelerator it is the one-time host-to-device transfer the data model
// describes.
func Upload(pack *graphpack.GraphPack) *DevicePack {
	nodes := NewBuffer[graphpack.Node](pack.NodeCount())
	nodes.Upload(pack.Nodes())

	edges := NewBuffer[graphpack.Edge](pack.EdgeCount())
	edges.Upload(pack.Edges())

	adjacency := NewBuffer[graphpack.AdjacencyRange](pack.NodeCount())
	adjacency.Upload(pack.Adjacency())

	return &DevicePack{
		nodes:     nodes,
		edges:     edges,
		adjacency: adjacency,
		width:     pack.Width(),
		height:    pack.Height(),
		maxSucc:   pack.MaxSucc(),
	}
}

// NodeCount, Width, Height, and MaxSucc mirror graphpack.GraphPack's
// accessors, read from the uploaded copy.
func (d *DevicePack) NodeCount() int { return d.nodes.Len() }
func (d *DevicePack) Width() int     { return d.width }
func (d *DevicePack) Height() int    { return d.height }
func (d *DevicePack) MaxSucc() int   { return d.maxSucc }

// NodeCoord returns the (x,y) coordinate of id, read from the uploaded
// node buffer.
func (d *DevicePack) NodeCoord(id search.NodeID) (x, y int32, err error) {
	if int(id) < 0 || int(id) >= d.nodes.Len() {
		return 0, 0, search.ErrNodeOutOfRange
	}
	n := d.nodes.At(int(id))
	return n.X, n.Y, nil
}

// OutEdges returns id's out-edges, downloaded from the uploaded edge
// buffer via the adjacency buffer's range for id.
func (d *DevicePack) OutEdges(id search.NodeID) ([]graphpack.Edge, error) {
	if int(id) < 0 || int(id) >= d.adjacency.Len() {
		return nil, search.ErrNodeOutOfRange
	}
	r := d.adjacency.At(int(id))
	return d.edges.Slice(int(r.Begin), int(r.End)), nil
}
