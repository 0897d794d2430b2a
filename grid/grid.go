package grid

import (
	"math"

	"github.com/oclpath/parastar/search"
)

// NewGrid constructs a Grid from a non-empty, rectangular boolean slice
// where blocked[y][x] reports whether cell (x,y) is impassable. The input
// is deep-copied, and neighbor offsets are precomputed for conn.
//
// Returns ErrEmptyGrid if blocked has no rows or no columns, or
// ErrNonRectangular if any row length differs from the first.
func NewGrid(blocked [][]bool, conn Connectivity) (*Grid, error) {
	if len(blocked) == 0 || len(blocked[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(blocked), len(blocked[0])
	for _, row := range blocked {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], blocked[y])
	}

	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		width:           w,
		height:          h,
		blocked:         cells,
		conn:            conn,
		neighborOffsets: offsets,
	}, nil
}

// Width returns W.
func (g *Grid) Width() int { return g.width }

// Height returns H.
func (g *Grid) Height() int { return g.height }

// Size returns W*H, the total number of cells (passable or not).
func (g *Grid) Size() int { return g.width * g.height }

// Connectivity reports whether the grid was built Conn4 or Conn8.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Blocked reports whether cell (x,y) is impassable. Callers must check
// InBounds first; an out-of-bounds coordinate is treated as blocked.
func (g *Grid) Blocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.blocked[y][x]
}

// index maps (x,y) to its dense row-major id: id = y*W + x.
func (g *Grid) index(x, y int) search.NodeID {
	return search.NodeID(y*g.width + x)
}

// Coordinate converts a dense id back to (x,y).
func (g *Grid) Coordinate(id search.NodeID) (x, y int) {
	i := int(id)
	return i % g.width, i / g.width
}

// PathCost returns the Euclidean distance between the centers of cells u
// and v if they are both passable and adjacent under the grid's
// connectivity, 0 if u == v and u is passable, or +Inf otherwise.
func (g *Grid) PathCost(u, v search.NodeID) float64 {
	if u == v {
		ux, uy := g.Coordinate(u)
		if !g.InBounds(ux, uy) || g.Blocked(ux, uy) {
			return math.Inf(1)
		}
		return 0
	}

	ux, uy := g.Coordinate(u)
	vx, vy := g.Coordinate(v)
	if !g.InBounds(ux, uy) || !g.InBounds(vx, vy) {
		return math.Inf(1)
	}
	if g.Blocked(ux, uy) || g.Blocked(vx, vy) {
		return math.Inf(1)
	}

	dx, dy := vx-ux, vy-uy
	for _, off := range g.neighborOffsets {
		if off[0] == dx && off[1] == dy {
			return math.Hypot(float64(dx), float64(dy))
		}
	}
	return math.Inf(1)
}

// Neighbors returns the passable, in-bounds neighbors of u and their
// traversal costs, filtered by the grid's connectivity. u itself must be
// passable and in bounds; callers that violate this receive an empty
// slice.
func (g *Grid) Neighbors(u search.NodeID) []Neighbor {
	ux, uy := g.Coordinate(u)
	if !g.InBounds(ux, uy) || g.Blocked(ux, uy) {
		return nil
	}

	out := make([]Neighbor, 0, len(g.neighborOffsets))
	for _, off := range g.neighborOffsets {
		nx, ny := ux+off[0], uy+off[1]
		if !g.InBounds(nx, ny) || g.Blocked(nx, ny) {
			continue
		}
		out = append(out, Neighbor{
			ID:   g.index(nx, ny),
			Cost: math.Hypot(float64(off[0]), float64(off[1])),
		})
	}
	return out
}
