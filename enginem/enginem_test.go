package enginem

import (
	"context"
	"math"
	"testing"

	"github.com/oclpath/parastar/device"
	"github.com/oclpath/parastar/grid"
	"github.com/oclpath/parastar/graphpack"
	"github.com/oclpath/parastar/search"
	"github.com/stretchr/testify/require"
)

func emptyRows(w, h int) [][]bool {
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = make([]bool, w)
	}
	return rows
}

func buildPack(t *testing.T, rows [][]bool, conn grid.Connectivity) *graphpack.GraphPack {
	t.Helper()
	g, err := grid.NewGrid(rows, conn)
	require.NoError(t, err)
	p, err := graphpack.Build(g)
	require.NoError(t, err)
	return p
}

// Scenario 1: 3x3 empty grid, src=(0,0), dst=(2,2): path length 5, cost 4.0.
func TestSolveMany_Scenario1(t *testing.T) {
	pack := buildPack(t, emptyRows(3, 3), grid.Conn4)
	backend := device.NewCPUBackend(2)

	results, err := SolveMany(context.Background(), pack, []search.Pair{{Src: 0, Dst: 8}}, backend)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, search.Found, results[0].Code)
	require.Len(t, results[0].Path, 5)
	require.InDelta(t, 4.0, results[0].Cost, 1e-9)
}

// Scenario 2: 3x3 grid, column x=1 blocked, src=(0,0), dst=(2,0): NO_PATH.
func TestSolveMany_Scenario2(t *testing.T) {
	rows := emptyRows(3, 3)
	rows[0][1], rows[1][1], rows[2][1] = true, true, true
	pack := buildPack(t, rows, grid.Conn4)
	backend := device.NewCPUBackend(2)

	results, err := SolveMany(context.Background(), pack, []search.Pair{{Src: 0, Dst: 2}}, backend)
	require.NoError(t, err)
	require.Equal(t, search.NoPath, results[0].Code)
}

// Scenario 4: 10x10 empty grid, 4-connected, batch of 3 pairs.
func TestSolveMany_Scenario4_Batch(t *testing.T) {
	pack := buildPack(t, emptyRows(10, 10), grid.Conn4)
	backend := device.NewCPUBackend(4)

	pairs := []search.Pair{
		{Src: 0, Dst: 99},  // (0,0) -> (9,9)
		{Src: 9, Dst: 90},  // (9,0) -> (0,9)
		{Src: 55, Dst: 55}, // (5,5) -> (5,5)
	}
	results, err := SolveMany(context.Background(), pack, pairs, backend)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, search.Found, results[0].Code)
	require.InDelta(t, 18.0, results[0].Cost, 1e-9)
	require.Equal(t, search.Found, results[1].Code)
	require.InDelta(t, 18.0, results[1].Cost, 1e-9)
	require.Equal(t, search.Found, results[2].Code)
	require.InDelta(t, 0.0, results[2].Cost, 1e-9)
	require.Equal(t, []search.NodeID{55}, results[2].Path)
}

// Engine-M is order-independent: permuting the input pairs permutes the
// results identically.
func TestSolveMany_OrderIndependent(t *testing.T) {
	pack := buildPack(t, emptyRows(10, 10), grid.Conn4)
	backend := device.NewCPUBackend(4)

	forward := []search.Pair{{Src: 0, Dst: 99}, {Src: 9, Dst: 90}}
	backward := []search.Pair{{Src: 9, Dst: 90}, {Src: 0, Dst: 99}}

	r1, err := SolveMany(context.Background(), pack, forward, backend)
	require.NoError(t, err)
	r2, err := SolveMany(context.Background(), pack, backward, backend)
	require.NoError(t, err)

	require.InDelta(t, r1[0].Cost, r2[1].Cost, 1e-9)
	require.InDelta(t, r1[1].Cost, r2[0].Cost, 1e-9)
}

func TestSolveMany_PathTooLong(t *testing.T) {
	pack := buildPack(t, emptyRows(10, 10), grid.Conn4)
	backend := device.NewCPUBackend(2)

	results, err := SolveMany(context.Background(), pack, []search.Pair{{Src: 0, Dst: 99}}, backend, WithMaxPathLength(3))
	require.NoError(t, err)
	require.Equal(t, search.PathTooLong, results[0].Code)
}

func TestSolveMany_EmptyPack(t *testing.T) {
	backend := device.NewCPUBackend(1)
	_, err := SolveMany(context.Background(), &graphpack.GraphPack{}, nil, backend)
	require.ErrorIs(t, err, search.ErrEmptyPack)
}

func TestSolveMany_NilBackend(t *testing.T) {
	pack := buildPack(t, emptyRows(2, 2), grid.Conn4)
	_, err := SolveMany(context.Background(), pack, []search.Pair{{Src: 0, Dst: 1}}, nil)
	require.ErrorIs(t, err, search.ErrDeviceUnavailable)
}

// A wall splits the grid in two; with WithReachability the unreachable
// pair is answered NO_PATH from the grid's component labels.
func TestSolveMany_ReachabilityShortCircuit(t *testing.T) {
	rows := emptyRows(3, 3)
	rows[0][1], rows[1][1], rows[2][1] = true, true, true
	g, err := grid.NewGrid(rows, grid.Conn4)
	require.NoError(t, err)
	pack, err := graphpack.Build(g)
	require.NoError(t, err)
	backend := device.NewCPUBackend(2)

	results, err := SolveMany(context.Background(), pack, []search.Pair{{Src: 0, Dst: 2}}, backend, WithReachability(g))
	require.NoError(t, err)
	require.Equal(t, search.NoPath, results[0].Code)
}

// Scenario 3: 5x5 empty grid, 8-connected, src=(0,0), dst=(4,4).
func TestSolveMany_Scenario3_DiagonalCost(t *testing.T) {
	pack := buildPack(t, emptyRows(5, 5), grid.Conn8)
	backend := device.NewCPUBackend(2)

	results, err := SolveMany(context.Background(), pack, []search.Pair{{Src: 0, Dst: 24}}, backend)
	require.NoError(t, err)
	require.Equal(t, search.Found, results[0].Code)
	require.Len(t, results[0].Path, 5)
	require.InDelta(t, 4*math.Sqrt2, results[0].Cost, 1e-9)
}
