package oracle

import (
	"math"
	"testing"

	"github.com/oclpath/parastar/grid"
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

// Scenario 1: 3x3 empty grid, src=(0,0), dst=(2,2): path length 5, cost 4.0.
func TestShortestPath_Scenario1(t *testing.T) {
	g, err := grid.NewGrid(emptyRows(3, 3), grid.Conn4)
	require.NoError(t, err)

	path, cost, found := ShortestPath(g, 0, 8) // (0,0) -> (2,2)
	require.True(t, found)
	require.Len(t, path, 5)
	require.InDelta(t, 4.0, cost, 1e-9)
}

// Scenario 2: 3x3 grid with column x=1 fully blocked, src=(0,0), dst=(2,0): NO_PATH.
func TestShortestPath_Scenario2(t *testing.T) {
	rows := emptyRows(3, 3)
	rows[0][1], rows[1][1], rows[2][1] = true, true, true
	g, err := grid.NewGrid(rows, grid.Conn4)
	require.NoError(t, err)

	_, _, found := ShortestPath(g, 0, 2) // (0,0) -> (2,0)
	require.False(t, found)
}

// Scenario 3: 5x5 empty grid, 8-connected, src=(0,0), dst=(4,4): path length 5, cost 4*sqrt(2).
func TestShortestPath_Scenario3(t *testing.T) {
	g, err := grid.NewGrid(emptyRows(5, 5), grid.Conn8)
	require.NoError(t, err)

	path, cost, found := ShortestPath(g, 0, 24) // (0,0) -> (4,4)
	require.True(t, found)
	require.Len(t, path, 5)
	require.InDelta(t, 4*math.Sqrt2, cost, 1e-9)
}

// Scenario 5: 2x2 grid, 4-connected, src=(0,0), dst=(1,1): any length-3 path of cost 2.0.
func TestShortestPath_Scenario5(t *testing.T) {
	g, err := grid.NewGrid(emptyRows(2, 2), grid.Conn4)
	require.NoError(t, err)

	path, cost, found := ShortestPath(g, 0, 3) // (0,0) -> (1,1)
	require.True(t, found)
	require.Len(t, path, 3)
	require.InDelta(t, 2.0, cost, 1e-9)
}

func TestShortestPath_SameSourceAndDest(t *testing.T) {
	g, err := grid.NewGrid(emptyRows(3, 3), grid.Conn4)
	require.NoError(t, err)

	path, cost, found := ShortestPath(g, 4, 4)
	require.True(t, found)
	require.Equal(t, []search.NodeID{4}, path)
	require.Equal(t, float64(0), cost)
}

func TestShortestPath_Unreachable(t *testing.T) {
	rows := emptyRows(3, 3)
	rows[0][1], rows[1][1], rows[2][1] = true, true, true
	g, err := grid.NewGrid(rows, grid.Conn4)
	require.NoError(t, err)

	_, _, found := ShortestPath(g, 0, 2) // (0,0) -> (2,0), wall in between
	require.False(t, found)
}
