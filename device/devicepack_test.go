package device

import (
	"testing"

	"github.com/oclpath/parastar/graphpack"
	"github.com/oclpath/parastar/grid"
	"github.com/oclpath/parastar/search"
	"github.com/stretchr/testify/require"
)

func buildTestPack(t *testing.T) *graphpack.GraphPack {
	t.Helper()
	rows := [][]bool{
		{false, false, false},
		{false, true, false},
		{false, false, false},
	}
	g, err := grid.NewGrid(rows, grid.Conn4)
	require.NoError(t, err)
	pack, err := graphpack.Build(g)
	require.NoError(t, err)
	return pack
}

func TestUpload_MirrorsGraphPack(t *testing.T) {
	pack := buildTestPack(t)
	dp := Upload(pack)

	require.Equal(t, pack.NodeCount(), dp.NodeCount())
	require.Equal(t, pack.Width(), dp.Width())
	require.Equal(t, pack.Height(), dp.Height())
	require.Equal(t, pack.MaxSucc(), dp.MaxSucc())
}

func TestUpload_NodeCoordMatchesSource(t *testing.T) {
	pack := buildTestPack(t)
	dp := Upload(pack)

	for id := 0; id < pack.NodeCount(); id++ {
		wantX, wantY, wantErr := pack.NodeCoord(search.NodeID(id))
		gotX, gotY, gotErr := dp.NodeCoord(search.NodeID(id))
		require.Equal(t, wantErr, gotErr)
		require.Equal(t, wantX, gotX)
		require.Equal(t, wantY, gotY)
	}
}

func TestUpload_OutEdgesMatchesSource(t *testing.T) {
	pack := buildTestPack(t)
	dp := Upload(pack)

	for id := 0; id < pack.NodeCount(); id++ {
		want, err := pack.OutEdges(search.NodeID(id))
		require.NoError(t, err)
		got, err := dp.OutEdges(search.NodeID(id))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestUpload_IndependentOfSourceMutation(t *testing.T) {
	pack := buildTestPack(t)
	dp := Upload(pack)

	// Upload copies into its own buffers; mutating a buffer directly
	// (simulating a kernel writing scratch state) must never reach back
	// into the host GraphPack's own slices.
	dp.nodes.Set(0, graphpack.Node{X: 99, Y: 99})

	x, y, err := pack.NodeCoord(search.NodeID(0))
	require.NoError(t, err)
	require.NotEqual(t, int32(99), x)
	require.NotEqual(t, int32(99), y)
}

func TestDevicePack_NodeCoord_OutOfRange(t *testing.T) {
	pack := buildTestPack(t)
	dp := Upload(pack)

	_, _, err := dp.NodeCoord(search.NodeID(dp.NodeCount()))
	require.Error(t, err)
}
