package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nttcslab/cs-reliability/core"
	"github.com/nttcslab/cs-reliability/gridgraph"
)

func TestNew_2x2(t *testing.T) {
	spec, err := gridgraph.New(2, 2)
	require.NoError(t, err)
	require.Equal(t, 4, spec.N)
	// Row-major ids: (0,0)=1 (0,1)=2 (1,0)=3 (1,1)=4.
	// Cell(0,0): right->(0,1)=2, below->(1,0)=3.
	// Cell(0,1): below->(1,1)=4.
	// Cell(1,0): right->(1,1)=4.
	require.Equal(t, []core.Edge{
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 4},
		{U: 3, V: 4},
	}, spec.Edges)
}

func TestNew_TooSmall(t *testing.T) {
	_, err := gridgraph.New(0, 3)
	require.ErrorIs(t, err, gridgraph.ErrTooSmall)
}

func TestNew_UniformProb(t *testing.T) {
	spec, err := gridgraph.New(3, 3, gridgraph.WithUniformProb(0.7))
	require.NoError(t, err)
	for _, p := range spec.Pi {
		require.Equal(t, 0.7, p)
	}
}

func TestCoordinate_RoundTrips(t *testing.T) {
	const cols = 4
	for r := 0; r < 3; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c + 1
			gotR, gotC := gridgraph.Coordinate(id, cols)
			require.Equal(t, r, gotR)
			require.Equal(t, c, gotC)
		}
	}
}

func TestNew_NetworkBuildable(t *testing.T) {
	spec, err := gridgraph.New(3, 3)
	require.NoError(t, err)
	net, err := spec.Network([]int{1})
	require.NoError(t, err)
	require.Equal(t, 9, net.N())
}
