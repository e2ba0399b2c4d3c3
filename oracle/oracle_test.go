package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphlab-go/spc2h/graph"
	"github.com/graphlab-go/spc2h/oracle"
)

func TestCountRejectsSelfQuery(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	_, _, err = oracle.Count(g, 0, 0)
	require.ErrorIs(t, err, oracle.ErrSelfQuery)
}

func TestCountDisconnectedReturnsZero(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))

	d, c, err := oracle.Count(g, 0, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(0), d)
	require.Equal(t, uint64(0), c)
}

func TestCountDiamondHasTwoShortestPaths(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(2, 3))

	d, c, err := oracle.Count(g, 0, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(2), d)
	require.Equal(t, uint64(2), c)
}

func TestCountK4AllPairsAdjacent(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			require.NoError(t, g.AddEdge(u, v))
		}
	}
	d, c, err := oracle.Count(g, 0, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(1), d)
	require.Equal(t, uint64(1), c)
}

// A 3x3 grid has C(4,2)=6 shortest lattice paths between opposite corners.
func TestCountGridCornerPaths(t *testing.T) {
	const side = 3
	id := func(r, c int) int { return r*side + c }
	g, err := graph.New(side * side)
	require.NoError(t, err)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if c+1 < side {
				require.NoError(t, g.AddEdge(id(r, c), id(r, c+1)))
			}
			if r+1 < side {
				require.NoError(t, g.AddEdge(id(r, c), id(r+1, c)))
			}
		}
	}
	d, c, err := oracle.Count(g, id(0, 0), id(side-1, side-1))
	require.NoError(t, err)
	require.Equal(t, uint32(4), d)
	require.Equal(t, uint64(6), c)
}
