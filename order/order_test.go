package order_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphlab-go/spc2h/graph"
	"github.com/graphlab-go/spc2h/order"
)

func buildStar(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for v := 1; v < n; v++ {
		require.NoError(t, g.AddEdge(0, v))
	}
	return g
}

func TestComputeDegreePutsHighestDegreeFirst(t *testing.T) {
	g := buildStar(t, 5)
	o, err := order.Compute(g, order.Degree)
	require.NoError(t, err)

	require.Equal(t, int32(0), o.Order[0])
	require.Equal(t, int32(0), o.Rank[0])

	for v := 1; v < 5; v++ {
		require.Greater(t, o.Rank[v], o.Rank[0])
	}
}

func TestComputeDegreeTiesBreakByAscendingID(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	// triangle: all equal degree
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))

	o, err := order.Compute(g, order.Degree)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 1, 2}, o.Order)
	require.Equal(t, []int32{0, 1, 2}, o.Rank)
}

func TestComputeInvalidScheme(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	_, err = order.Compute(g, order.Invalid)
	require.ErrorIs(t, err, order.ErrInvalidScheme)
}
