package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphlab-go/spc2h/graph"
)

func TestNewRejectsTooFewVertices(t *testing.T) {
	_, err := graph.New(1)
	require.ErrorIs(t, err, graph.ErrTooFewVertices)
}

func TestAddEdgeMirrorsAndSorts(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	require.Equal(t, []int32{1, 2, 3}, g.Neighbors(0))
	require.True(t, g.HasEdge(3, 0))
	require.Equal(t, 3, g.EdgeCount())
}

func TestAddEdgeRejectsSelfLoopAndDuplicate(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(0, 0), graph.ErrSelfLoop)

	require.NoError(t, g.AddEdge(0, 1))
	require.True(t, errors.Is(g.AddEdge(0, 1), graph.ErrDuplicateEdge))
	require.True(t, errors.Is(g.AddEdge(1, 0), graph.ErrDuplicateEdge))
}

func TestRemoveEdge(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	require.NoError(t, g.RemoveEdge(0, 1))
	require.False(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(1, 0))
	require.ErrorIs(t, g.RemoveEdge(0, 1), graph.ErrMissingEdge)

	require.Equal(t, []int32{2}, g.Neighbors(1))
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	clone := g.Clone()
	require.NoError(t, clone.RemoveEdge(0, 1))

	require.True(t, g.HasEdge(0, 1))
	require.False(t, clone.HasEdge(0, 1))
}

func TestVertexRangeErrors(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.ErrorIs(t, g.AddEdge(0, 5), graph.ErrVertexRange)
	require.ErrorIs(t, g.RemoveEdge(-1, 0), graph.ErrVertexRange)
}
