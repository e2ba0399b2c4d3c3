package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphlab-go/spc2h/graph"
	"github.com/graphlab-go/spc2h/order"
	"github.com/graphlab-go/spc2h/plindex"
	"github.com/graphlab-go/spc2h/query"
)

func buildDiamond(t *testing.T) *plindex.Index {
	t.Helper()
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(2, 3))
	idx, _, err := plindex.Build(g, order.Degree)
	require.NoError(t, err)
	return idx
}

func TestCountRejectsSelfQuery(t *testing.T) {
	idx := buildDiamond(t)
	idx.Merge()
	_, _, err := query.Count(idx, 1, 1)
	require.ErrorIs(t, err, query.ErrSelfQuery)
}

func TestCountRequiresMergedIndex(t *testing.T) {
	idx := buildDiamond(t)
	_, _, err := query.Count(idx, 0, 3)
	require.ErrorIs(t, err, query.ErrNotMerged)
}

func TestCountDiamond(t *testing.T) {
	idx := buildDiamond(t)
	idx.Merge()
	d, c, err := query.Count(idx, 0, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(2), d)
	require.Equal(t, uint64(2), c)
}
