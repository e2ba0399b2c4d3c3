package label_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphlab-go/spc2h/label"
)

// rank[h] == h for these tests: vertex id doubles as its own rank, which
// keeps the fixtures readable.
func identityRank(n int) []int32 {
	r := make([]int32, n)
	for i := range r {
		r[i] = int32(i)
	}
	return r
}

func TestSearchPosFindsExisting(t *testing.T) {
	rank := identityRank(10)
	l := label.List{
		{Hub: 1, Dist: 1, Cnt: 1},
		{Hub: 3, Dist: 2, Cnt: 1},
		{Hub: 7, Dist: 3, Cnt: 1},
	}
	pos, found := l.SearchPos(rank, 3)
	require.True(t, found)
	require.Equal(t, 1, pos)
}

func TestSearchPosInsertionPoint(t *testing.T) {
	rank := identityRank(10)
	l := label.List{
		{Hub: 1, Dist: 1, Cnt: 1},
		{Hub: 7, Dist: 3, Cnt: 1},
	}
	pos, found := l.SearchPos(rank, 4)
	require.False(t, found)
	require.Equal(t, 1, pos)

	// past-the-end case (§9 OQ3): must return len(l), not panic.
	pos, found = l.SearchPos(rank, 9)
	require.False(t, found)
	require.Equal(t, 2, pos)
}

func TestInsertAndRemove(t *testing.T) {
	rank := identityRank(10)
	l := label.List{{Hub: 1}, {Hub: 7}}
	pos, _ := l.SearchPos(rank, 4)
	l = l.Insert(pos, label.Entry{Hub: 4, Dist: 2, Cnt: 1})
	require.True(t, label.IsSorted(rank, l))
	require.Equal(t, uint32(4), l[1].Hub)

	l = l.RemoveAt(1)
	require.Equal(t, label.List{{Hub: 1}, {Hub: 7}}, l)
}

func TestMergeProducesSortedUnion(t *testing.T) {
	rank := identityRank(10)
	a := label.List{{Hub: 1}, {Hub: 5}, {Hub: 8}}
	b := label.List{{Hub: 2}, {Hub: 5}, {Hub: 9}}
	m := label.Merge(rank, a, b)
	var hubs []uint32
	for _, e := range m {
		hubs = append(hubs, e.Hub)
	}
	require.Equal(t, []uint32{1, 2, 5, 5, 8, 9}, hubs)
}

func TestNewRejectsOutOfRangeFields(t *testing.T) {
	_, err := label.New(0, label.DMax+1, 0)
	require.ErrorIs(t, err, label.ErrBadDistance)

	// UBC is the largest uint32, so no count can exceed it: the bound itself
	// must be accepted.
	_, err = label.New(0, label.DMax, label.UBC)
	require.NoError(t, err)
}

func TestSaturate(t *testing.T) {
	v, sat := label.Saturate(label.UBC-1, 5)
	require.True(t, sat)
	require.Equal(t, label.UBC, v)

	v, sat = label.Saturate(10, 5)
	require.False(t, sat)
	require.Equal(t, uint32(15), v)
}
