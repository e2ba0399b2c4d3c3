package spcio_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/graphlab-go/spc2h/order"
	"github.com/graphlab-go/spc2h/plindex"
	"github.com/graphlab-go/spc2h/query"
	"github.com/graphlab-go/spc2h/spcio"
)

func TestLoadGraphTextParsesAndDedupes(t *testing.T) {
	in := "4 4\n0 1\n1 2\n2 3\n1 0\n"
	g, err := spcio.LoadGraphText(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.Equal(t, 3, g.EdgeCount())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(2, 3))
}

func TestLoadGraphTextRejectsShortFile(t *testing.T) {
	_, err := spcio.LoadGraphText(strings.NewReader("3 2\n0 1\n"))
	require.ErrorIs(t, err, spcio.ErrMalformed)
}

func TestWriteGraphTextRoundTrips(t *testing.T) {
	g, err := spcio.LoadGraphText(strings.NewReader("3 2\n0 1\n1 2\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, spcio.WriteGraphText(&buf, g))

	g2, err := spcio.LoadGraphText(&buf)
	require.NoError(t, err)
	require.Equal(t, g.N(), g2.N())
	require.Equal(t, g.EdgeCount(), g2.EdgeCount())
	require.True(t, g2.HasEdge(0, 1))
	require.True(t, g2.HasEdge(1, 2))
}

func TestLoadQueriesAndWriteAnswer(t *testing.T) {
	qs, err := spcio.LoadQueries(strings.NewReader("2\n0 1\n2 3\n"))
	require.NoError(t, err)
	require.Equal(t, []spcio.QueryRequest{{S: 0, T: 1}, {S: 2, T: 3}}, qs)

	var buf bytes.Buffer
	require.NoError(t, spcio.WriteAnswer(&buf, 0, 1, 2, 3, 5*time.Microsecond))
	require.Equal(t, "0\t1\t2\t3\t5\n", buf.String())
}

func TestLoadUpdatesParsesInsertAndDelete(t *testing.T) {
	ops, err := spcio.LoadUpdates(strings.NewReader("2\n0 1 i\n1 2 d\n"))
	require.NoError(t, err)
	require.Equal(t, []spcio.UpdateOp{
		{U: 0, V: 1, Insert: true},
		{U: 1, V: 2, Insert: false},
	}, ops)
}

func TestLoadUpdatesRejectsBadType(t *testing.T) {
	_, err := spcio.LoadUpdates(strings.NewReader("1\n0 1 x\n"))
	require.ErrorIs(t, err, spcio.ErrMalformed)
}

func buildDiamondIndex(t *testing.T) *plindex.Index {
	t.Helper()
	g, err := spcio.LoadGraphText(strings.NewReader("4 4\n0 1\n0 2\n1 3\n2 3\n"))
	require.NoError(t, err)
	idx, _, err := plindex.Build(g, order.Degree)
	require.NoError(t, err)
	return idx
}

func TestIndexRoundTripsSplitShape(t *testing.T) {
	idx := buildDiamondIndex(t)

	var buf bytes.Buffer
	require.NoError(t, spcio.WriteIndex(&buf, idx))

	idx2, err := spcio.ReadIndex(&buf)
	require.NoError(t, err)
	require.False(t, idx2.Merged())

	idx.Merge()
	idx2.Merge()
	d, c, err := query.Count(idx2, 0, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(2), d)
	require.Equal(t, uint64(2), c)
}

func TestIndexRoundTripsMergedShape(t *testing.T) {
	idx := buildDiamondIndex(t)
	idx.Merge()

	var buf bytes.Buffer
	require.NoError(t, spcio.WriteIndex(&buf, idx))

	idx2, err := spcio.ReadIndex(&buf)
	require.NoError(t, err)
	require.True(t, idx2.Merged())

	d, c, err := query.Count(idx2, 0, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(2), d)
	require.Equal(t, uint64(2), c)
}

func TestReadIndexRejectsBadShapeByte(t *testing.T) {
	// a hand-built n=2, no-edges index file with an invalid shape flag.
	corrupted := []byte{
		2, 0, 0, 0, // n
		0, 0, 0, 0, // |G[0]|
		0, 0, 0, 0, // |G[1]|
		7, // shape flag: neither 0 nor 1
	}
	_, err := spcio.ReadIndex(bytes.NewReader(corrupted))
	require.ErrorIs(t, err, spcio.ErrBadShape)
}
