package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphlab-go/spc2h/builder"
	"github.com/graphlab-go/spc2h/internal/testgraph"
)

func TestCompleteHasAllPairs(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	require.Equal(t, 5*4/2, g.EdgeCount())
	for i := 0; i < 5; i++ {
		require.Equal(t, 4, g.Degree(i))
	}
}

func TestCompleteRejectsTooFewVertices(t *testing.T) {
	_, err := builder.Complete(1)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycleIsRegularOfDegreeTwo(t *testing.T) {
	g, err := builder.Cycle(6)
	require.NoError(t, err)
	require.Equal(t, 6, g.EdgeCount())
	for i := 0; i < 6; i++ {
		require.Equal(t, 2, g.Degree(i))
	}
	require.True(t, testgraph.Connected(g))
}

func TestPathHasTwoLeaves(t *testing.T) {
	g, err := builder.Path(5)
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(4))
	require.Equal(t, 2, g.Degree(2))
}

func TestStarCenterHasDegreeNMinusOne(t *testing.T) {
	g, err := builder.Star(6)
	require.NoError(t, err)
	require.Equal(t, 5, g.Degree(0))
	for leaf := 1; leaf < 6; leaf++ {
		require.Equal(t, 1, g.Degree(leaf))
	}
}

func TestWheelHubTouchesEveryRingVertex(t *testing.T) {
	g, err := builder.Wheel(6)
	require.NoError(t, err)
	require.Equal(t, 5, g.Degree(0))
	for i := 1; i <= 5; i++ {
		require.Equal(t, 3, g.Degree(i)) // two ring neighbors + hub
	}
}

func TestGridCornerHasDegreeTwo(t *testing.T) {
	g, err := builder.Grid(3, 3)
	require.NoError(t, err)
	require.Equal(t, 2, g.Degree(0))           // (0,0)
	require.Equal(t, 4, g.Degree(1*3+1))       // (1,1), interior
	require.True(t, testgraph.Connected(g))
}

func TestRandomSparseFullProbabilityIsComplete(t *testing.T) {
	g, err := builder.RandomSparse(5, 1.0)
	require.NoError(t, err)
	require.Equal(t, 5*4/2, g.EdgeCount())
}

func TestRandomSparseRequiresRNGForFractionalP(t *testing.T) {
	_, err := builder.RandomSparse(5, 0.5)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparseDeterministicForFixedSeed(t *testing.T) {
	g1, err := builder.RandomSparse(10, 0.3, builder.WithSeed(42))
	require.NoError(t, err)
	g2, err := builder.RandomSparse(10, 0.3, builder.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	for v := 0; v < 10; v++ {
		require.Equal(t, g1.Neighbors(v), g2.Neighbors(v))
	}
}

func TestRandomRegularProducesExactDegree(t *testing.T) {
	g, err := builder.RandomRegular(8, 3, builder.WithSeed(7))
	require.NoError(t, err)
	for v := 0; v < 8; v++ {
		require.Equal(t, 3, g.Degree(v))
	}
}

func TestRandomRegularRejectsOddTotalDegree(t *testing.T) {
	_, err := builder.RandomRegular(5, 3, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomRegularRequiresRNG(t *testing.T) {
	_, err := builder.RandomRegular(6, 2)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}
