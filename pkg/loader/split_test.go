package loader

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"dfscaler/pkg/frame"
)

func rowsFrame(t *testing.T, n int) *frame.Frame {
	t.Helper()
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = int64(i)
	}
	df, err := frame.New(frame.NewInt64Column("id", ids))
	require.NoError(t, err)
	return df
}

func TestTrainTestSplit(t *testing.T) {
	df := rowsFrame(t, 10)
	train, test, err := TrainTestSplit(df, 0.3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 7, train.NumRows())
	require.Equal(t, 3, test.NumRows())

	a, _ := train.Float64s("id")
	b, _ := test.Float64s("id")
	all := append(a, b...)
	sort.Float64s(all)
	for i, v := range all {
		require.Equal(t, float64(i), v, "every row lands in exactly one part")
	}
}

func TestTrainTestSplitDeterministic(t *testing.T) {
	df := rowsFrame(t, 20)
	_, first, err := TrainTestSplit(df, 0.5, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	_, second, err := TrainTestSplit(df, 0.5, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestTrainTestSplitBounds(t *testing.T) {
	df := rowsFrame(t, 4)

	train, test, err := TrainTestSplit(df, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 4, train.NumRows())
	require.Equal(t, 0, test.NumRows())

	train, test, err = TrainTestSplit(df, 1, nil)
	require.NoError(t, err)
	require.Equal(t, 0, train.NumRows())
	require.Equal(t, 4, test.NumRows())

	for _, ratio := range []float64{-0.1, 1.5} {
		_, _, err := TrainTestSplit(df, ratio, nil)
		require.ErrorIs(t, err, ErrInvalidRatio)
	}
}
