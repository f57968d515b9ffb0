package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanStd(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		ddof int
		mean float64
		std  float64
	}{
		{"population", []float64{1, 2, 3, 4, 5}, 0, 3, math.Sqrt2},
		{"sample", []float64{1, 2, 3, 4, 5}, 1, 3, math.Sqrt(2.5)},
		{"single value", []float64{7}, 0, 7, 0},
		{"constant", []float64{5, 5, 5}, 1, 5, 0},
		{"negative values", []float64{-2, 2}, 0, 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mean, std := MeanStd(tc.x, tc.ddof)
			assert.InDelta(t, tc.mean, mean, 1e-12)
			assert.InDelta(t, tc.std, std, 1e-12)
		})
	}
}

func TestMeanStdDegenerate(t *testing.T) {
	mean, std := MeanStd(nil, 0)
	assert.True(t, math.IsNaN(mean))
	assert.True(t, math.IsNaN(std))

	mean, std = MeanStd([]float64{4}, 1)
	assert.Equal(t, 4.0, mean)
	assert.True(t, math.IsNaN(std), "no degrees of freedom left")

	_, std = MeanStd([]float64{1, 2}, 3)
	assert.True(t, math.IsNaN(std))
}

func TestMeanStdPropagatesNaN(t *testing.T) {
	mean, std := MeanStd([]float64{1, math.NaN(), 3}, 0)
	assert.True(t, math.IsNaN(mean))
	assert.True(t, math.IsNaN(std))
}

func TestDropNaN(t *testing.T) {
	assert.Equal(t, []float64{1, 3}, DropNaN([]float64{math.NaN(), 1, math.NaN(), 3}))
	assert.Empty(t, DropNaN([]float64{math.NaN()}))
}

func TestDescribe(t *testing.T) {
	s, err := Describe([]float64{4, 1, math.NaN(), 3, 2, 5}, 1)
	require.NoError(t, err)

	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.Std, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 3.0, s.Median)
	assert.Less(t, s.Q1, s.Median)
	assert.Greater(t, s.Q3, s.Median)
}

func TestDescribeSmallInputs(t *testing.T) {
	s, err := Describe(nil, 0)
	require.NoError(t, err)
	assert.Zero(t, s.Count)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.Max))

	s, err = Describe([]float64{2}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 2.0, s.Median)
	assert.True(t, math.IsNaN(s.Q1))
	assert.True(t, math.IsNaN(s.Q3))
}
