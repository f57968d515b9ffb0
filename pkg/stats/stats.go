package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MeanStd returns the mean and the standard deviation of x computed with
// N-ddof degrees of freedom. An empty slice yields NaN for both values and
// N-ddof <= 0 yields a NaN deviation.
func MeanStd(x []float64, ddof int) (mean, std float64) {
	n := len(x)
	if n == 0 {
		return math.NaN(), math.NaN()
	}
	mean, variance := stat.PopMeanVariance(x, nil)
	dof := n - ddof
	if dof <= 0 {
		return mean, math.NaN()
	}
	// PopMeanVariance divides by N; rescale to N-ddof.
	variance = variance * float64(n) / float64(dof)
	return mean, math.Sqrt(variance)
}

// DropNaN returns the non-NaN values of x in order.
func DropNaN(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
