package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
)

// Summary is a per-column report in the spirit of a dataframe describe().
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarizes x, ignoring NaN entries. The deviation uses ddof.
// Quartiles need at least two values; with fewer they are NaN.
func Describe(x []float64, ddof int) (Summary, error) {
	data := mstats.Float64Data(DropNaN(x))
	s := Summary{
		Count:  data.Len(),
		Mean:   math.NaN(),
		Std:    math.NaN(),
		Min:    math.NaN(),
		Q1:     math.NaN(),
		Median: math.NaN(),
		Q3:     math.NaN(),
		Max:    math.NaN(),
	}
	if s.Count == 0 {
		return s, nil
	}
	s.Mean, s.Std = MeanStd(data, ddof)

	var err error
	if s.Min, err = mstats.Min(data); err != nil {
		return s, err
	}
	if s.Max, err = mstats.Max(data); err != nil {
		return s, err
	}
	if s.Median, err = mstats.Median(data); err != nil {
		return s, err
	}
	if s.Count < 2 {
		return s, nil
	}
	q, err := mstats.Quartile(data)
	if err != nil {
		return s, err
	}
	s.Q1, s.Q3 = q.Q1, q.Q3
	return s, nil
}
