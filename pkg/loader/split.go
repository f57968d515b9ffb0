package loader

import (
	"errors"
	"math/rand"

	"dfscaler/pkg/frame"
)

// ErrInvalidRatio is returned when a split ratio falls outside [0, 1].
var ErrInvalidRatio = errors.New("split ratio must be within [0, 1]")

// TrainTestSplit splits the rows of df into train and test frames by ratio.
// A nil rng uses the global source.
func TrainTestSplit(df *frame.Frame, testRatio float64, rng *rand.Rand) (train, test *frame.Frame, err error) {
	if testRatio < 0 || testRatio > 1 {
		return nil, nil, ErrInvalidRatio
	}
	n := df.NumRows()
	indices := perm(n, rng)
	nTest := int(float64(n) * testRatio)
	return df.Take(indices[nTest:]), df.Take(indices[:nTest]), nil
}

func perm(n int, rng *rand.Rand) []int {
	if rng == nil {
		return rand.Perm(n)
	}
	return rng.Perm(n)
}
