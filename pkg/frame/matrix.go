package frame

import (
	"gonum.org/v1/gonum/mat"
)

// Matrix copies the named numeric columns into a rows x len(names) dense
// matrix, ready for model training. With no names every numeric column is used.
func (f *Frame) Matrix(names ...string) (*mat.Dense, error) {
	if len(names) == 0 {
		names = f.NumericNames()
	}
	if f.rows == 0 || len(names) == 0 {
		return &mat.Dense{}, nil
	}
	m := mat.NewDense(f.rows, len(names), nil)
	for j, name := range names {
		col, err := f.Float64s(name)
		if err != nil {
			return nil, err
		}
		m.SetCol(j, col)
	}
	return m, nil
}
