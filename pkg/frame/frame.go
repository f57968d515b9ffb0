package frame

import (
	"cosmossdk.io/errors"

	"dfscaler/pkg/stats"
)

// Frame is a rectangular table of named, typed columns. Column order is
// preserved and names are unique.
type Frame struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New builds a frame from columns of equal length.
func New(cols ...Column) (*Frame, error) {
	f := &Frame{
		columns: make([]Column, 0, len(cols)),
		index:   make(map[string]int, len(cols)),
	}
	for _, c := range cols {
		if err := f.Append(c); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Append adds c as the last column.
func (f *Frame) Append(c Column) error {
	name := c.GetName()
	if _, ok := f.index[name]; ok {
		return errors.Wrapf(ErrDuplicateColumn, "column %q", name)
	}
	if len(f.columns) > 0 && c.Len() != f.rows {
		return errors.Wrapf(ErrLengthMismatch, "column %q has %d rows, frame has %d", name, c.Len(), f.rows)
	}
	f.rows = c.Len()
	f.index[name] = len(f.columns)
	f.columns = append(f.columns, c)
	return nil
}

func (f *Frame) NumRows() int { return f.rows }
func (f *Frame) NumCols() int { return len(f.columns) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.GetName()
	}
	return names
}

func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

func (f *Frame) Column(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.columns[i], true
}

// Columns returns the columns in order. The slice is shared with the frame.
func (f *Frame) Columns() []Column { return f.columns }

// Kind returns the kind of the named column.
func (f *Frame) Kind(name string) (Kind, error) {
	c, ok := f.Column(name)
	if !ok {
		return 0, errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}
	return c.GetKind(), nil
}

// NamesWhere returns, in column order, the names whose kind satisfies pred.
func (f *Frame) NamesWhere(pred func(Kind) bool) []string {
	var names []string
	for _, c := range f.columns {
		if pred(c.GetKind()) {
			names = append(names, c.GetName())
		}
	}
	return names
}

// NumericNames returns the names of the int64 and float64 columns.
func (f *Frame) NumericNames() []string {
	return f.NamesWhere(Kind.Numeric)
}

// Float64s returns a copy of a numeric column as float64 values.
func (f *Frame) Float64s(name string) ([]float64, error) {
	c, ok := f.Column(name)
	if !ok {
		return nil, errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}
	switch col := c.(type) {
	case *Float64Column:
		return append([]float64(nil), col.Values...), nil
	case *Int64Column:
		out := make([]float64, len(col.Values))
		for i, v := range col.Values {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, errors.Wrapf(ErrColumnType, "column %q is %s", name, c.GetKind())
	}
}

// SetFloat64s replaces the named column with a float64 column holding values.
// The column keeps its position.
func (f *Frame) SetFloat64s(name string, values []float64) error {
	i, ok := f.index[name]
	if !ok {
		return errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}
	if len(values) != f.rows {
		return errors.Wrapf(ErrLengthMismatch, "column %q: got %d values, frame has %d rows", name, len(values), f.rows)
	}
	f.columns[i] = &Float64Column{Name: name, Values: values}
	return nil
}

// MeanStd reduces a numeric column to its mean and its standard deviation
// with N-ddof degrees of freedom.
func (f *Frame) MeanStd(name string, ddof int) (mean, std float64, err error) {
	values, err := f.Float64s(name)
	if err != nil {
		return 0, 0, err
	}
	mean, std = stats.MeanStd(values, ddof)
	return mean, std, nil
}

// Clone deep copies the frame.
func (f *Frame) Clone() *Frame {
	n := &Frame{
		columns: make([]Column, len(f.columns)),
		index:   make(map[string]int, len(f.index)),
		rows:    f.rows,
	}
	for i, c := range f.columns {
		n.columns[i] = c.clone()
		n.index[c.GetName()] = i
	}
	return n
}

// Take returns a new frame holding the given rows, in the given order.
func (f *Frame) Take(rows []int) *Frame {
	n := &Frame{
		columns: make([]Column, len(f.columns)),
		index:   make(map[string]int, len(f.index)),
		rows:    len(rows),
	}
	for i, c := range f.columns {
		n.columns[i] = take(c, rows)
		n.index[c.GetName()] = i
	}
	return n
}

func take(c Column, rows []int) Column {
	switch col := c.(type) {
	case *Float64Column:
		return &Float64Column{Name: col.Name, Values: gather(col.Values, rows)}
	case *Int64Column:
		return &Int64Column{Name: col.Name, Values: gather(col.Values, rows)}
	case *BoolColumn:
		return &BoolColumn{Name: col.Name, Values: gather(col.Values, rows)}
	case *StringColumn:
		return &StringColumn{Name: col.Name, Values: gather(col.Values, rows)}
	case *TimeColumn:
		return &TimeColumn{Name: col.Name, Values: gather(col.Values, rows)}
	case *DurationColumn:
		return &DurationColumn{Name: col.Name, Values: gather(col.Values, rows)}
	case *CategoryColumn:
		return &CategoryColumn{
			Name:   col.Name,
			Codes:  gather(col.Codes, rows),
			Levels: append([]string(nil), col.Levels...),
		}
	default:
		panic("unsupported column type")
	}
}

func gather[T any](values []T, rows []int) []T {
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = values[r]
	}
	return out
}
