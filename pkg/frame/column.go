package frame

import (
	"fmt"
	"time"
)

// Kind is the data type of a column.
type Kind int

const (
	KindFloat64 Kind = iota
	KindInt64
	KindBool
	KindString
	KindTime
	KindDuration
	KindCategory
)

func (k Kind) String() string {
	switch k {
	case KindFloat64:
		return "float64"
	case KindInt64:
		return "int64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindDuration:
		return "duration"
	case KindCategory:
		return "category"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Numeric reports whether columns of this kind take part in arithmetic.
// Booleans, text, temporal, duration and categorical columns never do.
func (k Kind) Numeric() bool {
	return k == KindFloat64 || k == KindInt64
}

type Column interface {
	GetName() string
	GetKind() Kind
	Len() int
	clone() Column
}

type Float64Column struct {
	Name   string
	Values []float64
}

func (c *Float64Column) GetName() string { return c.Name }
func (c *Float64Column) GetKind() Kind   { return KindFloat64 }
func (c *Float64Column) Len() int        { return len(c.Values) }

func (c *Float64Column) clone() Column {
	return &Float64Column{Name: c.Name, Values: append([]float64(nil), c.Values...)}
}

func NewFloat64Column(name string, values []float64) *Float64Column {
	return &Float64Column{Name: name, Values: values}
}

type Int64Column struct {
	Name   string
	Values []int64
}

func (c *Int64Column) GetName() string { return c.Name }
func (c *Int64Column) GetKind() Kind   { return KindInt64 }
func (c *Int64Column) Len() int        { return len(c.Values) }

func (c *Int64Column) clone() Column {
	return &Int64Column{Name: c.Name, Values: append([]int64(nil), c.Values...)}
}

func NewInt64Column(name string, values []int64) *Int64Column {
	return &Int64Column{Name: name, Values: values}
}

type BoolColumn struct {
	Name   string
	Values []bool
}

func (c *BoolColumn) GetName() string { return c.Name }
func (c *BoolColumn) GetKind() Kind   { return KindBool }
func (c *BoolColumn) Len() int        { return len(c.Values) }

func (c *BoolColumn) clone() Column {
	return &BoolColumn{Name: c.Name, Values: append([]bool(nil), c.Values...)}
}

func NewBoolColumn(name string, values []bool) *BoolColumn {
	return &BoolColumn{Name: name, Values: values}
}

type StringColumn struct {
	Name   string
	Values []string
}

func (c *StringColumn) GetName() string { return c.Name }
func (c *StringColumn) GetKind() Kind   { return KindString }
func (c *StringColumn) Len() int        { return len(c.Values) }

func (c *StringColumn) clone() Column {
	return &StringColumn{Name: c.Name, Values: append([]string(nil), c.Values...)}
}

func NewStringColumn(name string, values []string) *StringColumn {
	return &StringColumn{Name: name, Values: values}
}

type TimeColumn struct {
	Name   string
	Values []time.Time
}

func (c *TimeColumn) GetName() string { return c.Name }
func (c *TimeColumn) GetKind() Kind   { return KindTime }
func (c *TimeColumn) Len() int        { return len(c.Values) }

func (c *TimeColumn) clone() Column {
	return &TimeColumn{Name: c.Name, Values: append([]time.Time(nil), c.Values...)}
}

func NewTimeColumn(name string, values []time.Time) *TimeColumn {
	return &TimeColumn{Name: name, Values: values}
}

type DurationColumn struct {
	Name   string
	Values []time.Duration
}

func (c *DurationColumn) GetName() string { return c.Name }
func (c *DurationColumn) GetKind() Kind   { return KindDuration }
func (c *DurationColumn) Len() int        { return len(c.Values) }

func (c *DurationColumn) clone() Column {
	return &DurationColumn{Name: c.Name, Values: append([]time.Duration(nil), c.Values...)}
}

func NewDurationColumn(name string, values []time.Duration) *DurationColumn {
	return &DurationColumn{Name: name, Values: values}
}

// CategoryColumn stores each row as an index into Levels.
type CategoryColumn struct {
	Name   string
	Codes  []int
	Levels []string
}

func (c *CategoryColumn) GetName() string { return c.Name }
func (c *CategoryColumn) GetKind() Kind   { return KindCategory }
func (c *CategoryColumn) Len() int        { return len(c.Codes) }

func (c *CategoryColumn) clone() Column {
	return &CategoryColumn{
		Name:   c.Name,
		Codes:  append([]int(nil), c.Codes...),
		Levels: append([]string(nil), c.Levels...),
	}
}

// Value returns the level of row i.
func (c *CategoryColumn) Value(i int) string {
	return c.Levels[c.Codes[i]]
}

// NewCategoryColumn builds a category column with levels in order of first
// appearance.
func NewCategoryColumn(name string, values []string) *CategoryColumn {
	index := map[string]int{}
	col := &CategoryColumn{Name: name, Codes: make([]int, len(values))}
	for i, v := range values {
		code, ok := index[v]
		if !ok {
			code = len(col.Levels)
			index[v] = code
			col.Levels = append(col.Levels, v)
		}
		col.Codes[i] = code
	}
	return col
}
