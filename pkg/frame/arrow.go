package frame

import (
	"math"
	"time"

	"cosmossdk.io/errors"
	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"
)

// arrowType maps a column kind to its Arrow type. Categories are written as
// plain strings.
func arrowType(k Kind) (arrow.DataType, error) {
	switch k {
	case KindFloat64:
		return arrow.PrimitiveTypes.Float64, nil
	case KindInt64:
		return arrow.PrimitiveTypes.Int64, nil
	case KindBool:
		return arrow.FixedWidthTypes.Boolean, nil
	case KindString, KindCategory:
		return arrow.BinaryTypes.String, nil
	case KindTime:
		return arrow.FixedWidthTypes.Timestamp_ns, nil
	case KindDuration:
		return arrow.FixedWidthTypes.Duration_ns, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "kind %s", k)
	}
}

// ToRecord converts the frame into an Arrow record. The caller owns the
// record and must Release it.
func ToRecord(f *Frame, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	fields := make([]arrow.Field, len(f.columns))
	for i, c := range f.columns {
		dt, err := arrowType(c.GetKind())
		if err != nil {
			return nil, err
		}
		fields[i] = arrow.Field{Name: c.GetName(), Type: dt}
	}
	b := array.NewRecordBuilder(mem, arrow.NewSchema(fields, nil))
	defer b.Release()

	for i, c := range f.columns {
		switch col := c.(type) {
		case *Float64Column:
			b.Field(i).(*array.Float64Builder).AppendValues(col.Values, nil)
		case *Int64Column:
			b.Field(i).(*array.Int64Builder).AppendValues(col.Values, nil)
		case *BoolColumn:
			b.Field(i).(*array.BooleanBuilder).AppendValues(col.Values, nil)
		case *StringColumn:
			b.Field(i).(*array.StringBuilder).AppendValues(col.Values, nil)
		case *CategoryColumn:
			sb := b.Field(i).(*array.StringBuilder)
			for r := range col.Codes {
				sb.Append(col.Value(r))
			}
		case *TimeColumn:
			tb := b.Field(i).(*array.TimestampBuilder)
			for _, v := range col.Values {
				tb.Append(arrow.Timestamp(v.UnixNano()))
			}
		case *DurationColumn:
			db := b.Field(i).(*array.DurationBuilder)
			for _, v := range col.Values {
				db.Append(arrow.Duration(v))
			}
		}
	}
	return b.NewRecord(), nil
}

// FromRecord copies an Arrow record into a frame. Null floats become NaN;
// nulls in any other column are rejected.
func FromRecord(rec arrow.Record) (*Frame, error) {
	f, err := New()
	if err != nil {
		return nil, err
	}
	for i := 0; i < int(rec.NumCols()); i++ {
		col, err := fromArray(rec.ColumnName(i), rec.Column(i))
		if err != nil {
			return nil, err
		}
		if err := f.Append(col); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func fromArray(name string, arr arrow.Array) (Column, error) {
	n := arr.Len()
	if arr.DataType().ID() != arrow.FLOAT64 && arr.NullN() > 0 {
		return nil, errors.Wrapf(ErrUnsupportedType, "column %q has %d nulls", name, arr.NullN())
	}
	switch a := arr.(type) {
	case *array.Float64:
		values := make([]float64, n)
		for i := range values {
			if a.IsNull(i) {
				values[i] = math.NaN()
				continue
			}
			values[i] = a.Value(i)
		}
		return NewFloat64Column(name, values), nil
	case *array.Int64:
		return NewInt64Column(name, append([]int64(nil), a.Int64Values()...)), nil
	case *array.Boolean:
		values := make([]bool, n)
		for i := range values {
			values[i] = a.Value(i)
		}
		return NewBoolColumn(name, values), nil
	case *array.String:
		values := make([]string, n)
		for i := range values {
			values[i] = a.Value(i)
		}
		return NewStringColumn(name, values), nil
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		values := make([]time.Time, n)
		for i := range values {
			values[i] = a.Value(i).ToTime(unit)
		}
		return NewTimeColumn(name, values), nil
	case *array.Duration:
		unit := a.DataType().(*arrow.DurationType).Unit
		values := make([]time.Duration, n)
		for i := range values {
			values[i] = time.Duration(a.Value(i)) * unit.Multiplier()
		}
		return NewDurationColumn(name, values), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "column %q has arrow type %s", name, arr.DataType())
	}
}
