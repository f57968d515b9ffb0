package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"dfscaler/pkg/frame"
)

// ErrNoHeader is returned for input without a header row.
var ErrNoHeader = errors.New("csv input has no header row")

// CSVOptions controls how ReadCSV parses its input.
type CSVOptions struct {
	// Comma is the field delimiter; zero means ','.
	Comma rune
	// Categorical names columns to load as categories instead of text.
	Categorical []string
}

// isMissing reports the markers treated as a missing value.
func isMissing(s string) bool {
	return s == "" || s == "NA" || s == "NaN"
}

// ReadCSV loads a CSV document with a header row into a frame. Each column
// gets the narrowest kind that parses every value: int64, float64 (missing
// values become NaN), bool, RFC3339 time, duration, then string.
func ReadCSV(r io.Reader, opts CSVOptions) (*frame.Frame, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header := records[0]
	rows := records[1:]
	categorical := make(map[string]struct{}, len(opts.Categorical))
	for _, name := range opts.Categorical {
		categorical[name] = struct{}{}
	}

	df, err := frame.New()
	if err != nil {
		return nil, err
	}
	for j, name := range header {
		raw := make([]string, len(rows))
		for i, rec := range rows {
			raw[i] = rec[j]
		}
		var col frame.Column
		if _, ok := categorical[name]; ok {
			col = frame.NewCategoryColumn(name, raw)
		} else {
			col = inferColumn(name, raw)
		}
		if err := df.Append(col); err != nil {
			return nil, err
		}
	}
	return df, nil
}

func inferColumn(name string, raw []string) frame.Column {
	if v, ok := parseAll(raw, false, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }); ok {
		return frame.NewInt64Column(name, v)
	}
	if v, ok := parseFloats(raw); ok {
		return frame.NewFloat64Column(name, v)
	}
	if v, ok := parseAll(raw, false, parseBool); ok {
		return frame.NewBoolColumn(name, v)
	}
	if v, ok := parseAll(raw, false, func(s string) (time.Time, error) { return time.Parse(time.RFC3339, s) }); ok {
		return frame.NewTimeColumn(name, v)
	}
	if v, ok := parseAll(raw, false, time.ParseDuration); ok {
		return frame.NewDurationColumn(name, v)
	}
	return frame.NewStringColumn(name, append([]string(nil), raw...))
}

// parseAll parses every value with parse. Missing values are accepted only
// when allowMissing is set and are left as the zero value.
func parseAll[T any](raw []string, allowMissing bool, parse func(string) (T, error)) ([]T, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	out := make([]T, len(raw))
	for i, s := range raw {
		if isMissing(s) {
			if allowMissing {
				continue
			}
			return nil, false
		}
		v, err := parse(strings.TrimSpace(s))
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func parseFloats(raw []string) ([]float64, bool) {
	out, ok := parseAll(raw, true, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	if !ok {
		return nil, false
	}
	for i, s := range raw {
		if isMissing(s) {
			out[i] = math.NaN()
		}
	}
	return out, true
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("not a bool: %q", s)
	}
}

// WriteCSV writes df with a header row.
func WriteCSV(w io.Writer, df *frame.Frame) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(df.Names()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	cols := df.Columns()
	record := make([]string, len(cols))
	for i := 0; i < df.NumRows(); i++ {
		for j, c := range cols {
			record[j] = formatValue(c, i)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatValue(c frame.Column, i int) string {
	switch col := c.(type) {
	case *frame.Float64Column:
		return strconv.FormatFloat(col.Values[i], 'g', -1, 64)
	case *frame.Int64Column:
		return strconv.FormatInt(col.Values[i], 10)
	case *frame.BoolColumn:
		return strconv.FormatBool(col.Values[i])
	case *frame.StringColumn:
		return col.Values[i]
	case *frame.TimeColumn:
		return col.Values[i].Format(time.RFC3339Nano)
	case *frame.DurationColumn:
		return col.Values[i].String()
	case *frame.CategoryColumn:
		return col.Value(i)
	default:
		return ""
	}
}
