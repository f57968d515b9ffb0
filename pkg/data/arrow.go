package data

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/ipc"
	"github.com/apache/arrow/go/v15/arrow/memory"

	"dfscaler/pkg/frame"
)

// ReadArrow loads an Arrow IPC stream into a frame. Record batches are
// concatenated in order.
func ReadArrow(r io.Reader) (*frame.Frame, error) {
	mem := memory.DefaultAllocator
	rdr, err := ipc.NewReader(r, ipc.WithAllocator(mem))
	if err != nil {
		return nil, fmt.Errorf("failed to open arrow stream: %w", err)
	}
	defer rdr.Release()

	var batches []arrow.Record
	defer func() {
		for _, rec := range batches {
			rec.Release()
		}
	}()
	for rdr.Next() {
		rec := rdr.Record()
		rec.Retain()
		batches = append(batches, rec)
	}
	if err := rdr.Err(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read arrow stream: %w", err)
	}

	schema := rdr.Schema()
	if len(batches) == 1 {
		return frame.FromRecord(batches[0])
	}

	var rows int64
	for _, rec := range batches {
		rows += rec.NumRows()
	}
	cols := make([]arrow.Array, len(schema.Fields()))
	defer func() {
		for _, c := range cols {
			if c != nil {
				c.Release()
			}
		}
	}()
	for i, field := range schema.Fields() {
		if len(batches) == 0 {
			b := array.NewBuilder(mem, field.Type)
			cols[i] = b.NewArray()
			b.Release()
			continue
		}
		chunks := make([]arrow.Array, len(batches))
		for j, rec := range batches {
			chunks[j] = rec.Column(i)
		}
		if cols[i], err = array.Concatenate(chunks, mem); err != nil {
			return nil, fmt.Errorf("failed to concatenate column %q: %w", field.Name, err)
		}
	}

	rec := array.NewRecord(schema, cols, rows)
	defer rec.Release()
	return frame.FromRecord(rec)
}

// WriteArrow writes df as a single-batch Arrow IPC stream.
func WriteArrow(w io.Writer, df *frame.Frame) error {
	mem := memory.DefaultAllocator
	rec, err := frame.ToRecord(df, mem)
	if err != nil {
		return err
	}
	defer rec.Release()

	wr := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err := wr.Write(rec); err != nil {
		wr.Close()
		return fmt.Errorf("failed to write arrow record: %w", err)
	}
	return wr.Close()
}
