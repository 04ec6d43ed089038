package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadCSV parses a CSV stream with a header row into a frame. Every column
// must be numeric; empty and non-finite cells are rejected. maxRows <= 0 means unlimited.
func ReadCSV(r io.Reader, maxRows int) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv: missing header row")
		}
		return nil, fmt.Errorf("csv: failed to read header: %w", err)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
		if names[i] == "" {
			return nil, fmt.Errorf("csv: empty column name at position %d", i+1)
		}
	}

	columns := make([][]float64, len(names))
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		if maxRows > 0 && row > maxRows {
			return nil, fmt.Errorf("csv: more than %d rows", maxRows)
		}
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("csv: row %d column %q: %q is not a number", row, names[i], cell)
			}
			columns[i] = append(columns[i], v)
		}
	}

	f := NewFrame()
	for i, name := range names {
		if err := f.AddColumn(name, columns[i]); err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
	}
	return f, nil
}

// WriteCSV writes the frame with a header row
func WriteCSV(w io.Writer, f *Frame) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(f.names); err != nil {
		return fmt.Errorf("csv: failed to write header: %w", err)
	}

	record := make([]string, len(f.names))
	for row := 0; row < f.rows; row++ {
		for i, name := range f.names {
			record[i] = strconv.FormatFloat(f.columns[name][row], 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("csv: failed to write row %d: %w", row, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
