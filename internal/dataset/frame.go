// Package dataset holds the in-memory tabular data measures are computed on:
// named numeric columns of equal length, loaded from CSV files (optionally
// snappy-compressed) or generated synthetically.
package dataset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/apodego/apode/internal/analytics"
)

// DefaultColumn is the column name used by generated datasets
const DefaultColumn = "x"

var (
	// ErrColumnNotFound is returned when a frame has no column of that name
	ErrColumnNotFound = errors.New("column not found")

	// ErrUnknownStat is returned by Stat for names outside the stat surface
	ErrUnknownStat = errors.New("unknown stat")

	// ErrUnknownPlot is returned by PlotData for names outside the plot surface
	ErrUnknownPlot = errors.New("unknown plot")

	// ErrLengthMismatch is returned when a column's length differs from the frame's
	ErrLengthMismatch = errors.New("column length mismatch")
)

// Frame is a set of named float64 columns sharing one row count
type Frame struct {
	names   []string
	columns map[string][]float64
	rows    int
}

// NewFrame returns an empty frame
func NewFrame() *Frame {
	return &Frame{columns: make(map[string][]float64)}
}

// AddColumn appends a column. The first column fixes the row count; the
// frame keeps values without copying.
func (f *Frame) AddColumn(name string, values []float64) error {
	if _, exists := f.columns[name]; exists {
		return fmt.Errorf("column %q already exists", name)
	}
	if len(f.names) > 0 && len(values) != f.rows {
		return fmt.Errorf("%w: column %q has %d rows, frame has %d", ErrLengthMismatch, name, len(values), f.rows)
	}
	if len(f.names) == 0 {
		f.rows = len(values)
	}
	f.names = append(f.names, name)
	f.columns[name] = values
	return nil
}

// Column returns the named column as a sample. The sample aliases the
// frame's storage and must not be modified.
func (f *Frame) Column(name string) (analytics.Sample, error) {
	values, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrColumnNotFound, name, f.names)
	}
	return values, nil
}

// HasColumn reports whether the frame has a column named name
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.columns[name]
	return ok
}

// Columns returns the column names in insertion order
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

// Rows returns the number of rows
func (f *Frame) Rows() int {
	return f.rows
}

// Head returns a frame with at most n leading rows of every column
func (f *Frame) Head(n int) *Frame {
	if n >= f.rows {
		return f
	}
	out := NewFrame()
	for _, name := range f.names {
		_ = out.AddColumn(name, f.columns[name][:n])
	}
	return out
}

// Describe returns every stat of every column, keyed by column then stat
func (f *Frame) Describe() (map[string]map[string]float64, error) {
	out := make(map[string]map[string]float64, len(f.names))
	for _, name := range f.names {
		row := make(map[string]float64, len(statNames))
		for _, stat := range StatNames() {
			v, err := f.Stat(name, stat)
			if err != nil {
				return nil, err
			}
			row[stat] = v
		}
		out[name] = row
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
