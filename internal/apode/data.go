// Package apode binds a dataset column to the measure families: a Data value
// is the entry point for computing concentration, welfare and inequality
// measures and distribution curves on one variable.
package apode

import (
	"fmt"

	"github.com/apodego/apode/internal/analytics"
	"github.com/apodego/apode/internal/analytics/concentration"
	"github.com/apodego/apode/internal/analytics/curve"
	"github.com/apodego/apode/internal/analytics/inequality"
	"github.com/apodego/apode/internal/analytics/welfare"
	"github.com/apodego/apode/internal/dataset"
)

// Data is a frame with a designated variable column
type Data struct {
	frame  *dataset.Frame
	column string
	sample analytics.Sample
	bins   int
}

// Option configures a Data value
type Option func(*Data)

// WithHistogramBins sets the bin count of the "hist" fallback plot
func WithHistogramBins(bins int) Option {
	return func(d *Data) {
		d.bins = bins
	}
}

// New binds frame's column. The column is resolved once; accessors borrow
// its values without copying.
func New(frame *dataset.Frame, column string, opts ...Option) (*Data, error) {
	sample, err := frame.Column(column)
	if err != nil {
		return nil, err
	}
	d := &Data{
		frame:  frame,
		column: column,
		sample: sample,
		bins:   dataset.DefaultHistogramBins,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// FromValues wraps raw values in a single-column frame
func FromValues(values []float64, opts ...Option) (*Data, error) {
	frame := dataset.NewFrame()
	if err := frame.AddColumn(dataset.DefaultColumn, values); err != nil {
		return nil, err
	}
	return New(frame, dataset.DefaultColumn, opts...)
}

// Frame returns the underlying frame
func (d *Data) Frame() *dataset.Frame {
	return d.frame
}

// Column returns the designated column name
func (d *Data) Column() string {
	return d.column
}

// Sample returns the designated column's values
func (d *Data) Sample() analytics.Sample {
	return d.sample
}

// Stat evaluates a descriptive statistic of the designated column
func (d *Data) Stat(name string) (float64, error) {
	return d.frame.Stat(d.column, name)
}

// PlotData builds a generic plot of the designated column
func (d *Data) PlotData(name string) (*analytics.Series, error) {
	return d.frame.PlotData(d.column, name, d.bins)
}

func (d *Data) Concentration() *concentration.Accessor {
	return concentration.New(d.sample, d)
}

func (d *Data) Welfare() *welfare.Accessor {
	return welfare.New(d.sample, d)
}

func (d *Data) Inequality() *inequality.Accessor {
	return inequality.New(d.sample, d)
}

// Plot returns the curve accessor. Its default kind is the Lorenz curve.
func (d *Data) Plot() *curve.Accessor {
	return curve.New(d.sample, d)
}

// Accessor returns the scalar accessor of a family by name
func (d *Data) Accessor(family string) (*analytics.Accessor, error) {
	switch family {
	case concentration.Family:
		return d.Concentration().Accessor, nil
	case welfare.Family:
		return d.Welfare().Accessor, nil
	case inequality.Family:
		return d.Inequality().Accessor, nil
	}
	return nil, fmt.Errorf("%w: no measure family %q (available: %v)", analytics.ErrUnknownMeasure, family, Families())
}

// Measure evaluates family/method with opts. An empty method selects the
// family default.
func (d *Data) Measure(family, method string, opts ...analytics.Option) (float64, error) {
	acc, err := d.Accessor(family)
	if err != nil {
		return 0, err
	}
	return acc.Call(method, opts...)
}

// Families lists the scalar measure families
func Families() []string {
	return []string{concentration.Family, inequality.Family, welfare.Family}
}

// Methods lists the registered methods of every scalar family and the curve
// kinds, keyed by family
func Methods() map[string][]string {
	return map[string][]string{
		concentration.Family: concentration.List(),
		welfare.Family:       welfare.List(),
		inequality.Family:    inequality.List(),
		curve.Family:         curve.List(),
	}
}
