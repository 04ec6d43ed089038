package dataset

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/apodego/apode/internal/analytics"
)

// DefaultHistogramBins is the bin count used when none is configured
const DefaultHistogramBins = 10

var statNames = map[string]func(xs []float64) float64{
	"count": func(xs []float64) float64 { return float64(len(xs)) },
	"sum":   func(xs []float64) float64 { return stats.Sample{Xs: xs}.Sum() },
	"mean":  stats.Mean,
	"std":   stats.StdDev,
	"min": func(xs []float64) float64 {
		lo, _ := stats.Bounds(xs)
		return lo
	},
	"max": func(xs []float64) float64 {
		_, hi := stats.Bounds(xs)
		return hi
	},
	"median": func(xs []float64) float64 { return stats.Sample{Xs: xs}.Quantile(0.5) },
}

var plotNames = map[string]func(xs []float64, bins int) *analytics.Series{
	"hist": histogram,
	"line": line,
	"ecdf": ecdf,
}

// StatNames lists the names Stat understands
func StatNames() []string {
	return sortedKeys(statNames)
}

// PlotNames lists the names PlotData understands
func PlotNames() []string {
	return sortedKeys(plotNames)
}

// Stat evaluates a descriptive statistic on a column
func (f *Frame) Stat(column, name string) (float64, error) {
	fn, ok := statNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStat, name, StatNames())
	}
	xs, err := f.Column(column)
	if err != nil {
		return 0, err
	}
	return fn(xs), nil
}

// PlotData builds a generic plot series for a column. bins only applies to
// histograms; values <= 0 select DefaultHistogramBins.
func (f *Frame) PlotData(column, name string, bins int) (*analytics.Series, error) {
	fn, ok := plotNames[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPlot, name, PlotNames())
	}
	xs, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	s := fn(xs, bins)
	s.Name = name
	return s, nil
}

// histogram counts values in equal-width bins spanning [min, max]; X holds
// bin centers
func histogram(xs []float64, bins int) *analytics.Series {
	s := &analytics.Series{XLabel: "value", YLabel: "count", X: []float64{}, Y: []float64{}}
	if len(xs) == 0 {
		return s
	}
	lo, hi := stats.Bounds(xs)
	width := (hi - lo) / float64(bins)
	if width == 0 {
		s.X = []float64{lo}
		s.Y = []float64{float64(len(xs))}
		return s
	}

	s.X = make([]float64, bins)
	s.Y = make([]float64, bins)
	for i := range s.X {
		s.X[i] = lo + (float64(i)+0.5)*width
	}
	for _, x := range xs {
		i := int(math.Floor((x - lo) / width))
		if i >= bins {
			i = bins - 1
		}
		s.Y[i]++
	}
	return s
}

func line(xs []float64, _ int) *analytics.Series {
	s := &analytics.Series{XLabel: "row", YLabel: "value", X: make([]float64, len(xs)), Y: make([]float64, len(xs))}
	for i, x := range xs {
		s.X[i] = float64(i)
		s.Y[i] = x
	}
	return s
}

func ecdf(xs []float64, _ int) *analytics.Series {
	sorted := analytics.Sample(xs).Sorted()
	n := float64(len(sorted))
	s := &analytics.Series{XLabel: "value", YLabel: "cumulative fraction", X: sorted, Y: make([]float64, len(sorted))}
	for i := range sorted {
		s.Y[i] = float64(i+1) / n
	}
	return s
}
