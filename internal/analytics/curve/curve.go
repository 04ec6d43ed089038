// Package curve generates population-indexed datasets (Lorenz curves, Pen's
// Parade, TIP curves) for rendering by an external plotter.
package curve

import (
	"fmt"

	"github.com/apodego/apode/internal/analytics"
	"github.com/apodego/apode/internal/downsampling"
)

// Family is the name the curve generators are registered under
const Family = "curve"

// Curve kinds
const (
	KindLorenz = "lorenz"
	KindPen    = "pen"
	KindTIP    = "tip"

	DefaultKind = KindLorenz
)

// Dataset is a curve sampled at n+1 population points. Population runs from
// 0 to 1 in steps of 1/n; Variable starts at 0 and Line, when present, is the
// reference the curve is compared against.
type Dataset struct {
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`

	Population []float64 `json:"population"`
	Variable   []float64 `json:"variable"`
	Line       []float64 `json:"line,omitempty"`

	// PovertyLine is an auxiliary constant series drawn by Pen's Parade when
	// a poverty line was requested
	PovertyLine []float64 `json:"poverty_line,omitempty"`
}

// Len returns the number of points
func (d *Dataset) Len() int {
	return len(d.Population)
}

// HasLine reports whether the dataset carries a reference line
func (d *Dataset) HasLine() bool {
	return d.Line != nil
}

// Thin returns a copy keeping about points points of every series, chosen
// on the plotted (Population, Variable) pair. The receiver is returned when
// nothing is dropped.
func (d *Dataset) Thin(mode downsampling.Mode, points int) (*Dataset, error) {
	idx, err := downsampling.Select(d.Population, d.Variable, mode, points)
	if err != nil {
		return nil, err
	}
	if len(idx) == d.Len() {
		return d, nil
	}
	out := *d
	out.Population = downsampling.Gather(d.Population, idx)
	out.Variable = downsampling.Gather(d.Variable, idx)
	out.Line = downsampling.Gather(d.Line, idx)
	out.PovertyLine = downsampling.Gather(d.PovertyLine, idx)
	return &out, nil
}

// Func builds a curve dataset from a sample
type Func = analytics.Func[*Dataset]

var registry = analytics.NewRegistry[*Dataset](Family)

func init() {
	registry.Register(KindLorenz, lorenz, analytics.OptVariant)
	registry.Register(KindPen, pen, analytics.OptPovertyLine)
	registry.Register(KindTIP, tip, analytics.OptPovertyLine)
}

// Registry returns the curve registry
func Registry() *analytics.Registry[*Dataset] {
	return registry
}

// List returns the registered curve kinds
func List() []string {
	return registry.Names()
}

// Accessor generates curves for one sample. Curve kinds are reached through
// Call or the typed helpers; the host dataset's own plots are reached
// explicitly through Fallback.
type Accessor struct {
	*analytics.Dispatcher[*Dataset]
	host analytics.PlotHost
}

// New binds the curve generators to sample. host may be nil.
func New(sample analytics.Sample, host analytics.PlotHost) *Accessor {
	return &Accessor{
		Dispatcher: analytics.NewDispatcher(registry, DefaultKind, sample),
		host:       host,
	}
}

// Lorenz builds the Lorenz curve of the given variant
func (a *Accessor) Lorenz(variant Variant) (*Dataset, error) {
	return a.Call(KindLorenz, analytics.WithVariant(string(variant)))
}

// Pen builds Pen's Parade; pass analytics.WithPovertyLine to add the
// poverty line series
func (a *Accessor) Pen(opts ...analytics.Option) (*Dataset, error) {
	return a.Call(KindPen, opts...)
}

// TIP builds the TIP curve for the poverty line pline
func (a *Accessor) TIP(pline float64) (*Dataset, error) {
	return a.Call(KindTIP, analytics.WithPovertyLine(pline))
}

// Fallback builds one of the host dataset's generic plots
func (a *Accessor) Fallback(name string) (*analytics.Series, error) {
	if a.host == nil {
		return nil, fmt.Errorf("%w: %s has no kind %q and no host dataset", analytics.ErrUnknownMeasure, Family, name)
	}
	return a.host.PlotData(name)
}

// population returns 0, 1/n, ..., 1
func population(n int) []float64 {
	q := make([]float64, n+1)
	for i := range q {
		q[i] = float64(i) / float64(n)
	}
	return q
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
