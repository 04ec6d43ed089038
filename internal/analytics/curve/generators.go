package curve

import (
	"fmt"
	"math"
	"strings"

	"github.com/apodego/apode/internal/analytics"
)

// Variant selects the Lorenz curve flavour
type Variant string

const (
	// VariantPlain is the classic curve of cumulative shares
	VariantPlain Variant = "plain"
	// VariantGeneralized scales the relative curve by the mean
	VariantGeneralized Variant = "generalized"
	// VariantAbsolute accumulates deviations from the mean
	VariantAbsolute Variant = "absolute"
)

// ParseVariant accepts the variant names and their one-letter codes r, g
// and a. An empty string selects the plain curve.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "r", "relative", string(VariantPlain):
		return VariantPlain, nil
	case "g", string(VariantGeneralized):
		return VariantGeneralized, nil
	case "a", string(VariantAbsolute):
		return VariantAbsolute, nil
	}
	return "", fmt.Errorf("%w: unknown lorenz variant %q (want r, g or a)", analytics.ErrInvalidOption, s)
}

const populationLabel = "Cumulative % of population"

func lorenz(s analytics.Sample, opts analytics.Options) (*Dataset, error) {
	variant, err := ParseVariant(opts.Variant)
	if err != nil {
		return nil, err
	}
	if err := analytics.RequireNonEmpty(s, KindLorenz); err != nil {
		return nil, err
	}

	y := s.Sorted()
	n := len(y)
	mu := y.Mean()
	d := &Dataset{
		Kind:       KindLorenz,
		XLabel:     populationLabel,
		Population: population(n),
		Variable:   make([]float64, n+1),
		Line:       make([]float64, n+1),
	}

	switch variant {
	case VariantAbsolute:
		d.Title = "Absolute Lorenz Curve"
		d.YLabel = "Cumulative deviation from the mean"
		acc := 0.0
		for i, v := range y {
			acc += v - mu
			d.Variable[i+1] = acc
		}

	default:
		total := y.Sum()
		if err := analytics.RequireNonZero(total, "total", KindLorenz); err != nil {
			return nil, err
		}
		scale := 1.0
		d.Title = "Lorenz Curve"
		d.YLabel = "Cumulative % of variable"
		if variant == VariantGeneralized {
			scale = mu
			d.Title = "Generalized Lorenz Curve"
			d.YLabel = "Scaled cumulative % of variable"
		}
		acc := 0.0
		for i, v := range y {
			acc += v
			d.Variable[i+1] = acc / total * scale
		}
		for i, q := range d.Population {
			d.Line[i] = q * scale
		}
	}
	return d, nil
}

// pen is Pen's Parade: the sorted sample over its median, with the
// medianized mean as reference line
func pen(s analytics.Sample, opts analytics.Options) (*Dataset, error) {
	if err := analytics.RequireNonEmpty(s, KindPen); err != nil {
		return nil, err
	}
	y := s.Sorted()
	n := len(y)
	me := y.Median()
	if err := analytics.RequireNonZero(me, "median", KindPen); err != nil {
		return nil, err
	}

	d := &Dataset{
		Kind:       KindPen,
		Title:      "Pen's Parade",
		XLabel:     populationLabel,
		YLabel:     "Medianized variable",
		Population: population(n),
		Variable:   make([]float64, n+1),
		Line:       constant(n+1, y.Mean()/me),
	}
	for i, v := range y {
		d.Variable[i+1] = v / me
	}
	if opts.Has(analytics.OptPovertyLine) {
		d.PovertyLine = constant(n+1, opts.PovertyLine/me)
	}
	return d, nil
}

// tip accumulates normalized poverty gaps (pline - y)/pline of the units
// below the poverty line, averaged over the whole population
func tip(s analytics.Sample, opts analytics.Options) (*Dataset, error) {
	if !opts.Has(analytics.OptPovertyLine) {
		return nil, fmt.Errorf("%w: %s requires pline", analytics.ErrMissingOption, KindTIP)
	}
	pline := opts.PovertyLine
	if math.IsNaN(pline) || pline < 0 {
		return nil, fmt.Errorf("%w: pline must be non-negative, found %g", analytics.ErrOutOfRange, pline)
	}
	if err := analytics.RequireNonEmpty(s, KindTIP); err != nil {
		return nil, err
	}

	y := s.Sorted()
	n := len(y)
	d := &Dataset{
		Kind:       KindTIP,
		Title:      "TIP Curve",
		XLabel:     populationLabel,
		YLabel:     "Cumulated poverty gaps",
		Population: population(n),
		Variable:   make([]float64, n+1),
	}
	if pline == 0 {
		return d, nil
	}

	acc := 0.0
	for i, v := range y {
		if v < pline {
			acc += (pline - v) / pline
		}
		d.Variable[i+1] = acc / float64(n)
	}
	return d, nil
}
