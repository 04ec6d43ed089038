package inequality

import (
	"fmt"
	"math"

	"github.com/apodego/apode/internal/analytics"
)

func gini(s analytics.Sample, _ analytics.Options) (float64, error) {
	return analytics.Gini(s)
}

// entropy is the generalized entropy index GE(a). GE(0) is the mean log
// deviation and GE(1) Theil's T.
func entropy(s analytics.Sample, opts analytics.Options) (float64, error) {
	alpha := analytics.Finite(0)
	if opts.Has(analytics.OptAlpha) {
		alpha = opts.Alpha
	}
	if alpha.IsInfinite() {
		return 0, fmt.Errorf("%w: %s needs a finite alpha", analytics.ErrOutOfRange, MethodEntropy)
	}
	if math.IsNaN(alpha.Value()) {
		return 0, fmt.Errorf("%w: %s alpha is NaN", analytics.ErrOutOfRange, MethodEntropy)
	}
	mu, err := positiveMean(s, MethodEntropy)
	if err != nil {
		return 0, err
	}

	a := alpha.Value()
	switch a {
	case 0:
		return analytics.MeanOf(s, func(y float64) float64 {
			return math.Log(mu / y)
		}), nil
	case 1:
		return analytics.MeanOf(s, func(y float64) float64 {
			r := y / mu
			return r * math.Log(r)
		}), nil
	}
	return analytics.MeanOf(s, func(y float64) float64 {
		return math.Pow(y/mu, a) - 1
	}) / (a * (a - 1)), nil
}

// atkinson is 1 - ede/mu, ede being the equally distributed equivalent level
// for aversion a
func atkinson(s analytics.Sample, opts analytics.Options) (float64, error) {
	if !opts.Has(analytics.OptAlpha) {
		return 0, fmt.Errorf("%w: %s requires alpha", analytics.ErrMissingOption, MethodAtkinson)
	}
	alpha := opts.Alpha
	if err := alpha.Validate(); err != nil {
		return 0, err
	}
	if err := analytics.RequireNonEmpty(s, MethodAtkinson); err != nil {
		return 0, err
	}
	mu := s.Mean()
	if err := analytics.RequireNonZero(mu, "mean", MethodAtkinson); err != nil {
		return 0, err
	}

	a := alpha.Value()
	switch {
	case alpha.IsInfinite():
		return 1 - s.Min()/mu, nil
	case a == 1:
		if err := analytics.RequirePositive(s, MethodAtkinson); err != nil {
			return 0, err
		}
		geomean := math.Exp(analytics.MeanOf(s, math.Log))
		return 1 - geomean/mu, nil
	case a > 1:
		if err := analytics.RequirePositive(s, MethodAtkinson); err != nil {
			return 0, err
		}
	default:
		if err := analytics.RequireNonNegative(s, MethodAtkinson); err != nil {
			return 0, err
		}
	}

	exp := 1 - a
	m := analytics.MeanOf(s, func(y float64) float64 {
		return math.Pow(y/mu, exp)
	})
	return 1 - math.Pow(m, 1/exp), nil
}

// cv is the population standard deviation over the mean
func cv(s analytics.Sample, _ analytics.Options) (float64, error) {
	mu, err := nonZeroMean(s, MethodCV)
	if err != nil {
		return 0, err
	}
	variance := analytics.MeanOf(s, func(y float64) float64 {
		d := y - mu
		return d * d
	})
	return math.Sqrt(variance) / mu, nil
}

// rrange is the relative range (max - min) / mu
func rrange(s analytics.Sample, _ analytics.Options) (float64, error) {
	mu, err := nonZeroMean(s, MethodRRange)
	if err != nil {
		return 0, err
	}
	return (s.Max() - s.Min()) / mu, nil
}

// rad is the relative mean deviation sum|y - mu| / (2 n mu)
func rad(s analytics.Sample, _ analytics.Options) (float64, error) {
	mu, err := nonZeroMean(s, MethodRAD)
	if err != nil {
		return 0, err
	}
	dev := analytics.MeanOf(s, func(y float64) float64 {
		return math.Abs(y - mu)
	})
	return dev / (2 * mu), nil
}

func nonZeroMean(s analytics.Sample, measure string) (float64, error) {
	if err := analytics.RequireNonEmpty(s, measure); err != nil {
		return 0, err
	}
	mu := s.Mean()
	if err := analytics.RequireNonZero(mu, "mean", measure); err != nil {
		return 0, err
	}
	return mu, nil
}

func positiveMean(s analytics.Sample, measure string) (float64, error) {
	if err := analytics.RequireNonEmpty(s, measure); err != nil {
		return 0, err
	}
	if err := analytics.RequirePositive(s, measure); err != nil {
		return 0, err
	}
	return s.Mean(), nil
}
