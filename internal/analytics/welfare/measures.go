package welfare

import (
	"fmt"
	"math"

	"github.com/apodego/apode/internal/analytics"
)

func utilitarian(s analytics.Sample, _ analytics.Options) (float64, error) {
	if err := analytics.RequireNonEmpty(s, MethodUtilitarian); err != nil {
		return 0, err
	}
	return s.Mean(), nil
}

func rawlsian(s analytics.Sample, _ analytics.Options) (float64, error) {
	if err := analytics.RequireNonEmpty(s, MethodRawlsian); err != nil {
		return 0, err
	}
	return s.Min(), nil
}

// isoelastic is mean(y^(1-a))/(1-a), mean(log y) at a = 1, the mean at
// a = 0 and the minimum as a tends to infinity
func isoelastic(s analytics.Sample, opts analytics.Options) (float64, error) {
	if !opts.Has(analytics.OptAlpha) {
		return 0, fmt.Errorf("%w: %s requires alpha", analytics.ErrMissingOption, MethodIsoelastic)
	}
	alpha := opts.Alpha
	if err := alpha.Validate(); err != nil {
		return 0, err
	}
	if err := analytics.RequireNonEmpty(s, MethodIsoelastic); err != nil {
		return 0, err
	}

	a := alpha.Value()
	switch {
	case alpha.IsInfinite():
		return s.Min(), nil
	case a == 0:
		return s.Mean(), nil
	case a == 1:
		if err := analytics.RequirePositive(s, MethodIsoelastic); err != nil {
			return 0, err
		}
		return analytics.MeanOf(s, math.Log), nil
	case a > 1:
		if err := analytics.RequirePositive(s, MethodIsoelastic); err != nil {
			return 0, err
		}
	default:
		if err := analytics.RequireNonNegative(s, MethodIsoelastic); err != nil {
			return 0, err
		}
	}

	exp := 1 - a
	return analytics.MeanOf(s, func(y float64) float64 {
		return math.Pow(y, exp)
	}) / exp, nil
}

// sen is mu (1 - G)
func sen(s analytics.Sample, _ analytics.Options) (float64, error) {
	g, err := analytics.Gini(s)
	if err != nil {
		return 0, err
	}
	return s.Mean() * (1 - g), nil
}

// theilL is mu exp(-L), L being the mean log deviation; it equals the
// geometric mean
func theilL(s analytics.Sample, _ analytics.Options) (float64, error) {
	mu, err := positiveMean(s, MethodTheilL)
	if err != nil {
		return 0, err
	}
	l := analytics.MeanOf(s, func(y float64) float64 {
		return math.Log(mu / y)
	})
	return mu * math.Exp(-l), nil
}

// theilT is mu exp(-T), T being Theil's entropy index
func theilT(s analytics.Sample, _ analytics.Options) (float64, error) {
	mu, err := positiveMean(s, MethodTheilT)
	if err != nil {
		return 0, err
	}
	t := analytics.MeanOf(s, func(y float64) float64 {
		r := y / mu
		return r * math.Log(r)
	})
	return mu * math.Exp(-t), nil
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
