package concentration

import (
	"fmt"

	"github.com/apodego/apode/internal/analytics"
)

// herfindahl returns the sum of squared shares. The normalized form maps the
// index onto [0, 1] independently of n; a single-unit sample is maximally
// concentrated and yields 1.
func herfindahl(s analytics.Sample, opts analytics.Options) (float64, error) {
	n := s.Len()
	if n == 0 {
		return 0, nil
	}
	total := s.Sum()
	if err := analytics.RequireNonZero(total, "total", MethodHerfindahl); err != nil {
		return 0, err
	}

	h := 0.0
	for _, y := range s {
		share := y / total
		h += share * share
	}

	normalized := !opts.Has(analytics.OptNormalized) || opts.Normalized
	if !normalized || n == 1 {
		return h, nil
	}
	inv := 1 / float64(n)
	return (h - inv) / (1 - inv), nil
}

// rosenbluth returns 1 / (n (1 - G))
func rosenbluth(s analytics.Sample, _ analytics.Options) (float64, error) {
	g, err := analytics.Gini(s)
	if err != nil {
		return 0, err
	}
	return 1 / (float64(s.Len()) * (1 - g)), nil
}

// concentrationRatio returns the combined share of the k largest units
func concentrationRatio(s analytics.Sample, opts analytics.Options) (float64, error) {
	if !opts.Has(analytics.OptK) {
		return 0, fmt.Errorf("%w: %s requires k", analytics.ErrMissingOption, MethodConcentrationRatio)
	}
	if err := analytics.RequireNonEmpty(s, MethodConcentrationRatio); err != nil {
		return 0, err
	}
	n, k := s.Len(), opts.K
	if k < 0 || k > n {
		return 0, fmt.Errorf("%w: k must be in [0, %d], found %d", analytics.ErrOutOfRange, n, k)
	}
	total := s.Sum()
	if err := analytics.RequireNonZero(total, "total", MethodConcentrationRatio); err != nil {
		return 0, err
	}

	sorted := s.Sorted()
	top := make(analytics.Sample, k)
	for i := range top {
		top[i] = sorted[n-1-i]
	}
	return top.Sum() / total, nil
}
