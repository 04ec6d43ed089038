// Package analytics provides the common types shared by the distribution
// measure families (concentration, welfare, inequality) and the curve
// generators: the sample, measure options, registries and dispatch.
package analytics

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/aclements/go-moremath/stats"
)

// Sample is the numeric variable of interest, one value per population unit.
// Measures treat it as a multiset and never modify it.
type Sample []float64

// Len returns the number of population units
func (s Sample) Len() int {
	return len(s)
}

// Values returns the underlying values without copying
func (s Sample) Values() []float64 {
	return s
}

// Sum returns the total of the variable by pairwise summation
func (s Sample) Sum() float64 {
	return pairwiseSum(s)
}

// Mean returns Sum / n, or NaN for an empty sample
func (s Sample) Mean() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return pairwiseSum(s) / float64(len(s))
}

// pairwiseBlock is the length below which pairwiseSum stops splitting
const pairwiseBlock = 128

// pairwiseSum adds xs with eight interleaved accumulators per block and
// halves longer inputs on multiples of eight. Rounding matches the
// summation of the common array libraries, so reference values of sums and
// means reproduce exactly.
func pairwiseSum(xs []float64) float64 {
	n := len(xs)
	switch {
	case n < 8:
		sum := 0.0
		for _, x := range xs {
			sum += x
		}
		return sum
	case n <= pairwiseBlock:
		var r [8]float64
		copy(r[:], xs[:8])
		i := 8
		for ; i < n-n%8; i += 8 {
			for j := range r {
				r[j] += xs[i+j]
			}
		}
		sum := ((r[0] + r[1]) + (r[2] + r[3])) + ((r[4] + r[5]) + (r[6] + r[7]))
		for ; i < n; i++ {
			sum += xs[i]
		}
		return sum
	}
	half := n / 2
	half -= half % 8
	return pairwiseSum(xs[:half]) + pairwiseSum(xs[half:])
}

// Min returns the smallest value, or NaN for an empty sample
func (s Sample) Min() float64 {
	lo, _ := stats.Sample{Xs: s}.Bounds()
	return lo
}

// Max returns the largest value, or NaN for an empty sample
func (s Sample) Max() float64 {
	_, hi := stats.Sample{Xs: s}.Bounds()
	return hi
}

// Median returns the middle value (mean of the two middle values for an even
// number of units), or NaN for an empty sample
func (s Sample) Median() float64 {
	return stats.Sample{Xs: s}.Quantile(0.5)
}

// Sorted returns an ascending copy of the sample
func (s Sample) Sorted() Sample {
	sorted := stats.Sample{Xs: append([]float64(nil), s...)}
	sorted.Sort()
	return sorted.Xs
}

// Replicate returns the sample concatenated with itself k times
func (s Sample) Replicate(k int) Sample {
	out := make(Sample, 0, len(s)*k)
	for i := 0; i < k; i++ {
		out = append(out, s...)
	}
	return out
}

// Scale returns a copy of the sample multiplied by c
func (s Sample) Scale(c float64) Sample {
	out := make(Sample, len(s))
	for i, v := range s {
		out[i] = v * c
	}
	return out
}

// Permute returns a copy of the sample in an order drawn from seed. The
// same seed always yields the same order.
func (s Sample) Permute(seed uint64) Sample {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make(Sample, len(s))
	for i, j := range rng.Perm(len(s)) {
		out[i] = s[j]
	}
	return out
}

// RequireNonEmpty fails with ErrEmptySample when the sample has no units
func RequireNonEmpty(s Sample, measure string) error {
	if len(s) == 0 {
		return fmt.Errorf("%w: %s needs at least one observation", ErrEmptySample, measure)
	}
	return nil
}

// RequirePositive fails with ErrDomain when any value is <= 0 or NaN
func RequirePositive(s Sample, measure string) error {
	for i, v := range s {
		if !(v > 0) {
			return fmt.Errorf("%w: %s requires positive values, found %g at index %d", ErrDomain, measure, v, i)
		}
	}
	return nil
}

// RequireNonNegative fails with ErrDomain when any value is < 0 or NaN
func RequireNonNegative(s Sample, measure string) error {
	for i, v := range s {
		if !(v >= 0) {
			return fmt.Errorf("%w: %s requires non-negative values, found %g at index %d", ErrDomain, measure, v, i)
		}
	}
	return nil
}

// RequireNonZero fails with ErrDomain when a denominator such as the mean,
// median or total is zero or not finite
func RequireNonZero(v float64, what, measure string) error {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is undefined for %s = %g", ErrDomain, measure, what, v)
	}
	return nil
}

// MeanOf applies fn to every value and returns the mean of the results
func MeanOf(s Sample, fn func(float64) float64) float64 {
	mapped := make(Sample, len(s))
	for i, v := range s {
		mapped[i] = fn(v)
	}
	return mapped.Mean()
}

// Series is a generic x/y series produced by a dataset's own plotting surface
// (histograms, raw lines, empirical CDFs)
type Series struct {
	Name   string    `json:"name"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

// Len returns the number of points
func (s *Series) Len() int {
	return len(s.X)
}

// StatHost is the generic introspection surface of the dataset a scalar
// accessor was built from
type StatHost interface {
	Stat(name string) (float64, error)
}

// PlotHost is the generic plotting surface of the dataset a curve accessor
// was built from
type PlotHost interface {
	PlotData(name string) (*Series, error)
}
