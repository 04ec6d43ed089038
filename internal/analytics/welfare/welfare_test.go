package welfare

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apodego/apode/internal/analytics"
	"github.com/apodego/apode/internal/dataset"
)

const tolerance = 1e-12

func uniformSample() analytics.Sample {
	return dataset.Uniform(42, 300, 1)
}

func TestReferenceValues(t *testing.T) {
	acc := New(uniformSample(), nil)

	// log, pow and the Gini rank sums round differently per platform
	tests := []struct {
		name  string
		eval  func() (float64, error)
		want  float64
		exact bool
	}{
		{name: "utilitarian", eval: acc.Utilitarian, want: 0.4952045990934922, exact: true},
		{name: "rawlsian", eval: acc.Rawlsian, want: 0.005061583846218687, exact: true},
		{name: "isoelastic alpha=0", eval: func() (float64, error) {
			return acc.Isoelastic(analytics.Finite(0))
		}, want: 0.4952045990934922, exact: true},
		{name: "isoelastic alpha=1", eval: func() (float64, error) {
			return acc.Isoelastic(analytics.Finite(1))
		}, want: -1.0254557944163005},
		{name: "isoelastic alpha=10", eval: func() (float64, error) {
			return acc.Isoelastic(analytics.Finite(10))
		}, want: -2.579772844232791e17},
		{name: "isoelastic alpha=inf", eval: func() (float64, error) {
			return acc.Isoelastic(analytics.Infinite())
		}, want: 0.005061583846218687, exact: true},
		{name: "sen", eval: acc.Sen, want: 0.32568350751486885},
		{name: "theill", eval: acc.TheilL, want: 0.35863296524449223},
		{name: "theilt", eval: acc.TheilT, want: 0.4036406524522584},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.eval()
			require.NoError(t, err)
			if tt.exact {
				assert.Equal(t, tt.want, got)
				return
			}
			assert.InEpsilon(t, tt.want, got, tolerance)
		})
	}
}

func TestIsoelastic_Limits(t *testing.T) {
	acc := New(uniformSample(), nil)

	utilitarian, err := acc.Utilitarian()
	require.NoError(t, err)
	atZero, err := acc.Isoelastic(analytics.Finite(0))
	require.NoError(t, err)
	assert.Equal(t, utilitarian, atZero)

	rawlsian, err := acc.Rawlsian()
	require.NoError(t, err)
	for _, text := range []string{"inf", "1e2000"} {
		alpha, err := analytics.ParseAlpha(text)
		require.NoError(t, err)
		got, err := acc.Isoelastic(alpha)
		require.NoError(t, err)
		assert.Equal(t, rawlsian, got, text)
	}

	got, err := acc.Isoelastic(analytics.Finite(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, rawlsian, got)
}

func TestIsoelastic_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sample  analytics.Sample
		opts    []analytics.Option
		wantErr error
	}{
		{"missing alpha", analytics.Sample{1, 2}, nil, analytics.ErrMissingOption},
		{"negative alpha", analytics.Sample{1, 2}, []analytics.Option{analytics.WithAlpha(analytics.Finite(-0.5))}, analytics.ErrOutOfRange},
		{"empty sample", nil, []analytics.Option{analytics.WithAlpha(analytics.Finite(2))}, analytics.ErrEmptySample},
		{"log of zero", analytics.Sample{0, 1}, []analytics.Option{analytics.WithAlpha(analytics.Finite(1))}, analytics.ErrDomain},
		{"power of zero", analytics.Sample{0, 1}, []analytics.Option{analytics.WithAlpha(analytics.Finite(3))}, analytics.ErrDomain},
		{"negative value", analytics.Sample{-1, 1}, []analytics.Option{analytics.WithAlpha(analytics.Finite(0.5))}, analytics.ErrDomain},
		{"foreign option", analytics.Sample{1}, []analytics.Option{analytics.WithAlpha(analytics.Finite(1)), analytics.WithK(2)}, analytics.ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.sample, nil).Call(MethodIsoelastic, tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// zero is fine below unit aversion
	got, err := New(analytics.Sample{0, 4}, nil).Isoelastic(analytics.Finite(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, tolerance)
}

func TestEmptySample(t *testing.T) {
	acc := New(nil, nil)
	for _, method := range List() {
		t.Run(method, func(t *testing.T) {
			var opts []analytics.Option
			if method == MethodIsoelastic {
				opts = append(opts, analytics.WithAlpha(analytics.Finite(2)))
			}
			_, err := acc.Call(method, opts...)
			assert.ErrorIs(t, err, analytics.ErrEmptySample)
		})
	}
}

func TestNonPositiveDomain(t *testing.T) {
	acc := New(analytics.Sample{0, 1, 2}, nil)
	for _, method := range []string{MethodTheilL, MethodTheilT} {
		_, err := acc.Call(method)
		assert.ErrorIs(t, err, analytics.ErrDomain, method)
	}
}

// Welfare is homogeneous of degree one for the mean-based measures and the
// order statistic; replicating the population leaves every measure as is.
func TestHomogeneityAndReplication(t *testing.T) {
	s := uniformSample()
	base := New(s, nil)
	scaled := New(s.Scale(3), nil)
	replicated := New(s.Replicate(4), nil)

	for _, method := range List() {
		if method == MethodIsoelastic {
			continue
		}
		t.Run(method, func(t *testing.T) {
			a, err := base.Call(method)
			require.NoError(t, err)
			b, err := scaled.Call(method)
			require.NoError(t, err)
			assert.InEpsilon(t, 3*a, b, 1e-9)

			c, err := replicated.Call(method)
			require.NoError(t, err)
			assert.InEpsilon(t, a, c, 1e-9)
		})
	}

	for _, alpha := range []float64{0, 0.5, 1, 2} {
		a, err := base.Isoelastic(analytics.Finite(alpha))
		require.NoError(t, err)
		c, err := replicated.Isoelastic(analytics.Finite(alpha))
		require.NoError(t, err)
		assert.InEpsilon(t, a, c, 1e-9)
	}
}

func TestOrdering(t *testing.T) {
	acc := New(uniformSample(), nil)

	rawlsian, _ := acc.Rawlsian()
	theilL, _ := acc.TheilL()
	sen, _ := acc.Sen()
	utilitarian, _ := acc.Utilitarian()

	// min <= geometric mean, and both Sen and Theil-L stay below the mean
	assert.LessOrEqual(t, rawlsian, theilL)
	assert.Less(t, theilL, utilitarian)
	assert.Less(t, sen, utilitarian)
}

func TestEqualSample(t *testing.T) {
	acc := New(analytics.Sample{2, 2, 2, 2}, nil)
	for _, method := range List() {
		if method == MethodIsoelastic {
			continue
		}
		got, err := acc.Call(method)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, got, tolerance, method)
	}
}

func TestList(t *testing.T) {
	assert.Equal(t, []string{
		MethodIsoelastic, MethodRawlsian, MethodSen, MethodTheilL, MethodTheilT, MethodUtilitarian,
	}, List())

	v, err := New(analytics.Sample{1, 3}, nil).Call("")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestPermutationInvariance(t *testing.T) {
	s := uniformSample()
	base := New(s, nil)
	shuffled := New(s.Permute(2024), nil)

	alpha := func(a analytics.Alpha) []analytics.Option { return []analytics.Option{analytics.WithAlpha(a)} }
	options := map[string][][]analytics.Option{
		MethodIsoelastic: {
			alpha(analytics.Finite(0)),
			alpha(analytics.Finite(0.5)),
			alpha(analytics.Finite(1)),
			alpha(analytics.Finite(10)),
			alpha(analytics.Infinite()),
		},
	}

	for _, method := range List() {
		cases, ok := options[method]
		if !ok {
			cases = [][]analytics.Option{nil}
		}
		for i, opts := range cases {
			t.Run(fmt.Sprintf("%s/%d", method, i), func(t *testing.T) {
				want, err := base.Call(method, opts...)
				require.NoError(t, err)
				got, err := shuffled.Call(method, opts...)
				require.NoError(t, err)

				orderStatistic := method == MethodRawlsian ||
					(method == MethodIsoelastic && analytics.NewOptions(opts...).Alpha.IsInfinite())
				if orderStatistic {
					assert.Equal(t, want, got)
					return
				}
				assert.InEpsilon(t, want, got, tolerance)
			})
		}
	}
}
