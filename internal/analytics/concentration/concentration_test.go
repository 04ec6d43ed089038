package concentration

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

	// rosenbluth goes through the sorted-rank Gini and is checked to a tolerance
	tests := []struct {
		name  string
		eval  func() (float64, error)
		want  float64
		exact bool
	}{
		{name: "herfindahl normalized", eval: func() (float64, error) { return acc.Herfindahl() },
			want: 0.0011776319218515382, exact: true},
		{name: "herfindahl explicit normalized", eval: func() (float64, error) {
			return acc.Herfindahl(analytics.WithNormalized(true))
		}, want: 0.0011776319218515382, exact: true},
		{name: "herfindahl raw", eval: func() (float64, error) {
			return acc.Herfindahl(analytics.WithNormalized(false))
		}, want: 0.004507039815445367, exact: true},
		{name: "rosenbluth", eval: acc.Rosenbluth, want: 0.00506836225627098},
		{name: "concentration ratio k=20", eval: func() (float64, error) { return acc.ConcentrationRatio(20) },
			want: 0.12913322818634668, exact: true},
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

func TestDispatchShapesAgree(t *testing.T) {
	acc := New(uniformSample(), nil)

	byDefault, err := acc.Call("")
	require.NoError(t, err)
	byName, err := acc.Call(MethodHerfindahl)
	require.NoError(t, err)
	byMethod, err := acc.Herfindahl()
	require.NoError(t, err)
	assert.Equal(t, byName, byDefault)
	assert.Equal(t, byName, byMethod)

	named, err := acc.Call(MethodConcentrationRatio, analytics.WithK(20))
	require.NoError(t, err)
	typed, err := acc.ConcentrationRatio(20)
	require.NoError(t, err)
	assert.Equal(t, named, typed)

	_, err = acc.Call("foo")
	assert.ErrorIs(t, err, analytics.ErrUnknownMeasure)
}

func TestReplication(t *testing.T) {
	s := uniformSample()
	base := New(s, nil)
	tripled := New(s.Replicate(3), nil)

	// Raw shares and the Rosenbluth index shrink with n; the top-k share of
	// the replicated population is preserved when k grows with it.
	h, err := base.Herfindahl(analytics.WithNormalized(false))
	require.NoError(t, err)
	h3, err := tripled.Herfindahl(analytics.WithNormalized(false))
	require.NoError(t, err)
	assert.InEpsilon(t, h/3, h3, 1e-9)

	r, err := base.Rosenbluth()
	require.NoError(t, err)
	r3, err := tripled.Rosenbluth()
	require.NoError(t, err)
	assert.InEpsilon(t, r/3, r3, 1e-9)

	c, err := base.ConcentrationRatio(20)
	require.NoError(t, err)
	c3, err := tripled.ConcentrationRatio(60)
	require.NoError(t, err)
	assert.InEpsilon(t, c, c3, 1e-9)
}

func TestScaleInvariance(t *testing.T) {
	s := uniformSample()
	base := New(s, nil)
	scaled := New(s.Scale(7.5), nil)

	for _, method := range List() {
		t.Run(method, func(t *testing.T) {
			var opts []analytics.Option
			if method == MethodConcentrationRatio {
				opts = append(opts, analytics.WithK(10))
			}
			a, err := base.Call(method, opts...)
			require.NoError(t, err)
			b, err := scaled.Call(method, opts...)
			require.NoError(t, err)
			assert.InEpsilon(t, a, b, 1e-9)
		})
	}
}

func TestHerfindahl_EdgeCases(t *testing.T) {
	t.Run("empty sample is zero", func(t *testing.T) {
		for _, normalized := range []bool{true, false} {
			h, err := New(nil, nil).Herfindahl(analytics.WithNormalized(normalized))
			require.NoError(t, err)
			assert.Equal(t, 0.0, h)
		}
	})

	t.Run("single unit", func(t *testing.T) {
		h, err := New(analytics.Sample{4}, nil).Herfindahl()
		require.NoError(t, err)
		assert.Equal(t, 1.0, h)
	})

	t.Run("equal shares", func(t *testing.T) {
		acc := New(analytics.Sample{2, 2, 2, 2}, nil)
		h, err := acc.Herfindahl()
		require.NoError(t, err)
		assert.InDelta(t, 0, h, tolerance)
		h, err = acc.Herfindahl(analytics.WithNormalized(false))
		require.NoError(t, err)
		assert.InDelta(t, 0.25, h, tolerance)
	})

	t.Run("monopoly", func(t *testing.T) {
		h, err := New(analytics.Sample{0, 0, 10}, nil).Herfindahl()
		require.NoError(t, err)
		assert.InDelta(t, 1, h, tolerance)
	})

	t.Run("zero total", func(t *testing.T) {
		_, err := New(analytics.Sample{0, 0}, nil).Herfindahl()
		assert.ErrorIs(t, err, analytics.ErrDomain)
	})

	t.Run("rejects foreign option", func(t *testing.T) {
		_, err := New(analytics.Sample{1}, nil).Herfindahl(analytics.WithK(1))
		assert.ErrorIs(t, err, analytics.ErrInvalidOption)
	})
}

func TestRosenbluth_EdgeCases(t *testing.T) {
	r, err := New(analytics.Sample{3, 3, 3}, nil).Rosenbluth()
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0/3, r, tolerance)

	_, err = New(nil, nil).Rosenbluth()
	assert.ErrorIs(t, err, analytics.ErrEmptySample)
}

func TestConcentrationRatio_Bounds(t *testing.T) {
	s := uniformSample()
	acc := New(s, nil)

	tests := []struct {
		name    string
		k       int
		want    float64
		wantErr error
	}{
		{name: "k=0", k: 0, want: 0},
		{name: "k=n", k: s.Len(), want: 1},
		{name: "k=n+1", k: s.Len() + 1, wantErr: analytics.ErrOutOfRange},
		{name: "k=-1", k: -1, wantErr: analytics.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := acc.ConcentrationRatio(tt.k)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	_, err := acc.Call(MethodConcentrationRatio)
	assert.ErrorIs(t, err, analytics.ErrMissingOption)

	_, err = New(nil, nil).ConcentrationRatio(0)
	assert.ErrorIs(t, err, analytics.ErrEmptySample)
}

func TestConcentrationRatio_Monotone(t *testing.T) {
	acc := New(uniformSample(), nil)
	prev := 0.0
	for k := 1; k <= 300; k += 13 {
		got, err := acc.ConcentrationRatio(k)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev)
		assert.False(t, math.IsNaN(got))
		prev = got
	}
}

func TestList(t *testing.T) {
	assert.Equal(t, []string{MethodConcentrationRatio, MethodHerfindahl, MethodRosenbluth}, List())
	assert.Equal(t, Family, Registry().Family())
}

func TestPermutationInvariance(t *testing.T) {
	s := uniformSample()
	base := New(s, nil)
	shuffled := New(s.Permute(2024), nil)

	options := map[string][][]analytics.Option{
		MethodHerfindahl:         {nil, {analytics.WithNormalized(false)}},
		MethodConcentrationRatio: {{analytics.WithK(0)}, {analytics.WithK(20)}, {analytics.WithK(300)}},
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
				if want == 0 {
					assert.Equal(t, want, got)
					return
				}
				// totals are summed in input order
				assert.InEpsilon(t, want, got, tolerance)
			})
		}
	}
}
