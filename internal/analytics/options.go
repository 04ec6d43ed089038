package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Option keys accepted across the measure families and curves
const (
	OptNormalized  = "normalized"
	OptK           = "k"
	OptAlpha       = "alpha"
	OptPovertyLine = "pline"
	OptVariant     = "variant"
)

// Options carries the keyword parameters of a single measure invocation.
// Only keys that were explicitly supplied are reported by Has and Keys.
type Options struct {
	Normalized  bool
	K           int
	Alpha       Alpha
	PovertyLine float64
	Variant     string

	present map[string]struct{}
}

// Option sets one keyword parameter
type Option func(*Options)

func (o *Options) mark(key string) {
	if o.present == nil {
		o.present = make(map[string]struct{})
	}
	o.present[key] = struct{}{}
}

// WithNormalized sets the normalized flag (herfindahl)
func WithNormalized(v bool) Option {
	return func(o *Options) {
		o.Normalized = v
		o.mark(OptNormalized)
	}
}

// WithK sets the number of top units (concentration_ratio)
func WithK(k int) Option {
	return func(o *Options) {
		o.K = k
		o.mark(OptK)
	}
}

// WithAlpha sets the aversion parameter (isoelastic, entropy, atkinson)
func WithAlpha(a Alpha) Option {
	return func(o *Options) {
		o.Alpha = a
		o.mark(OptAlpha)
	}
}

// WithPovertyLine sets the poverty line (tip, pen)
func WithPovertyLine(pline float64) Option {
	return func(o *Options) {
		o.PovertyLine = pline
		o.mark(OptPovertyLine)
	}
}

// WithVariant sets the curve variant (lorenz)
func WithVariant(v string) Option {
	return func(o *Options) {
		o.Variant = v
		o.mark(OptVariant)
	}
}

// NewOptions applies opts over zero-valued options
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Has reports whether key was explicitly supplied
func (o Options) Has(key string) bool {
	_, ok := o.present[key]
	return ok
}

// Keys returns the supplied keys in sorted order
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o.present))
	for k := range o.present {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the supplied options as a plain map, suitable for echoing
// back in responses
func (o Options) Values() map[string]any {
	out := make(map[string]any, len(o.present))
	for key := range o.present {
		switch key {
		case OptNormalized:
			out[key] = o.Normalized
		case OptK:
			out[key] = o.K
		case OptAlpha:
			out[key] = o.Alpha.String()
		case OptPovertyLine:
			out[key] = o.PovertyLine
		case OptVariant:
			out[key] = o.Variant
		}
	}
	return out
}

// ParseOptions converts loosely typed keyword parameters (query strings, JSON
// bodies, CLI flags) into options. Unknown keys and unparseable values fail
// with ErrInvalidOption.
func ParseOptions(raw map[string]any) ([]Option, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	opts := make([]Option, 0, len(raw))
	for _, key := range keys {
		opt, err := parseOption(strings.ToLower(key), raw[key])
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

func parseOption(key string, value any) (Option, error) {
	switch key {
	case OptNormalized:
		v, err := cast.ToBoolE(value)
		if err != nil {
			return nil, fmt.Errorf("%w: normalized: %v", ErrInvalidOption, err)
		}
		return WithNormalized(v), nil

	case OptK:
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, fmt.Errorf("%w: k: %v", ErrInvalidOption, err)
		}
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: k must be an integer, found %v", ErrInvalidOption, value)
		}
		return WithK(int(f)), nil

	case OptAlpha:
		a, err := toAlpha(value)
		if err != nil {
			return nil, err
		}
		return WithAlpha(a), nil

	case OptPovertyLine:
		v, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, fmt.Errorf("%w: pline: %v", ErrInvalidOption, err)
		}
		return WithPovertyLine(v), nil

	case OptVariant:
		v, err := cast.ToStringE(value)
		if err != nil {
			return nil, fmt.Errorf("%w: variant: %v", ErrInvalidOption, err)
		}
		return WithVariant(v), nil
	}
	return nil, fmt.Errorf("%w: unknown option %q", ErrInvalidOption, key)
}

func toAlpha(value any) (Alpha, error) {
	switch v := value.(type) {
	case Alpha:
		return v, nil
	case string:
		return ParseAlpha(v)
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return Alpha{}, fmt.Errorf("%w: alpha: %v", ErrInvalidOption, err)
	}
	return Finite(f), nil
}
