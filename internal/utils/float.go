package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ParseFloatList parses a comma-separated list of numbers such as
// "1, 2.5,3e2". Blank input yields an empty, non-nil slice.
func ParseFloatList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}

	parts := strings.Split(s, ",")
	result := make([]float64, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		v, err := cast.ToFloat64E(part)
		if part == "" || err != nil {
			return nil, fmt.Errorf("value %d: %q is not a number", i+1, part)
		}
		result = append(result, v)
	}
	return result, nil
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite reports whether every value of every slice is finite
func AllFinite(slices ...[]float64) bool {
	for _, xs := range slices {
		for _, v := range xs {
			if !IsFinite(v) {
				return false
			}
		}
	}
	return true
}

// ParseKeyValues splits "key=value" pairs into a map. Later pairs override
// earlier ones.
func ParseKeyValues(pairs []string) (map[string]any, error) {
	result := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		result[key] = strings.TrimSpace(value)
	}
	return result, nil
}
