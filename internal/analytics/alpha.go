package analytics

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Alpha is an inequality-aversion parameter. It is either a finite value or
// the explicit infinite case, which turns aversion-parameterized measures
// into their Rawlsian limit.
type Alpha struct {
	value    float64
	infinite bool
}

// Finite returns a finite alpha. +Inf is normalized to Infinite().
func Finite(v float64) Alpha {
	if math.IsInf(v, 1) {
		return Infinite()
	}
	return Alpha{value: v}
}

// Infinite returns the infinite alpha
func Infinite() Alpha {
	return Alpha{value: math.Inf(1), infinite: true}
}

// IsInfinite reports whether alpha is the infinite case
func (a Alpha) IsInfinite() bool {
	return a.infinite
}

// Value returns alpha as a float64 (+Inf for the infinite case)
func (a Alpha) Value() float64 {
	return a.value
}

// Validate checks alpha >= 0
func (a Alpha) Validate() error {
	if a.infinite {
		return nil
	}
	if math.IsNaN(a.value) || a.value < 0 {
		return fmt.Errorf("%w: alpha must be >= 0, found %g", ErrOutOfRange, a.value)
	}
	return nil
}

func (a Alpha) String() string {
	if a.infinite {
		return "inf"
	}
	return strconv.FormatFloat(a.value, 'g', -1, 64)
}

// ParseAlpha parses a textual alpha. "inf", "+inf", "infinity" and numeric
// literals that overflow float64 (such as 1e2000) yield Infinite().
func ParseAlpha(s string) (Alpha, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	switch text {
	case "inf", "+inf", "infinity", "+infinity":
		return Infinite(), nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && math.IsInf(v, 1) {
			return Infinite(), nil
		}
		return Alpha{}, fmt.Errorf("%w: alpha %q is not a number", ErrInvalidOption, s)
	}
	if math.IsNaN(v) {
		return Alpha{}, fmt.Errorf("%w: alpha %q is not a number", ErrInvalidOption, s)
	}
	return Finite(v), nil
}
