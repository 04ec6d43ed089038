package analytics

import "errors"

var (
	// ErrUnknownMeasure is returned when a name resolves to no registered measure
	ErrUnknownMeasure = errors.New("measure not found")

	// ErrOutOfRange is returned for parameters outside their valid range
	ErrOutOfRange = errors.New("value out of range")

	// ErrEmptySample is returned by measures that are undefined without observations
	ErrEmptySample = errors.New("empty sample")

	// ErrDomain is returned when a formula is undefined for the sample
	// (log of non-positive values, zero mean or median)
	ErrDomain = errors.New("domain error")

	// ErrInvalidOption is returned for options a measure does not accept or
	// whose value cannot be parsed
	ErrInvalidOption = errors.New("invalid option")

	// ErrMissingOption is returned when a required option was not supplied
	ErrMissingOption = errors.New("missing option")
)
