package utils

import "time"

// HTTP Server Timeouts
const (
	// DefaultRequestTimeout bounds dataset loading and measure evaluation per request
	DefaultRequestTimeout = 30 * time.Second

	// ReadTimeout is the fiber read timeout
	ReadTimeout = 10 * time.Second

	// WriteTimeout is the fiber write timeout
	WriteTimeout = 30 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests on shutdown
	ShutdownTimeout = 10 * time.Second
)

// Request Limits
const (
	// MaxBodySize is the largest accepted request body (inline samples included)
	MaxBodySize = 16 * 1024 * 1024
)

// Fixture parameters of the synthetic uniform dataset
const (
	// FixtureSeed seeds the uniform generator
	FixtureSeed = 42

	// FixtureSize is the number of generated values
	FixtureSize = 300
)
