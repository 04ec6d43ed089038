package models

import (
	"math"

	"github.com/gofiber/fiber/v2"
)

// SampleRef names the sample a request evaluates: either a dataset column
// or inline values
type SampleRef struct {
	Dataset string    `json:"dataset,omitempty"`
	Column  string    `json:"column,omitempty"`
	Values  []float64 `json:"values,omitempty"`
}

// Inline reports whether the request carries its own values
func (r *SampleRef) Inline() bool {
	return r.Dataset == "" && r.Values != nil
}

// Validate validates the sample reference
func (r *SampleRef) Validate() error {
	if r.Dataset != "" && r.Values != nil {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "dataset and values are mutually exclusive",
		}
	}
	if r.Dataset == "" && r.Values == nil {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "either dataset or values is required",
		}
	}
	if r.Values != nil && r.Column != "" {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "column only applies to a dataset",
		}
	}
	for _, v := range r.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &fiber.Error{
				Code:    fiber.StatusBadRequest,
				Message: "values must be finite numbers",
			}
		}
	}
	return nil
}

// MeasureRequest asks for one scalar measure of a sample.
// An empty Method selects the configured default of the family.
type MeasureRequest struct {
	SampleRef
	Family  string         `json:"family"`
	Method  string         `json:"method"`
	Options map[string]any `json:"options,omitempty"`
}

// Validate validates the measure request
func (r *MeasureRequest) Validate() error {
	if r.Family == "" {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "family is required",
		}
	}
	return r.SampleRef.Validate()
}

// CurveRequest asks for the plot data of a distribution curve.
// An empty Kind selects the configured default curve. Downsampling thins
// the returned series to about Points points.
type CurveRequest struct {
	SampleRef
	Kind         string         `json:"kind"`
	Options      map[string]any `json:"options,omitempty"`
	Downsampling string         `json:"downsampling,omitempty"`
	Points       int            `json:"points,omitempty"`
}

// Validate validates the curve request
func (r *CurveRequest) Validate() error {
	if r.Points < 0 {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "points must be non-negative",
		}
	}
	return r.SampleRef.Validate()
}

// SurfaceRequest asks for a descriptive statistic or a generic plot of a
// dataset column
type SurfaceRequest struct {
	Dataset string `json:"dataset"`
	Column  string `json:"column"`
	Name    string `json:"name"`
}

// Validate validates the surface request
func (r *SurfaceRequest) Validate() error {
	if r.Dataset == "" {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "dataset is required",
		}
	}
	if r.Name == "" {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "name is required",
		}
	}
	return nil
}
