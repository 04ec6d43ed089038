package models

import (
	"github.com/apodego/apode/internal/analytics"
	"github.com/apodego/apode/internal/analytics/curve"
)

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// FamilyInfo describes one measure family
type FamilyInfo struct {
	Default string   `json:"default"`
	Methods []string `json:"methods"`
}

// CatalogResponse lists every measure family and curve kind
type CatalogResponse struct {
	Families map[string]FamilyInfo `json:"families"`
	Stats    []string              `json:"stats"`
	Plots    []string              `json:"plots"`
}

// MeasureResponse represents a computed scalar measure
type MeasureResponse struct {
	Family  string         `json:"family"`
	Method  string         `json:"method"`
	Dataset string         `json:"dataset,omitempty"`
	Column  string         `json:"column,omitempty"`
	N       int            `json:"n"`
	Value   float64        `json:"value"`
	Options map[string]any `json:"options,omitempty"`
}

// CurveResponse represents the plot data of a distribution curve
type CurveResponse struct {
	Dataset string         `json:"dataset,omitempty"`
	Column  string         `json:"column,omitempty"`
	N       int            `json:"n"`
	Options map[string]any `json:"options,omitempty"`
	Curve   *curve.Dataset `json:"curve"`

	// Downsampling is set when the curve was thinned
	Downsampling string `json:"downsampling,omitempty"`
	// Points is the length of the curve before thinning
	Points int `json:"points,omitempty"`
}

// DatasetInfo describes a dataset file
type DatasetInfo struct {
	Name       string   `json:"name"`
	File       string   `json:"file"`
	Compressed bool     `json:"compressed"`
	Size       int64    `json:"size"`
	Columns    []string `json:"columns,omitempty"`
	Rows       int      `json:"rows,omitempty"`
}

// DatasetListResponse represents list datasets response
type DatasetListResponse struct {
	Datasets []DatasetInfo `json:"datasets"`
}

// DescribeResponse holds every descriptive statistic of every column
type DescribeResponse struct {
	Dataset string                        `json:"dataset"`
	Rows    int                           `json:"rows"`
	Columns map[string]map[string]float64 `json:"columns"`
}

// StatResponse represents one descriptive statistic of a column
type StatResponse struct {
	Dataset string  `json:"dataset"`
	Column  string  `json:"column"`
	Stat    string  `json:"stat"`
	Value   float64 `json:"value"`
}

// PlotResponse represents a generic plot of a column
type PlotResponse struct {
	Dataset string            `json:"dataset"`
	Column  string            `json:"column"`
	Plot    string            `json:"plot"`
	Series  *analytics.Series `json:"series"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
