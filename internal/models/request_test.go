package models

import (
	"math"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestMeasureRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     MeasureRequest
		wantErr bool
	}{
		{
			name: "dataset column",
			req:  MeasureRequest{Family: "welfare", SampleRef: SampleRef{Dataset: "uniform", Column: "x"}},
		},
		{
			name: "inline values",
			req:  MeasureRequest{Family: "welfare", SampleRef: SampleRef{Values: []float64{1, 2}}},
		},
		{
			name: "empty inline sample",
			req:  MeasureRequest{Family: "concentration", SampleRef: SampleRef{Values: []float64{}}},
		},
		{
			name:    "missing family",
			req:     MeasureRequest{SampleRef: SampleRef{Values: []float64{1}}},
			wantErr: true,
		},
		{
			name:    "no sample",
			req:     MeasureRequest{Family: "welfare"},
			wantErr: true,
		},
		{
			name:    "both dataset and values",
			req:     MeasureRequest{Family: "welfare", SampleRef: SampleRef{Dataset: "uniform", Values: []float64{1}}},
			wantErr: true,
		},
		{
			name:    "column with inline values",
			req:     MeasureRequest{Family: "welfare", SampleRef: SampleRef{Column: "x", Values: []float64{1}}},
			wantErr: true,
		},
		{
			name:    "non finite value",
			req:     MeasureRequest{Family: "welfare", SampleRef: SampleRef{Values: []float64{1, math.Inf(1)}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				fiberErr, ok := err.(*fiber.Error)
				if !ok {
					t.Fatalf("expected *fiber.Error, got %T", err)
				}
				if fiberErr.Code != fiber.StatusBadRequest {
					t.Errorf("expected status 400, got %d", fiberErr.Code)
				}
			}
		})
	}
}

func TestSampleRef_Inline(t *testing.T) {
	if !(&SampleRef{Values: []float64{}}).Inline() {
		t.Error("expected an empty values slice to count as inline")
	}
	if (&SampleRef{Dataset: "uniform"}).Inline() {
		t.Error("expected a dataset reference not to be inline")
	}
}

func TestSurfaceRequest_Validate(t *testing.T) {
	if err := (&SurfaceRequest{Dataset: "uniform", Name: "mean"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (&SurfaceRequest{Name: "mean"}).Validate(); err == nil {
		t.Error("expected error for missing dataset")
	}
	if err := (&SurfaceRequest{Dataset: "uniform"}).Validate(); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestCurveRequest_Validate(t *testing.T) {
	if err := (&CurveRequest{Kind: "tip", SampleRef: SampleRef{Values: []float64{1}}}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (&CurveRequest{Kind: "tip"}).Validate(); err == nil {
		t.Error("expected error for missing sample")
	}
}
