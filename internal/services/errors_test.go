package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/apodego/apode/internal/analytics"
	"github.com/apodego/apode/internal/dataset"
)

func TestServiceError_Error(t *testing.T) {
	err := &ServiceError{
		Code:    CodeDomainError,
		Message: "theill: requires strictly positive values",
	}

	if err.Error() != "theill: requires strictly positive values" {
		t.Errorf("Expected message to be returned, got '%s'", err.Error())
	}
}

func TestNewServiceError(t *testing.T) {
	err := NewServiceError(CodeDatasetNotFound, "dataset not found")

	if err.Code != CodeDatasetNotFound {
		t.Errorf("Expected code '%s', got '%s'", CodeDatasetNotFound, err.Code)
	}
	if err.Details != nil {
		t.Errorf("Expected nil details, got %v", err.Details)
	}
}

func TestNewServiceErrorWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"dataset":   "incomes",
		"available": []string{"uniform"},
	}

	err := NewServiceErrorWithDetails(CodeDatasetNotFound, "dataset not found", details)

	if err.Details == nil {
		t.Fatal("Expected non-nil details")
	}
	if err.Details["dataset"] != "incomes" {
		t.Errorf("Expected dataset 'incomes', got '%v'", err.Details["dataset"])
	}
}

func TestServiceError_JSONMarshalOmitsEmptyDetails(t *testing.T) {
	jsonBytes, err := json.Marshal(NewServiceError(CodeEmptySample, "empty"))
	if err != nil {
		t.Fatalf("Failed to marshal ServiceError: %v", err)
	}
	if strings.Contains(string(jsonBytes), "details") {
		t.Error("Expected 'details' field to be omitted in JSON")
	}
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"unknown measure", fmt.Errorf("%w: %q", analytics.ErrUnknownMeasure, "foo"), CodeUnknownMeasure},
		{"unknown stat", fmt.Errorf("%w: kurtosis", dataset.ErrUnknownStat), CodeUnknownMeasure},
		{"unknown plot", fmt.Errorf("%w: pie", dataset.ErrUnknownPlot), CodeUnknownMeasure},
		{"out of range", fmt.Errorf("%w: k=400", analytics.ErrOutOfRange), CodeOutOfRange},
		{"empty sample", analytics.ErrEmptySample, CodeEmptySample},
		{"domain", fmt.Errorf("theilt: %w", analytics.ErrDomain), CodeDomainError},
		{"invalid option", analytics.ErrInvalidOption, CodeInvalidOption},
		{"missing option", analytics.ErrMissingOption, CodeInvalidOption},
		{"column", fmt.Errorf("%w: income", dataset.ErrColumnNotFound), CodeColumnNotFound},
		{"other", errors.New("disk on fire"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcErr := FromError(tt.err)
			if svcErr.Code != tt.code {
				t.Errorf("Expected code '%s', got '%s'", tt.code, svcErr.Code)
			}
			if svcErr.Message != tt.err.Error() {
				t.Errorf("Expected message '%s', got '%s'", tt.err.Error(), svcErr.Message)
			}
		})
	}
}

func TestFromError_PassesServiceErrorThrough(t *testing.T) {
	original := NewServiceError(CodeDatasetNotFound, "dataset not found")
	wrapped := fmt.Errorf("load: %w", original)

	if got := FromError(wrapped); got != original {
		t.Errorf("Expected the wrapped ServiceError, got %v", got)
	}
	if FromError(nil) != nil {
		t.Error("Expected nil for a nil error")
	}
}
