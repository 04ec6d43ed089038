// Package services provides the business logic layer between handlers and the
// measure engines. Services resolve samples, dispatch measures and translate
// engine failures into coded errors.
package services

import (
	"errors"

	"github.com/apodego/apode/internal/analytics"
	"github.com/apodego/apode/internal/dataset"
)

// Error codes carried by ServiceError
const (
	CodeUnknownMeasure   = "UNKNOWN_MEASURE"
	CodeOutOfRange       = "OUT_OF_RANGE"
	CodeEmptySample      = "EMPTY_SAMPLE"
	CodeDomainError      = "DOMAIN_ERROR"
	CodeInvalidOption    = "INVALID_OPTION"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeDatasetNotFound  = "DATASET_NOT_FOUND"
	CodeColumnNotFound   = "COLUMN_NOT_FOUND"
	CodeDatasetLoadError = "DATASET_LOAD_FAILED"
	CodeInternal         = "INTERNAL_ERROR"
)

// ServiceError represents a service layer error
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewServiceError creates a new ServiceError
func NewServiceError(code, message string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
	}
}

// NewServiceErrorWithDetails creates a new ServiceError with details
func NewServiceErrorWithDetails(code, message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// FromError converts an engine or dataset error into a ServiceError. A
// ServiceError anywhere in the chain is returned as is.
func FromError(err error) *ServiceError {
	if err == nil {
		return nil
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return NewServiceError(codeOf(err), err.Error())
}

func codeOf(err error) string {
	switch {
	case errors.Is(err, analytics.ErrUnknownMeasure),
		errors.Is(err, dataset.ErrUnknownStat),
		errors.Is(err, dataset.ErrUnknownPlot):
		return CodeUnknownMeasure
	case errors.Is(err, analytics.ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, analytics.ErrEmptySample):
		return CodeEmptySample
	case errors.Is(err, analytics.ErrDomain):
		return CodeDomainError
	case errors.Is(err, analytics.ErrInvalidOption),
		errors.Is(err, analytics.ErrMissingOption):
		return CodeInvalidOption
	case errors.Is(err, dataset.ErrColumnNotFound):
		return CodeColumnNotFound
	}
	return CodeInternal
}
