// Package apperror provides structured error handling following RFC 7807 Problem Details.
// All business errors must use AppError for consistent API responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"
	CodeQuery    = "QUERY_ERROR"
	CodeTimeout  = "TIMEOUT_ERROR"

	// Validation errors (400)
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidInput = "INVALID_INPUT"

	// Subsystem degradation (503)
	CodeFilterOptions = "FILTER_OPTIONS_ERROR"

	// Host-environment warnings (200 with warning payload)
	CodeEnvironmentMismatch = "ENVIRONMENT_MISMATCH"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"
)

// AppError is the standard error type for the service.
// It implements error interface and provides structured details for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field errors, identifiers, etc.)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions for common errors ---

// NewValidation creates a validation error (400)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewQueryFailure wraps a rejected or failed query execution (502).
// Generation aborts on this error; the caller does not retry automatically.
func NewQueryFailure(err error) *AppError {
	return &AppError{
		Code:       CodeQuery,
		Message:    "Query execution failed",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewFilterOptionsUnavailable reports a degraded filter-option lookup (503).
// Isolated to the options subsystem: catalog generation stays available.
func NewFilterOptionsUnavailable(source string, err error) *AppError {
	return &AppError{
		Code:       CodeFilterOptions,
		Message:    "Filter options are temporarily unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
		Details:    map[string]any{"source": source},
		Err:        err,
	}
}

// NewEnvironmentMismatch warns about a host-only action invoked outside the host.
// Surfaced as a caller-visible warning, never a hard failure.
func NewEnvironmentMismatch(action string) *AppError {
	return &AppError{
		Code:       CodeEnvironmentMismatch,
		Message:    fmt.Sprintf("%s is only available inside the host environment", action),
		HTTPStatus: http.StatusOK,
		Details:    map[string]any{"action": action},
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsQueryFailure checks if error is CodeQuery
func IsQueryFailure(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeQuery
	}
	return false
}
