// Package errors provides custom error types for the Financogram API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// Field names the offending input for validation failures.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError carrying the same code, so that
// errors.Is(err, ErrValidation) matches every field-level validation error.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Field:      sentinel.Field,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Field:      sentinel.Field,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// NewFieldError creates a validation error naming the offending input field.
func NewFieldError(field, message string) *AppError {
	return &AppError{
		Code:       ErrValidation.Code,
		Message:    message,
		Field:      field,
		StatusCode: ErrValidation.StatusCode,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Validation failed", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Market data errors.
var (
	ErrFundNotFound  = &AppError{Code: "FUND_NOT_FOUND", Message: "No data found for this fund", StatusCode: http.StatusNotFound}
	ErrStockNotFound = &AppError{Code: "STOCK_NOT_FOUND", Message: "No data found for this symbol", StatusCode: http.StatusNotFound}
	ErrLookupFailure = &AppError{Code: "LOOKUP_FAILURE", Message: "Market data is temporarily unavailable", StatusCode: http.StatusBadGateway}
)

// Prediction errors.
var (
	ErrInsufficientHistory = &AppError{Code: "INSUFFICIENT_HISTORY", Message: "Not enough price history to make a prediction", StatusCode: http.StatusUnprocessableEntity}
)

// Assistant errors.
var (
	ErrAssistantUnavailable = &AppError{Code: "ASSISTANT_UNAVAILABLE", Message: "Chat assistant is not configured", StatusCode: http.StatusServiceUnavailable}
	ErrAssistantFailure     = &AppError{Code: "ASSISTANT_FAILURE", Message: "Chat assistant failed to respond", StatusCode: http.StatusBadGateway}
)
