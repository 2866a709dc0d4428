// Package domainerrors provides coded errors shared across feature packages so
// transport code can map failures to HTTP statuses without inspecting internals.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error for transport mapping and logging.
type Code string

const (
	CodeInvalidInput     Code = "invalid_input"
	CodeValidationFailed Code = "validation_failed"
	CodeNotFound         Code = "not_found"
	CodeUnauthorized     Code = "unauthorized"
	CodeRateLimited      Code = "rate_limited"
	CodeInternal         Code = "internal_error"
)

// Error is a domain error with a stable code and a caller-safe message.
// The wrapped cause, if any, is for logs only and never leaves the process.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code and caller-safe message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and caller-safe message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// CodeOf extracts the domain code from err, defaulting to CodeInternal for
// anything that is not a domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the caller-safe message from err. Non-domain errors get a
// generic message so internal details never reach a response body.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "an unexpected error occurred"
}

// ToHTTPStatus maps a domain code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput, CodeValidationFailed:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
