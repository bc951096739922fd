// Package errors provides standardized domain errors that express failure
// cause rather than infrastructure details. These errors are produced by the
// gateway and use cases so callers can branch on cause with errors.Is/As.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors shared across all SDK components.
var (
	// ErrInvalidInput indicates the input data is invalid or fails validation
	// before any network call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransport indicates a connectivity or timeout failure reported by the
	// network gateway before a backend response was received.
	ErrTransport = errors.New("transport failure")

	// ErrAPI indicates a structured error response from the backend.
	// Use errors.As with *APIError to inspect the code and message.
	ErrAPI = errors.New("api error")

	// ErrDecode indicates the backend response shape did not match the
	// expected wire contract.
	ErrDecode = errors.New("decode failure")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")
)

// APIError is a structured error response declared by the backend.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Code is the backend-declared machine-readable error code.
	Code string
	// Message is the backend-declared human-readable description.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status=%d, code=%s): %s", e.StatusCode, e.Code, e.Message)
}

// Unwrap links APIError into the ErrAPI chain so errors.Is(err, ErrAPI) holds.
func (e *APIError) Unwrap() error {
	return ErrAPI
}

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context while preserving the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
