package models

import (
	"fmt"
	"net/http"
)

// ValidationError signals malformed local input, e.g. an ambiguous evaluator
// reference or an inverted timestamp range. It is raised before any request
// is sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf creates a new *ValidationError with a formatted message.
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// APIError wraps any non-2xx HTTP response. It carries the server's status
// code and message verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if err is an *APIError for a 404 response.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)

	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsValidation returns true if err is a *ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)

	return ok
}
