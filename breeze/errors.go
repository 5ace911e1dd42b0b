package breeze

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid breeze configuration")
	// ErrInvalidArgument indicates a method was called with missing or bad arguments
	ErrInvalidArgument = errors.New("invalid argument")
)

// APIError represents a failed Breeze API exchange: a transport failure,
// an unexpected status code, an undecodable body, or an error payload.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Code       string // errorCode reported by the API, if any
	Err        error  // underlying transport or decode error, if any
}

// Error implements the error interface
func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("breeze API error: %s: %v", e.Endpoint, e.Err)
	case e.StatusCode != 0 && e.StatusCode != 200:
		return fmt.Sprintf("breeze API error: %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	case e.Code != "":
		return fmt.Sprintf("breeze API error: %s: %s (code %s)", e.Endpoint, e.Message, e.Code)
	default:
		return fmt.Sprintf("breeze API error: %s: %s", e.Endpoint, e.Message)
	}
}

// Unwrap exposes the underlying cause for errors.Is/As chains
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}
