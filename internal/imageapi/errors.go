package imageapi

import (
	"fmt"
)

// APIError is returned when the endpoint answers with a non-2xx status
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("image api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("image api: status %d: %s", e.StatusCode, e.Message)
}

// DecodeError is returned when a response body is not the expected JSON
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("image api: invalid response: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
