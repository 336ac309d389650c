package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error code.
type ErrorCode string

// ErrorResponse represents an error response structure.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface for ErrorResponse.
func (e *ErrorResponse) Error() string {
	errorJSON, _ := json.Marshal(e)
	return string(errorJSON)
}

// Is reports whether target carries the same code, so that errors produced by
// WithDetails still match the sentinel they were derived from.
func (e *ErrorResponse) Is(target error) bool {
	t, ok := target.(*ErrorResponse)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetails returns a copy of the error with Details used as a format string.
func (e *ErrorResponse) WithDetails(args ...interface{}) *ErrorResponse {
	return &ErrorResponse{
		Code:    e.Code,
		Details: fmt.Sprintf(e.Details, args...),
	}
}

// CreateErrorResponseFromError creates an ErrorResponse from a generic error.
func CreateErrorResponseFromError(err error) error {
	if err == nil {
		return nil
	}
	if errResp, ok := err.(*ErrorResponse); ok {
		return errResp
	}
	return &ErrorResponse{
		Code:    "0",
		Details: err.Error(),
	}
}
