package suirpc

import (
	"fmt"
)

type (
	// Error object for JSON-RPC 2.0 errors returned by a Sui node. It is the
	// protocol-level failure: the HTTP exchange succeeded, but the node
	// rejected the call.
	Error struct {
		Code    int64  `json:"code"`
		Message string `json:"message"`
		Data    string `json:"data,omitempty"`
	}

	// TransportError is returned when the HTTP layer fails: the connection
	// can't be established or the node answers with a non-success status.
	// StatusCode is zero when no HTTP response was received at all.
	TransportError struct {
		StatusCode int
		Err        error
	}

	// MissingFieldError is returned when an otherwise successful response
	// lacks a field the caller requires (a contract violation on the node's
	// side). It names the missing expectation rather than dumping the payload.
	MissingFieldError struct {
		Method string
		Field  string
	}
)

// NewError is an Error constructor that takes Error contents from its
// parameters.
func NewError(code int64, message string, data string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Data) == 0 {
		return fmt.Sprintf("%s (%d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s (%d) - %s", e.Message, e.Code, e.Data)
}

// NewTransportError wraps err into a TransportError with the given HTTP
// status (0 when the request never got a response).
func NewTransportError(statusCode int, err error) *TransportError {
	return &TransportError{
		StatusCode: statusCode,
		Err:        err,
	}
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewMissingFieldError creates an error for a response of the given method
// that lacks the named field.
func NewMissingFieldError(method string, field string) *MissingFieldError {
	return &MissingFieldError{
		Method: method,
		Field:  field,
	}
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s response lacks required field '%s'", e.Method, e.Field)
}
