package transport

import (
	"errors"
	"fmt"
)

// ErrorCode classifies transport-level failures.
type ErrorCode int

const (
	// ErrCodeConnection indicates a connection failure (refused, DNS, reset).
	ErrCodeConnection ErrorCode = iota
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout
	// ErrCodeBuild indicates the request could not be constructed
	// (malformed URL, unencodable body).
	ErrCodeBuild
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConnection:
		return "connection"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeBuild:
		return "build"
	default:
		return "unknown"
	}
}

// Error is a transport-level failure. It is only produced when the exchange
// never yielded a usable HTTP response; status-code semantics belong to the
// caller.
type Error struct {
	// Code classifies the failure.
	Code ErrorCode
	// Message describes the failure.
	Message string
	// Retryable indicates whether the exchange can be retried.
	Retryable bool
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newConnectionError creates a connection error.
func newConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Retryable: true, Err: err}
}

// newTimeoutError creates a timeout error.
func newTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Retryable: true, Err: err}
}

// newBuildError creates a request-construction error.
func newBuildError(msg string, err error) *Error {
	return &Error{Code: ErrCodeBuild, Message: msg, Retryable: false, Err: err}
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}
