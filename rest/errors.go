package rest

import (
	"errors"
	"fmt"
)

// APIError is the base runtime error for any unhandled API failure. It
// carries a human-readable description of the offending response or the
// underlying cause.
type APIError struct {
	// Message describes the failure. Transport-level failures carry
	// "RequestException"; undecodable success bodies carry
	// "Cannot decode response".
	Message string
	// Status is the HTTP status code when the error derives from a
	// response, 0 otherwise.
	Status int
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("rest: %s (HTTP %d)", e.Message, e.Status)
	}
	return "rest: " + e.Message
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// NotFoundError is the default mapping for HTTP 404 responses.
type NotFoundError struct {
	APIError
}

// Unwrap exposes the embedded APIError so errors.As matches *APIError
// through a *NotFoundError.
func (e *NotFoundError) Unwrap() error {
	return &e.APIError
}

// RouteError reports an invalid route declaration: a template placeholder
// without a corresponding declared parameter, a body parameter colliding
// with a placeholder, or arguments that cannot be bound against the
// declaration. Declaration-time route errors are fatal at startup.
type RouteError struct {
	// Template is the URL template of the offending route.
	Template string
	// Reason describes what is wrong.
	Reason string
}

// Error implements the error interface.
func (e *RouteError) Error() string {
	return fmt.Sprintf("rest: route %q: %s", e.Template, e.Reason)
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsAPIError checks if an error belongs to the APIError hierarchy.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsRouteError checks if an error is a RouteError.
func IsRouteError(err error) bool {
	var e *RouteError
	return errors.As(err, &e)
}

// AsAPIError extracts the *APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var e *APIError
	ok := errors.As(err, &e)
	return e, ok
}
