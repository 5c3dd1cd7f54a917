package serializer

import (
	"errors"
	"fmt"
)

// Serializer converts between typed values and JSON-compatible structures.
//
// Dump turns a typed value into a plain JSON-compatible value (map[string]any,
// []any, string, json.Number, bool, nil). Load fills out (a non-nil pointer)
// from a JSON-compatible value. Both return *Error on structural mismatch.
type Serializer interface {
	Dump(v any) (any, error)
	Load(data any, out any) error
}

// Error is a serialization failure: a value could not be converted to or from
// its JSON shape.
type Error struct {
	// Op is the failing operation, "dump" or "load".
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("serializer: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsSerialization checks if an error is a serialization error.
func IsSerialization(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
