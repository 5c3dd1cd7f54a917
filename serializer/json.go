package serializer

import (
	"bytes"
	"encoding/json"
)

// JSON is the default Serializer backed by encoding/json. It honors json
// struct tags, so the wire names of fields follow the usual conventions.
//
// The zero value is ready to use.
type JSON struct {
	// DisallowUnknownFields makes Load fail when the JSON value carries
	// fields the target type does not declare.
	DisallowUnknownFields bool
}

var _ Serializer = (*JSON)(nil)

// Dump converts a typed value into its JSON-compatible form. Numbers come
// back as json.Number, so integer values round-trip without losing precision
// to a float64 intermediate.
func (s *JSON) Dump(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, &Error{Op: "dump", Err: err}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, &Error{Op: "dump", Err: err}
	}
	return out, nil
}

// Load fills out from a JSON-compatible value. out must be a non-nil pointer.
// Untyped targets (any, map[string]any) receive numbers as json.Number.
func (s *JSON) Load(data any, out any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return &Error{Op: "load", Err: err}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if s.DisallowUnknownFields {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(out); err != nil {
		return &Error{Op: "load", Err: err}
	}
	return nil
}
