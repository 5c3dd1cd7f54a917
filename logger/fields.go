package logger

import "fmt"

// Common field names used across the toolkit.
const (
	FieldComponent = "component"
	FieldMethod    = "method"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldDuration  = "duration"
	FieldError     = "error"
	FieldRequestID = "request_id"
)

// Fields builds a field map from alternating key/value pairs.
// Keys must be strings; a trailing key without a value is ignored.
func Fields(kvs ...interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kvs[i])
		}
		fields[key] = kvs[i+1]
	}
	return fields
}
