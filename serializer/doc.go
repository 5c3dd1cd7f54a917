// Package serializer defines the conversion contract between typed Go values
// and plain JSON-compatible structures, plus the default JSON implementation.
//
// The rest client uses a Serializer to dump request bodies and query argument
// values, and to load response bodies into declared result types. Structural
// mismatches (missing required field, wrong primitive kind) surface as *Error.
package serializer
