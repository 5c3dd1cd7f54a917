// Package validation validates structs via `validate` tags using
// go-playground/validator, producing readable per-field messages.
package validation
