// Package schema resolves, synthesizes examples from and validates the JSON
// schemas describing action and trigger parameters.
package schema

import (
	"errors"
	"strings"
)

var (
	// ErrUnresolvableRef indicates a "$ref" that does not point inside the schema.
	ErrUnresolvableRef = errors.New("unresolvable schema reference")

	// ErrCircularRef indicates a "$ref" that, once expanded, refers back to itself.
	ErrCircularRef = errors.New("circular schema reference")

	// ErrInvalidDocument indicates a document that does not satisfy its schema.
	ErrInvalidDocument = errors.New("document does not match schema")
)

// ValidationError lists every violation found while validating a document.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation errors: " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDocument
}
