package schema

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Validate checks document against schema. Violations are reported together in
// a *ValidationError.
func Validate(schema map[string]any, document any) error {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}

	return &ValidationError{Violations: violations}
}
