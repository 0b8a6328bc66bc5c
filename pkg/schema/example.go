package schema

// Placeholder values used when a schema gives no example, default or enum.
const (
	ExampleString   = "string"
	ExampleDateTime = "2024-01-01T00:00:00Z"
	ExampleDate     = "2024-01-01"
	ExampleEmail    = "user@example.com"
	ExampleURI      = "https://example.com"
)

// Example synthesizes a representative value from a schema with references
// already inlined. Values declared on the schema win over the type placeholder,
// in this order: example, examples[0], default, enum[0]. Composite schemas use
// their first alternative. Objects contain every declared property.
func Example(schema map[string]any) any {
	if v, ok := schema["example"]; ok {
		return v
	}

	if examples, ok := schema["examples"].([]any); ok && len(examples) > 0 {
		return examples[0]
	}

	if v, ok := schema["default"]; ok {
		return v
	}

	if enum, ok := schema["enum"].([]any); ok && len(enum) > 0 {
		return enum[0]
	}

	if v, ok := schema["const"]; ok {
		return v
	}

	for _, key := range []string{"allOf", "anyOf", "oneOf"} {
		if alternatives, ok := schema[key].([]any); ok && len(alternatives) > 0 {
			if first, ok := alternatives[0].(map[string]any); ok {
				return Example(first)
			}
		}
	}

	switch schemaType(schema) {
	case "object":
		return objectExample(schema)
	case "array":
		items, ok := schema["items"].(map[string]any)
		if !ok {
			return []any{}
		}

		return []any{Example(items)}
	case "string":
		return stringExample(schema)
	case "integer":
		return 0
	case "number":
		return 0.0
	case "boolean":
		return false
	default:
		if _, ok := schema["properties"]; ok {
			return objectExample(schema)
		}

		return nil
	}
}

func objectExample(schema map[string]any) map[string]any {
	properties, _ := schema["properties"].(map[string]any)

	example := make(map[string]any, len(properties))
	for name, property := range properties {
		if propertySchema, ok := property.(map[string]any); ok {
			example[name] = Example(propertySchema)
		}
	}

	return example
}

func stringExample(schema map[string]any) string {
	format, _ := schema["format"].(string)

	switch format {
	case "date-time":
		return ExampleDateTime
	case "date":
		return ExampleDate
	case "email":
		return ExampleEmail
	case "uri", "url":
		return ExampleURI
	default:
		return ExampleString
	}
}

// schemaType returns the declared type. For a list of types the first one
// other than "null" is used.
func schemaType(schema map[string]any) string {
	switch t := schema["type"].(type) {
	case string:
		return t
	case []any:
		for _, candidate := range t {
			if s, ok := candidate.(string); ok && s != "null" {
				return s
			}
		}
	}

	return ""
}
