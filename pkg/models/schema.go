package models

// SchemaTitle returns the "title" of a JSON schema, or "".
func SchemaTitle(schema map[string]any) string {
	title, _ := schema["title"].(string)

	return title
}

// SchemaRequired returns the "required" list of a JSON schema in declared
// order. It accepts both []string and the []any produced by JSON decoding.
func SchemaRequired(schema map[string]any) []string {
	switch required := schema["required"].(type) {
	case []string:
		return required
	case []any:
		fields := make([]string, 0, len(required))
		for _, r := range required {
			if s, ok := r.(string); ok {
				fields = append(fields, s)
			}
		}

		return fields
	default:
		return nil
	}
}
