package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var messageSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"message": map[string]any{"type": "string"},
		"level":   map[string]any{"type": "string", "enum": []string{"debug", "info"}},
	},
	"required": []string{"message"},
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(messageSchema, map[string]any{"message": "hello", "level": "info"}))

	err := Validate(messageSchema, map[string]any{"level": "trace"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 2)
	assert.Contains(t, err.Error(), "message")
}

func TestValidate_SynthesizedExample(t *testing.T) {
	schema, err := InlineRefs(messageSchema)
	require.NoError(t, err)

	require.NoError(t, Validate(schema, Example(schema)))
}
