package playbooks

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// Render writes document as YAML. Mapping keys are sorted, so rendering the
// same document twice gives identical output. Repeated values are written in
// full: anchors and aliases are never emitted.
func Render(document any) (string, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(document); err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}

	return buf.String(), nil
}
