package schema

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/xeipuuv/gojsonpointer"
	"github.com/xeipuuv/gojsonreference"
)

// Normalize converts a schema written as Go literals ([]string, nested typed
// maps, ints) into the generic shape produced by JSON decoding.
func Normalize(schema map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}

	var normalized map[string]any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}

	return normalized, nil
}

// InlineRefs returns a copy of schema where every local "$ref" is replaced by
// the value it points to. Only references inside the document ("#/...") are
// supported. The input is not modified.
func InlineRefs(schema map[string]any) (map[string]any, error) {
	root, err := Normalize(schema)
	if err != nil {
		return nil, err
	}

	r := &refResolver{root: root}

	inlined, err := r.resolve(root, nil)
	if err != nil {
		return nil, err
	}

	out, _ := inlined.(map[string]any)

	return out, nil
}

type refResolver struct {
	root map[string]any
}

// resolve walks node, expanding references. stack holds the references being
// expanded on the current path.
func (r *refResolver) resolve(node any, stack []string) (any, error) {
	switch n := node.(type) {
	case map[string]any:
		if ref, ok := n["$ref"].(string); ok {
			if slices.Contains(stack, ref) {
				return nil, fmt.Errorf("%w: %s", ErrCircularRef, ref)
			}

			target, err := r.lookup(ref)
			if err != nil {
				return nil, err
			}

			return r.resolve(target, append(stack, ref))
		}

		out := make(map[string]any, len(n))
		for key, value := range n {
			resolved, err := r.resolve(value, stack)
			if err != nil {
				return nil, err
			}

			out[key] = resolved
		}

		return out, nil
	case []any:
		out := make([]any, len(n))
		for i, value := range n {
			resolved, err := r.resolve(value, stack)
			if err != nil {
				return nil, err
			}

			out[i] = resolved
		}

		return out, nil
	default:
		return node, nil
	}
}

func (r *refResolver) lookup(ref string) (any, error) {
	reference, err := gojsonreference.NewJsonReference(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvableRef, ref, err)
	}

	if !reference.HasFragmentOnly {
		return nil, fmt.Errorf("%w: %s: only local references are supported", ErrUnresolvableRef, ref)
	}

	pointer, err := gojsonpointer.NewJsonPointer(reference.GetUrl().Fragment)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvableRef, ref, err)
	}

	target, _, err := pointer.Get(r.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvableRef, ref, err)
	}

	return target, nil
}
