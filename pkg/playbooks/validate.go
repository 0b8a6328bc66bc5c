package playbooks

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dukex/playbookgen/pkg/models"
	"github.com/dukex/playbookgen/pkg/schema"
	"gopkg.in/yaml.v3"
)

// Catalog resolves the names used in playbook documents.
type Catalog interface {
	Action(name string) (*models.Action, error)
	TriggerField(name string) (*models.TriggerField, bool)
}

// Document is a playbook configuration file.
type Document struct {
	CustomPlaybooks []Playbook `yaml:"customPlaybooks"`
}

// Playbook binds triggers to actions. Every entry is a single-key mapping from
// a name to its parameters.
type Playbook struct {
	Name     string           `yaml:"name,omitempty"`
	Actions  []map[string]any `yaml:"actions"`
	Triggers []map[string]any `yaml:"triggers"`
}

// Validator checks playbook documents against the registered actions and
// triggers.
type Validator struct {
	catalog Catalog
	logger  *slog.Logger
}

func NewValidator(catalog Catalog, logger *slog.Logger) *Validator {
	return &Validator{
		catalog: catalog,
		logger:  logger,
	}
}

// Parse decodes a YAML playbook document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlaybook, err)
	}

	return &doc, nil
}

// Validate parses and checks data. All problems are reported together in a
// *PlaybookError.
func (v *Validator) Validate(data []byte) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}

	return v.ValidateDocument(doc)
}

func (v *Validator) ValidateDocument(doc *Document) error {
	var problems []string

	if len(doc.CustomPlaybooks) == 0 {
		problems = append(problems, "customPlaybooks: no playbooks defined")
	}

	for i, playbook := range doc.CustomPlaybooks {
		problems = append(problems, v.validatePlaybook(fmt.Sprintf("customPlaybooks[%d]", i), playbook)...)
	}

	v.logger.Debug("Validated playbooks", "playbooks", len(doc.CustomPlaybooks), "problems", len(problems))

	if len(problems) > 0 {
		return &PlaybookError{Problems: problems}
	}

	return nil
}

func (v *Validator) validatePlaybook(path string, playbook Playbook) []string {
	var problems []string

	if len(playbook.Actions) == 0 {
		problems = append(problems, path+".actions: at least one action is required")
	}

	if len(playbook.Triggers) == 0 {
		problems = append(problems, path+".triggers: at least one trigger is required")
	}

	fields := make([]*models.TriggerField, 0, len(playbook.Triggers))

	for i, entry := range playbook.Triggers {
		entryPath := fmt.Sprintf("%s.triggers[%d]", path, i)

		name, params, err := singleEntry(entry)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", entryPath, err))

			continue
		}

		field, ok := v.catalog.TriggerField(name)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: unknown trigger %s", entryPath, name))

			continue
		}

		fields = append(fields, field)

		if err := validateTrigger(field, params); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", entryPath, err))
		}
	}

	for i, entry := range playbook.Actions {
		entryPath := fmt.Sprintf("%s.actions[%d]", path, i)

		name, params, err := singleEntry(entry)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", entryPath, err))

			continue
		}

		for _, err := range v.validateAction(name, params, fields) {
			problems = append(problems, fmt.Sprintf("%s: %v", entryPath, err))
		}
	}

	return problems
}

func validateTrigger(field *models.TriggerField, params map[string]any) error {
	// a union field accepts params matching any of its variants
	var errs []error

	for _, variant := range field.Variants {
		err := validateVariantParams(variant, params)
		if err == nil {
			return nil
		}

		errs = append(errs, err)
	}

	return fmt.Errorf("trigger %s: %w", field.Name, errors.Join(errs...))
}

func validateVariantParams(variant *models.TriggerVariant, params map[string]any) error {
	if variant.ParamsSchema != nil {
		if err := schema.Validate(variant.ParamsSchema, params); err != nil {
			return err
		}
	}

	if variant.ValidateParams != nil {
		return variant.ValidateParams(params)
	}

	return nil
}

func (v *Validator) validateAction(name string, params map[string]any, fields []*models.TriggerField) []error {
	action, err := v.catalog.Action(name)
	if err != nil {
		return []error{err}
	}

	var errs []error

	switch {
	case action.HasParams():
		if err := schema.Validate(action.ParamsSchema, params); err != nil {
			errs = append(errs, fmt.Errorf("action %s: %w", name, err))
		}
	case len(params) > 0:
		errs = append(errs, fmt.Errorf("action %s takes no parameters", name))
	}

	for _, field := range fields {
		if !producesEvent(field, action.EventType) {
			errs = append(errs, fmt.Errorf("action %s does not support trigger %s (event %s)", name, field.Name, action.EventType.Name))
		}
	}

	return errs
}

// producesEvent reports whether any variant of field delivers event, or a
// subtype of it, to actions.
func producesEvent(field *models.TriggerField, event *models.EventType) bool {
	return slices.ContainsFunc(field.Variants, func(variant *models.TriggerVariant) bool {
		return variant != nil && variant.ExecutionEvent != nil && variant.ExecutionEvent.IsSubtypeOf(event)
	})
}

// singleEntry unpacks a {name: params} mapping. Missing params are treated as
// empty.
func singleEntry(entry map[string]any) (string, map[string]any, error) {
	if len(entry) != 1 {
		return "", nil, fmt.Errorf("expected a single-key mapping, got %d keys", len(entry))
	}

	for name, raw := range entry {
		if raw == nil {
			return name, map[string]any{}, nil
		}

		params, ok := raw.(map[string]any)
		if !ok {
			return name, nil, fmt.Errorf("%s: parameters must be a mapping, got %T", name, raw)
		}

		return name, params, nil
	}

	return "", nil, nil
}
