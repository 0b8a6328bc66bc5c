// Package registry holds the actions and trigger fields known to the platform.
package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/dukex/playbookgen/pkg/models"
	"github.com/go-playground/validator/v10"
)

// Registry is filled once at startup and read-only afterwards.
type Registry struct {
	logger        *slog.Logger
	validate      *validator.Validate
	actions       map[string]*models.Action
	triggerFields []*models.TriggerField
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		logger:   log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		actions:  make(map[string]*models.Action),
	}
}

func (r *Registry) RegisterAction(action *models.Action) error {
	if err := r.validate.Struct(action); err != nil {
		return fmt.Errorf("%w: action %q: %w", ErrInvalidComponent, action.Name, err)
	}

	if _, exists := r.actions[action.Name]; exists {
		return fmt.Errorf("%w: %s", ErrActionAlreadyRegistered, action.Name)
	}

	r.actions[action.Name] = action
	r.logger.Debug("Registered action", "action", action.Name, "event_type", action.EventType.Name)

	return nil
}

func (r *Registry) RegisterTriggerField(field *models.TriggerField) error {
	if err := r.validate.Struct(field); err != nil {
		return fmt.Errorf("%w: trigger %q: %w", ErrInvalidComponent, field.Name, err)
	}

	if _, exists := r.TriggerField(field.Name); exists {
		return fmt.Errorf("%w: %s", ErrTriggerAlreadyRegistered, field.Name)
	}

	r.triggerFields = append(r.triggerFields, field)
	r.logger.Debug("Registered trigger", "trigger", field.Name, "variants", len(field.Variants))

	return nil
}

// Action returns the action registered under name.
func (r *Registry) Action(name string) (*models.Action, error) {
	action, ok := r.actions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActionNotFound, name)
	}

	return action, nil
}

// Actions returns every registered action sorted by name.
func (r *Registry) Actions() []*models.Action {
	list := make([]*models.Action, 0, len(r.actions))
	for _, action := range r.actions {
		list = append(list, action)
	}

	slices.SortFunc(list, func(a, b *models.Action) int {
		return strings.Compare(a.Name, b.Name)
	})

	return list
}

// TriggerFields returns the trigger fields in registration order.
func (r *Registry) TriggerFields() []*models.TriggerField {
	return slices.Clone(r.triggerFields)
}

func (r *Registry) TriggerField(name string) (*models.TriggerField, bool) {
	for _, field := range r.triggerFields {
		if field.Name == name {
			return field, true
		}
	}

	return nil, false
}
