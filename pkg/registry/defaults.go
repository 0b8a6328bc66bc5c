package registry

import (
	"log/slog"

	"github.com/dukex/playbookgen/pkg/actions"
	"github.com/dukex/playbookgen/pkg/triggers"
)

// RegisterDefaults registers the built-in trigger fields and actions.
func (r *Registry) RegisterDefaults() error {
	for _, field := range triggers.Fields() {
		if err := r.RegisterTriggerField(field); err != nil {
			return err
		}
	}

	for _, action := range actions.All() {
		if err := r.RegisterAction(action); err != nil {
			return err
		}
	}

	r.logger.Info("Registered built-in components",
		"actions", len(r.actions),
		"triggers", len(r.triggerFields),
	)

	return nil
}

// NewDefaultRegistry returns a registry holding the built-in components.
func NewDefaultRegistry(log *slog.Logger) (*Registry, error) {
	reg := NewRegistry(log)
	if err := reg.RegisterDefaults(); err != nil {
		return nil, err
	}

	return reg, nil
}
