// Package cmd provides common initialization functions for command-line applications.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/dukex/playbookgen/pkg/playbooks"
	"github.com/dukex/playbookgen/pkg/registry"
)

// Components bundles everything built from the registered actions and triggers.
type Components struct {
	Registry  *registry.Registry
	Generator *playbooks.ExamplesGenerator
	Validator *playbooks.Validator
}

// NewComponents registers the built-in actions and triggers and indexes them.
func NewComponents(logger *slog.Logger) (*Components, error) {
	reg, err := registry.NewDefaultRegistry(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to register components: %w", err)
	}

	generator := playbooks.NewExamplesGenerator(reg.TriggerFields())

	return &Components{
		Registry:  reg,
		Generator: generator,
		Validator: playbooks.NewValidator(reg, logger),
	}, nil
}
