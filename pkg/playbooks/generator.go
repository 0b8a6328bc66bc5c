package playbooks

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dukex/playbookgen/pkg/models"
	"github.com/dukex/playbookgen/pkg/schema"
)

const (
	// AnyTriggerMarker is listed as the supported trigger of generic actions.
	AnyTriggerMarker = "any trigger"

	// GenericExampleTrigger is suggested for generic actions.
	// TODO: confirm with the platform owners why generic actions default to a
	// pod trigger rather than the first registered one.
	GenericExampleTrigger = "on_pod_create"

	manualTriggerCmd = "robusta playbooks trigger"
	attributesSuffix = "Attributes"
)

// ExamplesGenerator maps execution events to the triggers producing them and
// builds example playbook configuration. It is read-only once built and safe
// for concurrent use.
type ExamplesGenerator struct {
	eventsToTriggers map[*models.EventType][]*models.TriggerVariant
	triggersToYAML   map[*models.TriggerVariant]string
}

// NewExamplesGenerator indexes every variant of fields under the event type it
// produces and under each ancestor of that type. Variants without an execution
// event are skipped; registry.Registry rejects them at registration.
func NewExamplesGenerator(fields []*models.TriggerField) *ExamplesGenerator {
	g := &ExamplesGenerator{
		eventsToTriggers: make(map[*models.EventType][]*models.TriggerVariant),
		triggersToYAML:   make(map[*models.TriggerVariant]string),
	}

	for _, field := range fields {
		for _, variant := range field.Variants {
			if variant == nil || variant.ExecutionEvent == nil {
				continue
			}

			g.triggersToYAML[variant] = field.Name

			event := variant.ExecutionEvent
			for _, e := range append([]*models.EventType{event}, event.Ancestors()...) {
				if !slices.Contains(g.eventsToTriggers[e], variant) {
					g.eventsToTriggers[e] = append(g.eventsToTriggers[e], variant)
				}
			}
		}
	}

	return g
}

// GetPossibleTriggers returns the identifiers of the triggers producing event,
// in registration order. The list may hold an identifier more than once when
// several variants of a field produce the event.
func (g *ExamplesGenerator) GetPossibleTriggers(event *models.EventType) ([]string, error) {
	if event == nil {
		return nil, fmt.Errorf("%w: no event type given", ErrNoKnownTrigger)
	}

	if event.IsGeneric() {
		return []string{GenericExampleTrigger}, nil
	}

	variants, ok := g.eventsToTriggers[event]
	if !ok {
		return nil, fmt.Errorf("%w: don't know how to generate an example trigger for %s", ErrNoKnownTrigger, event.Name)
	}

	identifiers := make([]string, 0, len(variants))
	for _, v := range variants {
		identifiers = append(identifiers, g.triggersToYAML[v])
	}

	return identifiers, nil
}

// GetSupportedTriggers returns the sorted, distinct identifiers of the
// triggers an action accepts.
func (g *ExamplesGenerator) GetSupportedTriggers(action *models.Action) ([]string, error) {
	if action.EventType.IsGeneric() {
		return []string{AnyTriggerMarker}, nil
	}

	all, err := g.GetPossibleTriggers(action.EventType)
	if err != nil {
		return nil, err
	}

	supported := slices.Clone(all)
	slices.Sort(supported)

	return slices.Compact(supported), nil
}

// GetManualTriggerCmd returns a CLI hint for running action by hand, with one
// placeholder per required field. Actions whose event cannot be built from
// parameters have no hint and get "".
func (g *ExamplesGenerator) GetManualTriggerCmd(action *models.Action) string {
	paramPlaceholders := make([]string, 0)
	for _, field := range action.RequiredParams() {
		paramPlaceholders = append(paramPlaceholders, field+"="+strings.ToUpper(field))
	}

	parts := []string{manualTriggerCmd, action.Name}

	if action.EventType.IsGeneric() {
		return strings.Join(append(parts, paramPlaceholders...), " ")
	}

	if action.FromParams == nil {
		return ""
	}

	kind := strings.ToUpper(strings.ReplaceAll(models.SchemaTitle(action.FromParams), attributesSuffix, ""))
	for _, field := range models.SchemaRequired(action.FromParams) {
		parts = append(parts, fmt.Sprintf("%s=%s_%s", field, kind, strings.ToUpper(field)))
	}

	return strings.Join(append(parts, paramPlaceholders...), " ")
}

// Example assembles the example document of action. suggestedTrigger wins over
// the first possible trigger when not empty. Nil triggerParams are rendered as
// an empty mapping.
func (g *ExamplesGenerator) Example(
	action *models.Action,
	suggestedTrigger string,
	triggerParams map[string]any,
) (map[string]any, error) {
	trigger := suggestedTrigger
	if trigger == "" {
		possible, err := g.GetPossibleTriggers(action.EventType)
		if err != nil {
			return nil, err
		}

		trigger = possible[0]
	}

	if triggerParams == nil {
		triggerParams = map[string]any{}
	}

	var actionParams any = map[string]any{}

	if action.HasParams() {
		// the synthesizer cannot follow references, so they are expanded first
		resolved, err := schema.InlineRefs(action.ParamsSchema)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve params schema of %s: %w", action.Name, err)
		}

		actionParams = schema.Example(resolved)
	}

	return map[string]any{
		"customPlaybooks": []any{
			map[string]any{
				"actions":  []any{map[string]any{action.Name: actionParams}},
				"triggers": []any{map[string]any{trigger: triggerParams}},
			},
		},
	}, nil
}

// GenerateExampleConfig renders the example document of action as YAML.
func (g *ExamplesGenerator) GenerateExampleConfig(
	action *models.Action,
	suggestedTrigger string,
	triggerParams map[string]any,
) (string, error) {
	example, err := g.Example(action, suggestedTrigger, triggerParams)
	if err != nil {
		return "", err
	}

	return Render(example)
}
