// Package web provides the read-only HTTP API serving action documentation and
// example playbooks.
package web

import (
	"errors"

	"github.com/dukex/playbookgen/pkg/events"
	"github.com/dukex/playbookgen/pkg/models"
	"github.com/dukex/playbookgen/pkg/otelhelper"
	"github.com/dukex/playbookgen/pkg/playbooks"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/utils/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ActionCatalog lists the registered actions.
type ActionCatalog interface {
	Action(name string) (*models.Action, error)
	Actions() []*models.Action
}

type APIHandlers struct {
	catalog   ActionCatalog
	generator *playbooks.ExamplesGenerator
	validator *playbooks.Validator
	tracer    trace.Tracer
}

func NewAPIHandlers(
	catalog ActionCatalog,
	generator *playbooks.ExamplesGenerator,
	validator *playbooks.Validator,
	tracer trace.Tracer,
) *APIHandlers {
	return &APIHandlers{
		catalog:   catalog,
		generator: generator,
		validator: validator,
		tracer:    tracer,
	}
}

func (h *APIHandlers) GetActions(c fiber.Ctx) error {
	list := h.catalog.Actions()

	docs := make([]ActionDoc, 0, len(list))
	for _, action := range list {
		doc, err := h.actionDoc(action)
		if err != nil {
			return handleError(c, err)
		}

		docs = append(docs, doc)
	}

	return c.JSON(fiber.Map{
		"actions":     docs,
		"total_count": len(docs),
	})
}

func (h *APIHandlers) GetAction(c fiber.Ctx) error {
	action, err := h.catalog.Action(c.Params("name"))
	if err != nil {
		return handleError(c, err)
	}

	doc, err := h.actionDoc(action)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(doc)
}

// GetActionExample renders an example playbook for an action. The optional
// "trigger" query parameter picks the trigger used.
func (h *APIHandlers) GetActionExample(c fiber.Ctx) error {
	// span attributes outlive the request buffers fiber hands out
	name := utils.CopyString(c.Params("name"))
	trigger := utils.CopyString(c.Query("trigger"))

	_, span := otelhelper.StartSpan(c.Context(), h.tracer, "playbooks.generate_example",
		attribute.String(otelhelper.ActionNameKey, name),
		attribute.String(otelhelper.TriggerNameKey, trigger),
	)
	defer span.End()

	action, err := h.catalog.Action(name)
	if err != nil {
		otelhelper.SetError(span, err, errorKind(err))

		return handleError(c, err)
	}

	span.SetAttributes(attribute.String(otelhelper.EventTypeKey, action.EventType.Name))

	rendered, err := h.generator.GenerateExampleConfig(action, trigger, nil)
	if err != nil {
		otelhelper.SetError(span, err, errorKind(err))

		return handleError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/yaml")

	return c.SendString(rendered)
}

func (h *APIHandlers) GetEventTriggers(c fiber.Ctx) error {
	event, ok := events.ByName(c.Params("name"))
	if !ok {
		return notFound(c, "unknown event type "+c.Params("name"))
	}

	triggers, err := h.generator.GetPossibleTriggers(event)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"event_type": event.Name,
		"triggers":   triggers,
	})
}

// ValidatePlaybook checks the YAML playbook document sent as request body.
func (h *APIHandlers) ValidatePlaybook(c fiber.Ctx) error {
	err := h.validator.Validate(c.Body())
	if err == nil {
		return c.JSON(ValidationResult{Valid: true})
	}

	var playbookErr *playbooks.PlaybookError
	if errors.As(err, &playbookErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationResult{
			Valid:    false,
			Problems: playbookErr.Problems,
		})
	}

	if errors.Is(err, playbooks.ErrInvalidPlaybook) {
		return unprocessable(c, "invalid_playbook", err.Error())
	}

	return handleError(c, err)
}

func (h *APIHandlers) actionDoc(action *models.Action) (ActionDoc, error) {
	supported, err := h.generator.GetSupportedTriggers(action)
	if err != nil {
		return ActionDoc{}, err
	}

	return ActionDoc{
		Name:              action.Name,
		Description:       action.Description,
		EventType:         action.EventType.Name,
		SupportedTriggers: supported,
		ManualTriggerCmd:  h.generator.GetManualTriggerCmd(action),
		ParamsSchema:      action.ParamsSchema,
	}, nil
}
