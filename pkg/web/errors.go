package web

import (
	"github.com/dukex/playbookgen/pkg/playbooks"
	"github.com/dukex/playbookgen/pkg/registry"
	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"
)

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func unprocessable(c fiber.Ctx, problemType string, detail string) error {
	problem := problems.NewStatusProblem(422).
		WithInstance(c.Path()).
		WithType(problemType).
		WithDetail(detail)

	return c.Status(fiber.StatusUnprocessableEntity).JSON(problem)
}

// errorKind names the problem type an error is reported as.
func errorKind(err error) string {
	switch {
	case registry.IsActionNotFound(err):
		return "action_not_found"
	case playbooks.IsNoKnownTrigger(err):
		return "no_known_trigger"
	default:
		return "internal_error"
	}
}

// handleError maps generator and registry errors to problem responses.
func handleError(c fiber.Ctx, err error) error {
	kind := errorKind(err)

	switch kind {
	case "action_not_found":
		problem := problems.NewStatusProblem(404).
			WithInstance(c.Path()).
			WithType(kind).
			WithDetail(err.Error())

		return c.Status(fiber.StatusNotFound).JSON(problem)

	case "no_known_trigger":
		return unprocessable(c, kind, err.Error())

	default:
		problem := problems.NewStatusProblem(500).
			WithInstance(c.Path()).
			WithType(kind).
			WithError(err)

		return c.Status(fiber.StatusInternalServerError).JSON(problem)
	}
}
