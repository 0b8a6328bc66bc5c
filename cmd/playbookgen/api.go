package main

import (
	"log/slog"
	"strconv"

	"github.com/dukex/playbookgen/pkg/cmd"
	"github.com/dukex/playbookgen/pkg/web"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"go.opentelemetry.io/otel/trace"
)

type API struct {
	logger     *slog.Logger
	components *cmd.Components
	tracer     trace.Tracer
}

func NewAPI(
	logger *slog.Logger,
	components *cmd.Components,
	tracer trace.Tracer,
) *API {
	return &API{
		logger:     logger,
		components: components,
		tracer:     tracer,
	}
}

func (a *API) App() *fiber.App {
	handlers := web.NewAPIHandlers(
		a.components.Registry,
		a.components.Generator,
		a.components.Validator,
		a.tracer,
	)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("playbookgen docs API")
	})

	actions := app.Group("/actions")
	actions.Get("/", handlers.GetActions)
	actions.Get("/:name", handlers.GetAction)
	actions.Get("/:name/example", handlers.GetActionExample)

	app.Get("/events/:name/triggers", handlers.GetEventTriggers)
	app.Post("/playbooks/validate", handlers.ValidatePlaybook)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	a.logger.Info("Starting docs API", "port", port)

	return app.Listen(":" + strconv.Itoa(port))
}
