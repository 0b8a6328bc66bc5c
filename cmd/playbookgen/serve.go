package main

import (
	"context"

	"github.com/dukex/playbookgen/pkg/log"
	"github.com/dukex/playbookgen/pkg/otelhelper"
	"github.com/urfave/cli/v3"
	"go.opentelemetry.io/otel/trace"
)

const defaultPort = 9091

func NewServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve action documentation and examples over HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Export traces over OTLP/HTTP",
				Sources: cli.EnvVars("OTEL_ENABLED"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			logger := log.WithModule("api")

			logger.InfoContext(ctx, "Initializing docs API")

			components, err := loadComponents("api")
			if err != nil {
				return err
			}

			var tracer trace.Tracer = otelhelper.NewNoopTracer()

			if command.Bool("tracing") {
				otelTracer, shutdown, err := otelhelper.NewTracer(ctx, "playbookgen")
				if err != nil {
					return err
				}

				defer func() {
					if err := shutdown(ctx); err != nil {
						logger.ErrorContext(ctx, "Failed to shutdown tracer provider", "error", err)
					}
				}()

				tracer = otelTracer
			}

			return NewAPI(logger, components, tracer).Start(command.Int("port"))
		},
	}
}
