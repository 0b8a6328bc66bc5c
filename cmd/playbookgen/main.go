package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dukex/playbookgen/pkg/log"
	cli "github.com/urfave/cli/v3"
)

func NewApp() *cli.Command {
	return &cli.Command{
		Name:                  "playbookgen",
		Usage:                 "Document actions and generate example playbook configuration",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			log.Setup(command.String("log-level"))

			return ctx, nil
		},
		Commands: []*cli.Command{
			NewActionsCommand(),
			NewTriggersCommand(),
			NewEventsCommand(),
			NewExampleCommand(),
			NewManualCmdCommand(),
			NewValidateCommand(),
			NewServeCommand(),
		},
	}
}

func main() {
	if err := NewApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
