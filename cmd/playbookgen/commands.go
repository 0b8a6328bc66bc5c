package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dukex/playbookgen/pkg/cmd"
	"github.com/dukex/playbookgen/pkg/events"
	"github.com/dukex/playbookgen/pkg/log"
	"github.com/dukex/playbookgen/pkg/playbooks"
	"github.com/urfave/cli/v3"
)

// Static error variables for linter compliance.
var (
	ErrActionRequired  = errors.New("action name is required")
	ErrInvalidParam    = errors.New("trigger params must be key=value")
	ErrUnknownEvent    = errors.New("unknown event type")
	ErrInvalidPlaybook = errors.New("playbook validation failed")
)

func loadComponents(module string) (*cmd.Components, error) {
	return cmd.NewComponents(log.WithModule(module))
}

func actionArg(command *cli.Command) (string, error) {
	name := command.Args().First()
	if name == "" {
		return "", ErrActionRequired
	}

	return name, nil
}

func NewActionsCommand() *cli.Command {
	return &cli.Command{
		Name:    "actions",
		Aliases: []string{"ls"},
		Usage:   "List actions with the triggers they support",
		Action: func(ctx context.Context, command *cli.Command) error {
			components, err := loadComponents("actions")
			if err != nil {
				return err
			}

			out := command.Root().Writer

			_, _ = fmt.Fprintln(out, "Available Actions:")
			_, _ = fmt.Fprintln(out, "==================")

			for _, action := range components.Registry.Actions() {
				supported, err := components.Generator.GetSupportedTriggers(action)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(out, "\nAction: %s\n", action.Name)
				_, _ = fmt.Fprintf(out, "  Event: %s\n", action.EventType.Name)
				_, _ = fmt.Fprintf(out, "  Triggers: %s\n", strings.Join(supported, ", "))
			}

			_, _ = fmt.Fprintf(out, "\nTotal actions: %d\n", len(components.Registry.Actions()))

			return nil
		},
	}
}

func NewTriggersCommand() *cli.Command {
	return &cli.Command{
		Name:      "triggers",
		Usage:     "List the triggers an action supports",
		ArgsUsage: "<action>",
		Action: func(ctx context.Context, command *cli.Command) error {
			name, err := actionArg(command)
			if err != nil {
				return err
			}

			components, err := loadComponents("triggers")
			if err != nil {
				return err
			}

			action, err := components.Registry.Action(name)
			if err != nil {
				return err
			}

			supported, err := components.Generator.GetSupportedTriggers(action)
			if err != nil {
				return err
			}

			for _, trigger := range supported {
				_, _ = fmt.Fprintln(command.Root().Writer, trigger)
			}

			return nil
		},
	}
}

func NewEventsCommand() *cli.Command {
	return &cli.Command{
		Name:      "events",
		Usage:     "List event types, or the triggers producing one event type",
		ArgsUsage: "[event]",
		Action: func(ctx context.Context, command *cli.Command) error {
			out := command.Root().Writer

			name := command.Args().First()
			if name == "" {
				for _, event := range events.All() {
					ancestors := make([]string, 0)
					for _, a := range event.Ancestors() {
						ancestors = append(ancestors, a.Name)
					}

					_, _ = fmt.Fprintf(out, "%s\t%s\n", event.Name, strings.Join(ancestors, ", "))
				}

				return nil
			}

			event, ok := events.ByName(name)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownEvent, name)
			}

			components, err := loadComponents("events")
			if err != nil {
				return err
			}

			triggers, err := components.Generator.GetPossibleTriggers(event)
			if err != nil {
				return err
			}

			for _, trigger := range triggers {
				_, _ = fmt.Fprintln(out, trigger)
			}

			return nil
		},
	}
}

func NewExampleCommand() *cli.Command {
	return &cli.Command{
		Name:      "example",
		Usage:     "Print an example playbook for an action",
		ArgsUsage: "<action>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "trigger",
				Aliases: []string{"t"},
				Usage:   "Trigger to use instead of the first one the action supports",
			},
			&cli.StringSliceFlag{
				Name:    "trigger-param",
				Aliases: []string{"p"},
				Usage:   "Trigger parameter as key=value (repeatable)",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			name, err := actionArg(command)
			if err != nil {
				return err
			}

			params, err := parseParams(command.StringSlice("trigger-param"))
			if err != nil {
				return err
			}

			components, err := loadComponents("example")
			if err != nil {
				return err
			}

			action, err := components.Registry.Action(name)
			if err != nil {
				return err
			}

			rendered, err := components.Generator.GenerateExampleConfig(action, command.String("trigger"), params)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(command.Root().Writer, rendered)

			return nil
		},
	}
}

// parseParams turns key=value pairs into trigger params. No pairs gives nil.
func parseParams(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParam, pair)
		}

		params[key] = value
	}

	return params, nil
}

func NewManualCmdCommand() *cli.Command {
	return &cli.Command{
		Name:      "manual-cmd",
		Usage:     "Print the command triggering an action by hand",
		ArgsUsage: "<action>",
		Action: func(ctx context.Context, command *cli.Command) error {
			name, err := actionArg(command)
			if err != nil {
				return err
			}

			components, err := loadComponents("manual-cmd")
			if err != nil {
				return err
			}

			action, err := components.Registry.Action(name)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(command.Root().Writer, components.Generator.GetManualTriggerCmd(action))

			return nil
		},
	}
}

func NewValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Validate a playbook configuration file",
		ArgsUsage: "<file|->",
		Action: func(ctx context.Context, command *cli.Command) error {
			path := command.Args().First()
			if path == "" {
				path = "-"
			}

			data, err := readInput(path, command.Root().Reader)
			if err != nil {
				return err
			}

			components, err := loadComponents("validate")
			if err != nil {
				return err
			}

			out := command.Root().Writer

			err = components.Validator.Validate(data)
			if err == nil {
				_, _ = fmt.Fprintln(out, "✅ VALID")

				return nil
			}

			var playbookErr *playbooks.PlaybookError
			if !errors.As(err, &playbookErr) {
				return err
			}

			for _, problem := range playbookErr.Problems {
				_, _ = fmt.Fprintf(out, "❌ INVALID: %s\n", problem)
			}

			return fmt.Errorf("%w: %d problem(s)", ErrInvalidPlaybook, len(playbookErr.Problems))
		},
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}

		return io.ReadAll(stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read playbook file: %w", err)
	}

	return data, nil
}
