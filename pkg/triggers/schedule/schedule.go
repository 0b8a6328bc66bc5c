// Package schedule provides the scheduled trigger variants.
package schedule

import (
	"errors"
	"fmt"

	"github.com/dukex/playbookgen/pkg/events"
	"github.com/dukex/playbookgen/pkg/models"
	"github.com/robfig/cron/v3"
)

var (
	ErrCronRequired    = errors.New("cron_expression is required")
	ErrInvalidCron     = errors.New("invalid cron expression")
	ErrInvalidInterval = errors.New("repeat interval must be positive")
)

// FixedDelayTrigger fires an action every N seconds.
var FixedDelayTrigger = &models.TriggerVariant{
	Type:           "FixedDelayScheduleTrigger",
	ExecutionEvent: events.ScheduledExecutionEvent,
	ParamsSchema: map[string]any{
		"type":  "object",
		"title": "FixedDelayRepeat",
		"properties": map[string]any{
			"repeat": map[string]any{
				"type":        "integer",
				"description": "Number of times to run. -1 runs forever",
				"default":     -1,
			},
			"seconds_delay": map[string]any{
				"type":        "integer",
				"description": "Delay between runs in seconds",
				"minimum":     1,
				"examples":    []int{60, 300},
			},
		},
		"required": []string{"seconds_delay"},
	},
	ValidateParams: validateFixedDelay,
}

// CronTrigger fires an action on a cron schedule.
var CronTrigger = &models.TriggerVariant{
	Type:           "CronScheduleTrigger",
	ExecutionEvent: events.ScheduledExecutionEvent,
	ParamsSchema: map[string]any{
		"type":  "object",
		"title": "CronScheduleRepeat",
		"properties": map[string]any{
			"cron_expression": map[string]any{
				"type":        "string",
				"description": "Cron expression defining the schedule (standard 5-field format)",
				"examples": []string{
					"0 9 * * *",
					"*/15 * * * *",
				},
			},
		},
		"required": []string{"cron_expression"},
	},
	ValidateParams: validateCron,
}

func validateCron(params map[string]any) error {
	expr, _ := params["cron_expression"].(string)
	if expr == "" {
		return ErrCronRequired
	}

	if _, err := cron.ParseStandard(expr); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidCron, expr, err)
	}

	return nil
}

func validateFixedDelay(params map[string]any) error {
	delay, ok := toInt(params["seconds_delay"])
	if ok && delay <= 0 {
		return fmt.Errorf("%w: seconds_delay=%d", ErrInvalidInterval, delay)
	}

	return nil
}

// toInt accepts the integer shapes produced by YAML and JSON decoding.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
