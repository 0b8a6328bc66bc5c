package actions

import (
	"github.com/dukex/playbookgen/pkg/events"
	"github.com/dukex/playbookgen/pkg/models"
)

// HTTPRequest performs an HTTP request. It accepts any trigger.
var HTTPRequest = &models.Action{
	Name:        "http_request",
	Description: "Performs an HTTP request to a specified URL with optional headers and body.",
	EventType:   events.ExecutionBaseEvent,
	ParamsSchema: map[string]any{
		"title": "HTTPRequestParams",
		"type":  "object",
		"properties": map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "The URL to send the HTTP request to",
				"examples": []string{
					"https://api.example.com/users",
					"https://hooks.example.com/alerts",
				},
			},
			"method": map[string]any{
				"type":        "string",
				"description": "HTTP method to use (GET, POST, PUT, DELETE, etc.)",
				"default":     "GET",
				"enum":        []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
			},
			"headers": map[string]any{
				"type":        "object",
				"description": "HTTP headers to include in the request",
				"additionalProperties": map[string]any{
					"type": "string",
				},
				"examples": []map[string]string{
					{
						"Content-Type":  "application/json",
						"Authorization": "Bearer your-token-here",
					},
				},
			},
			"body": map[string]any{
				"type":        "string",
				"description": "Request body content",
			},
			"retries": map[string]any{"$ref": "#/definitions/RetryPolicy"},
		},
		"required":             []string{"url", "method"},
		"additionalProperties": false,
		"definitions": map[string]any{
			"RetryPolicy": map[string]any{
				"type":        "object",
				"description": "Retry configuration for failed requests",
				"properties": map[string]any{
					"attempts": map[string]any{
						"type":        "integer",
						"description": "Number of retry attempts on failure",
						"default":     0,
						"minimum":     0,
						"maximum":     5, //nolint:mnd // example value
					},
					"delay": map[string]any{
						"type":        "integer",
						"description": "Delay between retry attempts in milliseconds",
						"default":     1000,  //nolint:mnd // example value
						"minimum":     100,   //nolint:mnd // example value
						"maximum":     30000, //nolint:mnd // example value
					},
				},
			},
		},
	},
}

// LogMessage writes a message to the runner log. It accepts any trigger.
var LogMessage = &models.Action{
	Name:        "log_message",
	Description: "Logs a message at the given level.",
	EventType:   events.ExecutionBaseEvent,
	ParamsSchema: map[string]any{
		"title": "LogMessageParams",
		"type":  "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "Message to log",
			},
			"level": map[string]any{
				"type":        "string",
				"description": "Log level for the message",
				"enum":        []string{"debug", "info", "warn", "error"},
				"default":     "info",
			},
		},
		"required": []string{"message", "level"},
	},
}
