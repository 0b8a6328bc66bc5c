package actions

import (
	"github.com/dukex/playbookgen/pkg/events"
	"github.com/dukex/playbookgen/pkg/models"
)

// LogsEnricher attaches the logs of a pod to the finding.
var LogsEnricher = &models.Action{
	Name:        "logs_enricher",
	Description: "Fetch and attach the pod logs, optionally filtered.",
	EventType:   events.PodEvent,
	ParamsSchema: map[string]any{
		"title": "LogEnricherParams",
		"type":  "object",
		"properties": map[string]any{
			"container_name": map[string]any{
				"type":        "string",
				"description": "Container to fetch logs from. Defaults to the first container",
			},
			"warn_on_missing_label": map[string]any{
				"type":    "boolean",
				"default": false,
			},
			"previous": map[string]any{
				"type":        "boolean",
				"description": "Fetch the logs of the previous container run",
				"default":     false,
			},
			"filter": map[string]any{"$ref": "#/definitions/LogFilter"},
		},
		"definitions": map[string]any{
			"LogFilter": map[string]any{
				"title": "LogFilter",
				"type":  "object",
				"properties": map[string]any{
					"regex": map[string]any{
						"type":     "string",
						"examples": []string{"error|exception"},
					},
					"max_lines": map[string]any{
						"type":    "integer",
						"default": 1000,
						"minimum": 1,
					},
				},
				"required": []string{"regex"},
			},
		},
	},
	FromParams: podAttributes,
}

// PodBashEnricher runs a bash command in a pod and attaches the output.
var PodBashEnricher = &models.Action{
	Name:        "pod_bash_enricher",
	Description: "Execute a bash command on the pod and attach the output.",
	EventType:   events.PodEvent,
	ParamsSchema: map[string]any{
		"title": "BashParams",
		"type":  "object",
		"properties": map[string]any{
			"bash_command": map[string]any{
				"type":     "string",
				"examples": []string{"ls -l /etc/"},
			},
		},
		"required": []string{"bash_command"},
	},
	FromParams: podAttributes,
}

// DeletePod deletes the pod that triggered the action. It takes no parameters.
var DeletePod = &models.Action{
	Name:        "delete_pod",
	Description: "Delete the pod, letting its controller recreate it.",
	EventType:   events.PodEvent,
	FromParams:  podAttributes,
}
