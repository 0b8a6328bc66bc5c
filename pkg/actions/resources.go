package actions

import (
	"github.com/dukex/playbookgen/pkg/events"
	"github.com/dukex/playbookgen/pkg/models"
)

// DeploymentStatusEnricher attaches the deployment status conditions.
var DeploymentStatusEnricher = &models.Action{
	Name:        "deployment_status_enricher",
	Description: "Attach the status conditions of the deployment.",
	EventType:   events.DeploymentEvent,
	ParamsSchema: map[string]any{
		"title": "DeploymentStatusParams",
		"type":  "object",
		"properties": map[string]any{
			"show_replicas": map[string]any{
				"type":    "boolean",
				"default": true,
			},
		},
	},
	FromParams: deploymentAttributes,
}

// NodeCPUEnricher attaches a CPU breakdown of a node.
var NodeCPUEnricher = &models.Action{
	Name:        "node_cpu_enricher",
	Description: "Attach a breakdown of the CPU usage of the node.",
	EventType:   events.NodeEvent,
	ParamsSchema: map[string]any{
		"title": "PrometheusParams",
		"type":  "object",
		"properties": map[string]any{
			"prometheus_url": map[string]any{
				"type":   "string",
				"format": "uri",
			},
			"prometheus_url_query_string": map[string]any{
				"type": "string",
			},
		},
	},
	FromParams: nodeAttributes,
}

// JobInfoEnricher attaches the job status and its pods.
var JobInfoEnricher = &models.Action{
	Name:        "job_info_enricher",
	Description: "Attach the job status and the list of its pods.",
	EventType:   events.JobEvent,
	FromParams:  jobAttributes,
}

// WarningEventReport reports Kubernetes warning events. Warning events cannot
// be built from parameters, so it has no manual trigger.
var WarningEventReport = &models.Action{
	Name:        "warning_event_report",
	Description: "Report a Kubernetes warning event.",
	EventType:   events.EventChangeEvent,
	ParamsSchema: map[string]any{
		"title": "WarningEventReportParams",
		"type":  "object",
		"properties": map[string]any{
			"warning_event_type": map[string]any{
				"type": "string",
			},
		},
	},
}

// ResourceBabysitter reports field changes on any Kubernetes resource.
var ResourceBabysitter = &models.Action{
	Name:        "resource_babysitter",
	Description: "Report changes to selected fields of a Kubernetes resource.",
	EventType:   events.KubernetesAnyChangeEvent,
	ParamsSchema: map[string]any{
		"title": "BabysitterConfig",
		"type":  "object",
		"properties": map[string]any{
			"fields_to_monitor": map[string]any{
				"type":    "array",
				"items":   map[string]any{"type": "string"},
				"default": []string{"status", "kind"},
			},
			"omitted_fields": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	},
}

// AlertGraphEnricher attaches a graph of a Prometheus query to an alert.
var AlertGraphEnricher = &models.Action{
	Name:        "alert_graph_enricher",
	Description: "Attach a graph of the alert query or of a resource usage.",
	EventType:   events.PrometheusKubernetesAlert,
	ParamsSchema: map[string]any{
		"title": "AlertResourceGraphEnricherParams",
		"type":  "object",
		"properties": map[string]any{
			"resource_type": map[string]any{
				"type": "string",
				"enum": []string{"CPU", "Memory", "Disk"},
			},
			"graph_duration_minutes": map[string]any{
				"type":    "integer",
				"default": 60,
			},
			"prometheus": map[string]any{"$ref": "#/definitions/PrometheusParams"},
		},
		"required": []string{"resource_type"},
		"definitions": map[string]any{
			"PrometheusParams": NodeCPUEnricher.ParamsSchema,
		},
	},
}
