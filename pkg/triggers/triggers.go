// Package triggers declares the trigger schema: the named trigger fields a
// playbook may use and the variants each field accepts.
package triggers

import (
	"github.com/dukex/playbookgen/pkg/events"
	"github.com/dukex/playbookgen/pkg/models"
	"github.com/dukex/playbookgen/pkg/triggers/schedule"
)

// PrometheusAlertTrigger fires on alerts received from Prometheus/AlertManager.
var PrometheusAlertTrigger = &models.TriggerVariant{
	Type:           "PrometheusAlertTrigger",
	ExecutionEvent: events.PrometheusKubernetesAlert,
	ParamsSchema: map[string]any{
		"type":  "object",
		"title": "PrometheusAlertTrigger",
		"properties": map[string]any{
			"alert_name":       map[string]any{"type": "string"},
			"status":           map[string]any{"type": "string", "enum": []string{"firing", "resolved", "all"}},
			"pod_name_prefix":  map[string]any{"type": "string"},
			"namespace_prefix": map[string]any{"type": "string"},
		},
	},
}

// Fields returns the trigger schema in declaration order.
func Fields() []*models.TriggerField {
	return []*models.TriggerField{
		models.NewTriggerField("on_pod_create", PodCreateTrigger),
		models.NewTriggerField("on_pod_update", PodUpdateTrigger),
		models.NewTriggerField("on_pod_delete", PodDeleteTrigger),
		models.NewTriggerField("on_pod_all_changes", PodAllChangesTrigger),
		models.NewTriggerField("on_pod_crash_loop", PodCrashLoopTrigger),
		models.NewTriggerField("on_pod_oom_killed", PodOOMKilledTrigger),

		models.NewTriggerField("on_deployment_create", DeploymentCreateTrigger),
		models.NewTriggerField("on_deployment_update", DeploymentUpdateTrigger),
		models.NewTriggerField("on_deployment_delete", DeploymentDeleteTrigger),
		models.NewTriggerField("on_deployment_all_changes", DeploymentAllChangesTrigger),

		models.NewTriggerField("on_node_create", NodeCreateTrigger),
		models.NewTriggerField("on_node_update", NodeUpdateTrigger),
		models.NewTriggerField("on_node_delete", NodeDeleteTrigger),
		models.NewTriggerField("on_node_all_changes", NodeAllChangesTrigger),

		models.NewTriggerField("on_job_create", JobCreateTrigger),
		models.NewTriggerField("on_job_update", JobUpdateTrigger),
		models.NewTriggerField("on_job_delete", JobDeleteTrigger),
		models.NewTriggerField("on_job_all_changes", JobAllChangesTrigger),
		models.NewTriggerField("on_job_failure", JobFailedTrigger),

		models.NewTriggerField("on_kubernetes_warning_event", WarningEventCreateTrigger, WarningEventUpdateTrigger),

		models.NewTriggerField("on_kubernetes_any_resource_create", AnyResourceCreateTrigger),
		models.NewTriggerField("on_kubernetes_any_resource_update", AnyResourceUpdateTrigger),
		models.NewTriggerField("on_kubernetes_any_resource_delete", AnyResourceDeleteTrigger),
		models.NewTriggerField("on_kubernetes_any_resource_all_changes", AnyResourceAllChangesTrigger),

		models.NewTriggerField("on_prometheus_alert", PrometheusAlertTrigger),

		models.NewTriggerField("on_schedule", schedule.FixedDelayTrigger, schedule.CronTrigger),
	}
}
