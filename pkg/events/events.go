// Package events declares the execution event hierarchy delivered to actions.
package events

import "github.com/dukex/playbookgen/pkg/models"

// Re-exported so callers can declare generic actions without importing models.
var ExecutionBaseEvent = models.ExecutionBaseEvent

// Kubernetes base events.
var (
	KubernetesResourceEvent  = models.NewEventType("KubernetesResourceEvent")
	K8sBaseChangeEvent       = models.NewEventType("K8sBaseChangeEvent")
	KubernetesAnyChangeEvent = models.NewEventType("KubernetesAnyChangeEvent", K8sBaseChangeEvent)
)

// Per-resource events. Change events derive from both the resource event and
// KubernetesAnyChangeEvent, the resource event taking precedence.
var (
	PodEvent              = models.NewEventType("PodEvent", KubernetesResourceEvent)
	PodChangeEvent        = models.NewEventType("PodChangeEvent", PodEvent, KubernetesAnyChangeEvent)
	DeploymentEvent       = models.NewEventType("DeploymentEvent", KubernetesResourceEvent)
	DeploymentChangeEvent = models.NewEventType("DeploymentChangeEvent", DeploymentEvent, KubernetesAnyChangeEvent)
	NodeEvent             = models.NewEventType("NodeEvent", KubernetesResourceEvent)
	NodeChangeEvent       = models.NewEventType("NodeChangeEvent", NodeEvent, KubernetesAnyChangeEvent)
	JobEvent              = models.NewEventType("JobEvent", KubernetesResourceEvent)
	JobChangeEvent        = models.NewEventType("JobChangeEvent", JobEvent, KubernetesAnyChangeEvent)
	EventEvent            = models.NewEventType("EventEvent", KubernetesResourceEvent)
	EventChangeEvent      = models.NewEventType("EventChangeEvent", EventEvent, KubernetesAnyChangeEvent)
)

// Alert and schedule events.
var (
	PrometheusKubernetesAlert = models.NewEventType("PrometheusKubernetesAlert", PodEvent, NodeEvent, DeploymentEvent, JobEvent)
	ScheduledExecutionEvent   = models.NewEventType("ScheduledExecutionEvent")
)

// All returns every declared event type, root first.
func All() []*models.EventType {
	return []*models.EventType{
		ExecutionBaseEvent,
		KubernetesResourceEvent,
		K8sBaseChangeEvent,
		KubernetesAnyChangeEvent,
		PodEvent,
		PodChangeEvent,
		DeploymentEvent,
		DeploymentChangeEvent,
		NodeEvent,
		NodeChangeEvent,
		JobEvent,
		JobChangeEvent,
		EventEvent,
		EventChangeEvent,
		PrometheusKubernetesAlert,
		ScheduledExecutionEvent,
	}
}

// ByName looks up a declared event type.
func ByName(name string) (*models.EventType, bool) {
	for _, e := range All() {
		if e.Name == name {
			return e, true
		}
	}

	return nil, false
}
