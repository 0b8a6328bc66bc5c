package triggers

import (
	"github.com/dukex/playbookgen/pkg/events"
	"github.com/dukex/playbookgen/pkg/models"
)

func variant(typeName string, event *models.EventType) *models.TriggerVariant {
	return &models.TriggerVariant{Type: typeName, ExecutionEvent: event}
}

// Pod triggers.
var (
	PodCreateTrigger     = variant("PodCreateTrigger", events.PodChangeEvent)
	PodUpdateTrigger     = variant("PodUpdateTrigger", events.PodChangeEvent)
	PodDeleteTrigger     = variant("PodDeleteTrigger", events.PodChangeEvent)
	PodAllChangesTrigger = variant("PodAllChangesTrigger", events.PodChangeEvent)
	PodCrashLoopTrigger  = variant("PodCrashLoopTrigger", events.PodChangeEvent)
	PodOOMKilledTrigger  = variant("PodOOMKilledTrigger", events.PodChangeEvent)
)

// Deployment triggers.
var (
	DeploymentCreateTrigger     = variant("DeploymentCreateTrigger", events.DeploymentChangeEvent)
	DeploymentUpdateTrigger     = variant("DeploymentUpdateTrigger", events.DeploymentChangeEvent)
	DeploymentDeleteTrigger     = variant("DeploymentDeleteTrigger", events.DeploymentChangeEvent)
	DeploymentAllChangesTrigger = variant("DeploymentAllChangesTrigger", events.DeploymentChangeEvent)
)

// Node triggers.
var (
	NodeCreateTrigger     = variant("NodeCreateTrigger", events.NodeChangeEvent)
	NodeUpdateTrigger     = variant("NodeUpdateTrigger", events.NodeChangeEvent)
	NodeDeleteTrigger     = variant("NodeDeleteTrigger", events.NodeChangeEvent)
	NodeAllChangesTrigger = variant("NodeAllChangesTrigger", events.NodeChangeEvent)
)

// Job triggers.
var (
	JobCreateTrigger     = variant("JobCreateTrigger", events.JobChangeEvent)
	JobUpdateTrigger     = variant("JobUpdateTrigger", events.JobChangeEvent)
	JobDeleteTrigger     = variant("JobDeleteTrigger", events.JobChangeEvent)
	JobAllChangesTrigger = variant("JobAllChangesTrigger", events.JobChangeEvent)
	JobFailedTrigger     = variant("JobFailedTrigger", events.JobChangeEvent)
)

// Kubernetes warning event triggers.
var (
	WarningEventCreateTrigger = variant("WarningEventCreateTrigger", events.EventChangeEvent)
	WarningEventUpdateTrigger = variant("WarningEventUpdateTrigger", events.EventChangeEvent)
)

// Triggers for changes to any Kubernetes resource.
var (
	AnyResourceCreateTrigger     = variant("KubernetesAnyResourceCreateTrigger", events.KubernetesAnyChangeEvent)
	AnyResourceUpdateTrigger     = variant("KubernetesAnyResourceUpdateTrigger", events.KubernetesAnyChangeEvent)
	AnyResourceDeleteTrigger     = variant("KubernetesAnyResourceDeleteTrigger", events.KubernetesAnyChangeEvent)
	AnyResourceAllChangesTrigger = variant("KubernetesAnyResourceAllChangesTrigger", events.KubernetesAnyChangeEvent)
)
