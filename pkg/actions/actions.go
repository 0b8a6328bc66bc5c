// Package actions declares the built-in actions and the JSON schemas of their
// parameters.
package actions

import "github.com/dukex/playbookgen/pkg/models"

// All returns every built-in action.
func All() []*models.Action {
	return []*models.Action{
		LogsEnricher,
		PodBashEnricher,
		DeletePod,
		DeploymentStatusEnricher,
		NodeCPUEnricher,
		JobInfoEnricher,
		AlertGraphEnricher,
		WarningEventReport,
		ResourceBabysitter,
		HTTPRequest,
		LogMessage,
	}
}

// attributes returns the from-params schema of a Kubernetes resource kind.
// Namespaced kinds require a namespace.
func attributes(kind string, namespaced bool) map[string]any {
	properties := map[string]any{
		"name": map[string]any{"type": "string"},
	}
	required := []string{"name"}

	if namespaced {
		properties["namespace"] = map[string]any{"type": "string"}
		required = append(required, "namespace")
	}

	return map[string]any{
		"title":      kind + "Attributes",
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

var (
	podAttributes        = attributes("Pod", true)
	deploymentAttributes = attributes("Deployment", true)
	nodeAttributes       = attributes("Node", false)
	jobAttributes        = attributes("Job", true)
)
