package playbooks

import (
	"slices"
	"testing"

	"github.com/dukex/playbookgen/pkg/actions"
	"github.com/dukex/playbookgen/pkg/events"
	"github.com/dukex/playbookgen/pkg/models"
	"github.com/dukex/playbookgen/pkg/triggers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestGenerator() *ExamplesGenerator {
	return NewExamplesGenerator(triggers.Fields())
}

func TestGetPossibleTriggers_ProducedEventAndAncestors(t *testing.T) {
	g := newTestGenerator()

	for _, field := range triggers.Fields() {
		for _, variant := range field.Variants {
			event := variant.ExecutionEvent

			for _, e := range append([]*models.EventType{event}, event.Ancestors()...) {
				possible, err := g.GetPossibleTriggers(e)
				require.NoError(t, err, "event %s", e.Name)
				assert.Contains(t, possible, field.Name, "event %s", e.Name)
			}
		}
	}
}

func TestGetPossibleTriggers_Pod(t *testing.T) {
	g := newTestGenerator()

	possible, err := g.GetPossibleTriggers(events.PodEvent)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"on_pod_create",
		"on_pod_update",
		"on_pod_delete",
		"on_pod_all_changes",
		"on_pod_crash_loop",
		"on_pod_oom_killed",
		"on_prometheus_alert",
	}, possible)
}

func TestGetPossibleTriggers_AnyChangeEvent(t *testing.T) {
	g := newTestGenerator()

	possible, err := g.GetPossibleTriggers(events.KubernetesAnyChangeEvent)
	require.NoError(t, err)

	assert.Contains(t, possible, "on_pod_create")
	assert.Contains(t, possible, "on_deployment_update")
	assert.Contains(t, possible, "on_kubernetes_any_resource_all_changes")
	assert.NotContains(t, possible, "on_prometheus_alert")
	assert.NotContains(t, possible, "on_schedule")
}

func TestGetPossibleTriggers_UnionFieldIsListedPerVariant(t *testing.T) {
	g := newTestGenerator()

	possible, err := g.GetPossibleTriggers(events.ScheduledExecutionEvent)
	require.NoError(t, err)
	assert.Equal(t, []string{"on_schedule", "on_schedule"}, possible)
}

func TestGetPossibleTriggers_GenericEvent(t *testing.T) {
	g := newTestGenerator()

	possible, err := g.GetPossibleTriggers(models.ExecutionBaseEvent)
	require.NoError(t, err)
	assert.Equal(t, []string{GenericExampleTrigger}, possible)
}

func TestGetPossibleTriggers_UnknownEvent(t *testing.T) {
	g := newTestGenerator()

	orphan := models.NewEventType("OrphanEvent")

	_, err := g.GetPossibleTriggers(orphan)
	require.Error(t, err)
	assert.True(t, IsNoKnownTrigger(err))
	assert.Contains(t, err.Error(), "OrphanEvent")
}

func TestGetPossibleTriggers_EmptySchema(t *testing.T) {
	g := NewExamplesGenerator(nil)

	_, err := g.GetPossibleTriggers(events.PodEvent)
	assert.ErrorIs(t, err, ErrNoKnownTrigger)
}

func TestGetPossibleTriggers_NilEvent(t *testing.T) {
	g := newTestGenerator()

	_, err := g.GetPossibleTriggers(nil)
	assert.ErrorIs(t, err, ErrNoKnownTrigger)

	_, err = g.GetSupportedTriggers(&models.Action{Name: "broken"})
	assert.ErrorIs(t, err, ErrNoKnownTrigger)

	_, err = g.GenerateExampleConfig(&models.Action{Name: "broken"}, "", nil)
	assert.ErrorIs(t, err, ErrNoKnownTrigger)
}

func TestNewExamplesGenerator_SkipsVariantsWithoutEvent(t *testing.T) {
	g := NewExamplesGenerator([]*models.TriggerField{
		models.NewTriggerField("on_nothing", &models.TriggerVariant{Type: "NoEvent"}, nil),
		models.NewTriggerField("on_node_create", &models.TriggerVariant{Type: "NodeCreate", ExecutionEvent: events.NodeEvent}),
	})

	possible, err := g.GetPossibleTriggers(events.NodeEvent)
	require.NoError(t, err)
	assert.Equal(t, []string{"on_node_create"}, possible)
}

func TestNewExamplesGenerator_LastFieldNamesVariant(t *testing.T) {
	variant := &models.TriggerVariant{Type: "Shared", ExecutionEvent: events.NodeEvent}

	g := NewExamplesGenerator([]*models.TriggerField{
		models.NewTriggerField("on_first", variant),
		models.NewTriggerField("on_second", variant),
	})

	possible, err := g.GetPossibleTriggers(events.NodeEvent)
	require.NoError(t, err)
	assert.Equal(t, []string{"on_second"}, possible)
}

func TestGetSupportedTriggers_SortedAndDistinct(t *testing.T) {
	g := newTestGenerator()

	for _, action := range actions.All() {
		t.Run(action.Name, func(t *testing.T) {
			supported, err := g.GetSupportedTriggers(action)
			require.NoError(t, err)
			require.NotEmpty(t, supported)

			assert.True(t, slices.IsSorted(supported))
			assert.Len(t, slices.Compact(slices.Clone(supported)), len(supported))
		})
	}
}

func TestGetSupportedTriggers(t *testing.T) {
	g := newTestGenerator()

	scheduled := &models.Action{Name: "report", EventType: events.ScheduledExecutionEvent}
	supported, err := g.GetSupportedTriggers(scheduled)
	require.NoError(t, err)
	assert.Equal(t, []string{"on_schedule"}, supported)

	supported, err = g.GetSupportedTriggers(actions.JobInfoEnricher)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"on_job_all_changes",
		"on_job_create",
		"on_job_delete",
		"on_job_failure",
		"on_job_update",
		"on_prometheus_alert",
	}, supported)

	supported, err = g.GetSupportedTriggers(actions.HTTPRequest)
	require.NoError(t, err)
	assert.Equal(t, []string{AnyTriggerMarker}, supported)
}

func TestGetSupportedTriggers_UnknownEvent(t *testing.T) {
	g := newTestGenerator()

	action := &models.Action{Name: "orphan", EventType: models.NewEventType("OrphanEvent")}

	_, err := g.GetSupportedTriggers(action)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoKnownTrigger)
	assert.Contains(t, err.Error(), "OrphanEvent")
}

func TestGetManualTriggerCmd(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		name     string
		action   *models.Action
		expected string
	}{
		{
			name: "generic action",
			action: &models.Action{
				Name:         "my_action",
				EventType:    models.ExecutionBaseEvent,
				ParamsSchema: map[string]any{"type": "object", "required": []string{"a", "b"}},
			},
			expected: "robusta playbooks trigger my_action a=A b=B",
		},
		{
			name:     "generic action without params",
			action:   &models.Action{Name: "noop", EventType: models.ExecutionBaseEvent},
			expected: "robusta playbooks trigger noop",
		},
		{
			name:     "pod action with params",
			action:   actions.PodBashEnricher,
			expected: "robusta playbooks trigger pod_bash_enricher name=POD_NAME namespace=POD_NAMESPACE bash_command=BASH_COMMAND",
		},
		{
			name:     "node action without required params",
			action:   actions.NodeCPUEnricher,
			expected: "robusta playbooks trigger node_cpu_enricher name=NODE_NAME",
		},
		{
			name:     "event cannot be built from params",
			action:   actions.WarningEventReport,
			expected: "",
		},
		{
			name:     "builtin generic action",
			action:   actions.LogMessage,
			expected: "robusta playbooks trigger log_message message=MESSAGE level=LEVEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.GetManualTriggerCmd(tt.action))
		})
	}
}

func TestGenerateExampleConfig_RequiredStringParam(t *testing.T) {
	g := newTestGenerator()

	action := &models.Action{
		Name:      "greet_pod",
		EventType: events.PodChangeEvent,
		ParamsSchema: map[string]any{
			"title": "GreetParams",
			"type":  "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
			},
			"required": []string{"name"},
		},
	}

	rendered, err := g.GenerateExampleConfig(action, "", nil)
	require.NoError(t, err)

	var doc struct {
		CustomPlaybooks []struct {
			Actions  []map[string]map[string]any `yaml:"actions"`
			Triggers []map[string]map[string]any `yaml:"triggers"`
		} `yaml:"customPlaybooks"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(rendered), &doc))

	require.Len(t, doc.CustomPlaybooks, 1)
	playbook := doc.CustomPlaybooks[0]

	require.Len(t, playbook.Triggers, 1)
	assert.Equal(t, map[string]map[string]any{"on_pod_create": {}}, playbook.Triggers[0])

	require.Len(t, playbook.Actions, 1)
	params, ok := playbook.Actions[0]["greet_pod"]
	require.True(t, ok)
	assert.IsType(t, "", params["name"])
}

func TestGenerateExampleConfig_Rendered(t *testing.T) {
	g := newTestGenerator()

	rendered, err := g.GenerateExampleConfig(actions.PodBashEnricher, "", nil)
	require.NoError(t, err)

	expected := `customPlaybooks:
  - actions:
      - pod_bash_enricher:
          bash_command: ls -l /etc/
    triggers:
      - on_pod_create: {}
`
	assert.Equal(t, expected, rendered)
}

func TestGenerateExampleConfig_SuggestedTrigger(t *testing.T) {
	g := newTestGenerator()

	rendered, err := g.GenerateExampleConfig(
		actions.DeletePod,
		"on_pod_crash_loop",
		map[string]any{"restart_reason": "CrashLoopBackOff"},
	)
	require.NoError(t, err)

	expected := `customPlaybooks:
  - actions:
      - delete_pod: {}
    triggers:
      - on_pod_crash_loop:
          restart_reason: CrashLoopBackOff
`
	assert.Equal(t, expected, rendered)
}

func TestGenerateExampleConfig_GenericAction(t *testing.T) {
	g := newTestGenerator()

	example, err := g.Example(actions.LogMessage, "", nil)
	require.NoError(t, err)

	playbook := example["customPlaybooks"].([]any)[0].(map[string]any)
	trigger := playbook["triggers"].([]any)[0].(map[string]any)
	assert.Contains(t, trigger, GenericExampleTrigger)

	params := playbook["actions"].([]any)[0].(map[string]any)["log_message"].(map[string]any)
	assert.Equal(t, map[string]any{"message": "string", "level": "info"}, params)
}

func TestGenerateExampleConfig_InlinesReferences(t *testing.T) {
	g := newTestGenerator()

	example, err := g.Example(actions.LogsEnricher, "", nil)
	require.NoError(t, err)

	playbook := example["customPlaybooks"].([]any)[0].(map[string]any)
	params := playbook["actions"].([]any)[0].(map[string]any)["logs_enricher"].(map[string]any)

	assert.Equal(t, map[string]any{"regex": "error|exception", "max_lines": float64(1000)}, params["filter"])
	assert.Equal(t, false, params["previous"])
	assert.Equal(t, "string", params["container_name"])
}

func TestGenerateExampleConfig_RepeatedValuesAreNotAliased(t *testing.T) {
	g := newTestGenerator()

	action := &models.Action{
		Name:      "two_filters",
		EventType: events.PodEvent,
		ParamsSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"include": map[string]any{"$ref": "#/definitions/Filter"},
				"exclude": map[string]any{"$ref": "#/definitions/Filter"},
			},
			"definitions": map[string]any{
				"Filter": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"regex": map[string]any{"type": "string"},
					},
				},
			},
		},
	}

	first, err := g.GenerateExampleConfig(action, "", nil)
	require.NoError(t, err)

	second, err := g.GenerateExampleConfig(action, "", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotContains(t, first, "&")
	assert.NotContains(t, first, "*")
	assert.Contains(t, first, "exclude:\n            regex: string")
	assert.Contains(t, first, "include:\n            regex: string")
}

func TestGenerateExampleConfig_UnknownEvent(t *testing.T) {
	g := newTestGenerator()

	action := &models.Action{Name: "orphan", EventType: models.NewEventType("OrphanEvent")}

	_, err := g.GenerateExampleConfig(action, "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoKnownTrigger)

	// a suggested trigger bypasses the lookup
	_, err = g.GenerateExampleConfig(action, "on_pod_create", nil)
	require.NoError(t, err)
}

func TestGenerateExampleConfig_AllBuiltinActions(t *testing.T) {
	g := newTestGenerator()

	for _, action := range actions.All() {
		t.Run(action.Name, func(t *testing.T) {
			rendered, err := g.GenerateExampleConfig(action, "", nil)
			require.NoError(t, err)
			assert.Contains(t, rendered, action.Name+":")
		})
	}
}
