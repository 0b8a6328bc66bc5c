package registry

import (
	"log/slog"
	"testing"

	"github.com/dukex/playbookgen/pkg/actions"
	"github.com/dukex/playbookgen/pkg/events"
	"github.com/dukex/playbookgen/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGetAction(t *testing.T) {
	registry := NewRegistry(slog.Default())

	action := &models.Action{
		Name:      "test_action",
		EventType: events.PodEvent,
		ParamsSchema: map[string]any{
			"type":     "object",
			"required": []string{"message"},
		},
	}

	require.NoError(t, registry.RegisterAction(action))

	got, err := registry.Action("test_action")
	require.NoError(t, err)
	assert.Same(t, action, got)
}

func TestRegistry_ActionNotFound(t *testing.T) {
	registry := NewRegistry(slog.Default())

	_, err := registry.Action("missing")
	require.Error(t, err)
	assert.True(t, IsActionNotFound(err))
	assert.Contains(t, err.Error(), "missing")
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	registry := NewRegistry(slog.Default())

	require.NoError(t, registry.RegisterAction(&models.Action{Name: "a", EventType: events.PodEvent}))
	err := registry.RegisterAction(&models.Action{Name: "a", EventType: events.NodeEvent})
	assert.ErrorIs(t, err, ErrActionAlreadyRegistered)

	field := models.NewTriggerField("on_x", &models.TriggerVariant{Type: "X", ExecutionEvent: events.PodEvent})
	require.NoError(t, registry.RegisterTriggerField(field))
	assert.ErrorIs(t, registry.RegisterTriggerField(field), ErrTriggerAlreadyRegistered)
}

func TestRegistry_RejectsInvalidComponents(t *testing.T) {
	tests := []struct {
		name     string
		register func(r *Registry) error
	}{
		{
			name: "action without name",
			register: func(r *Registry) error {
				return r.RegisterAction(&models.Action{EventType: events.PodEvent})
			},
		},
		{
			name: "action without event type",
			register: func(r *Registry) error {
				return r.RegisterAction(&models.Action{Name: "a"})
			},
		},
		{
			name: "trigger without variants",
			register: func(r *Registry) error {
				return r.RegisterTriggerField(models.NewTriggerField("on_nothing"))
			},
		},
		{
			name: "variant without event",
			register: func(r *Registry) error {
				return r.RegisterTriggerField(models.NewTriggerField("on_x", &models.TriggerVariant{Type: "X"}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.register(NewRegistry(slog.Default()))
			assert.ErrorIs(t, err, ErrInvalidComponent)
		})
	}
}

func TestRegistry_Defaults(t *testing.T) {
	registry, err := NewDefaultRegistry(slog.Default())
	require.NoError(t, err)

	list := registry.Actions()
	require.Len(t, list, len(actions.All()))

	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name)
	}

	field, ok := registry.TriggerField("on_schedule")
	require.True(t, ok)
	assert.Len(t, field.Variants, 2)

	assert.Equal(t, "on_pod_create", registry.TriggerFields()[0].Name)
}
