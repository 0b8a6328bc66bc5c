package models

// TriggerParamsValidator checks trigger parameters beyond what the JSON schema
// can express.
type TriggerParamsValidator func(params map[string]any) error

// TriggerVariant is one concrete way to configure a trigger. It produces
// exactly one execution event type.
type TriggerVariant struct {
	Type           string                 `json:"type" validate:"required"`
	ExecutionEvent *EventType             `json:"-" validate:"required"`
	ParamsSchema   map[string]any         `json:"params_schema,omitempty"`
	ValidateParams TriggerParamsValidator `json:"-"`
}

// TriggerField is a named entry of the trigger schema. The name is the
// identifier written in playbook configuration. A field accepts any of its
// variants.
type TriggerField struct {
	Name     string            `json:"name" validate:"required"`
	Variants []*TriggerVariant `json:"variants" validate:"required,min=1,dive,required"`
}

// NewTriggerField creates a field accepting the given variants.
func NewTriggerField(name string, variants ...*TriggerVariant) *TriggerField {
	return &TriggerField{Name: name, Variants: variants}
}
