package models

// Action describes a registered action: its name, the execution event it is
// declared against and the schema of its parameters.
type Action struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	EventType   *EventType `json:"-" validate:"required"`

	// ParamsSchema is the JSON schema of the action parameters. It may use
	// "definitions" and local "$ref" references. Nil when the action takes no
	// parameters.
	ParamsSchema map[string]any `json:"params_schema,omitempty"`

	// FromParams is the schema of the parameters used to build the event when
	// the action is triggered manually. Nil when the event cannot be built
	// from parameters.
	FromParams map[string]any `json:"from_params,omitempty"`
}

// HasParams reports whether the action declares a parameter schema.
func (a *Action) HasParams() bool {
	return len(a.ParamsSchema) > 0
}

// RequiredParams returns the required parameter fields of the action.
func (a *Action) RequiredParams() []string {
	return SchemaRequired(a.ParamsSchema)
}
