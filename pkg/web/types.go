package web

// ActionDoc documents one action.
type ActionDoc struct {
	Name              string         `json:"name"`
	Description       string         `json:"description,omitempty"`
	EventType         string         `json:"event_type"`
	SupportedTriggers []string       `json:"supported_triggers"`
	ManualTriggerCmd  string         `json:"manual_trigger_cmd,omitempty"`
	ParamsSchema      map[string]any `json:"params_schema,omitempty"`
}

// ValidationResult is returned by the playbook validation endpoint.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}
