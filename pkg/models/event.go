package models

// EventType is a node in the execution event hierarchy. An action declared
// against an event type accepts triggers producing that type or any of its
// descendants.
type EventType struct {
	Name  string       `json:"name" validate:"required"`
	Bases []*EventType `json:"-"`
}

// ExecutionBaseEvent is the root of the hierarchy. Actions declared against it
// accept any trigger.
var ExecutionBaseEvent = &EventType{Name: "ExecutionBaseEvent"}

// NewEventType creates an event type deriving from the given bases, in
// precedence order. An event type without bases derives from ExecutionBaseEvent.
func NewEventType(name string, bases ...*EventType) *EventType {
	if len(bases) == 0 {
		bases = []*EventType{ExecutionBaseEvent}
	}

	return &EventType{Name: name, Bases: bases}
}

// IsGeneric reports whether e is the root ExecutionBaseEvent.
func (e *EventType) IsGeneric() bool {
	return e != nil && e.Name == ExecutionBaseEvent.Name
}

// Ancestors returns every type e derives from, nearest first. Bases are walked
// depth-first left to right and each type appears once.
func (e *EventType) Ancestors() []*EventType {
	seen := map[*EventType]bool{e: true}
	ancestors := make([]*EventType, 0)

	var walk func(t *EventType)
	walk = func(t *EventType) {
		for _, base := range t.Bases {
			if seen[base] {
				continue
			}

			seen[base] = true
			ancestors = append(ancestors, base)
			walk(base)
		}
	}
	walk(e)

	return ancestors
}

// IsSubtypeOf reports whether e is other or derives from it.
func (e *EventType) IsSubtypeOf(other *EventType) bool {
	if e == other {
		return true
	}

	for _, a := range e.Ancestors() {
		if a == other {
			return true
		}
	}

	return false
}

func (e *EventType) String() string {
	return e.Name
}
