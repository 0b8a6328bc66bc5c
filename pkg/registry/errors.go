package registry

import "errors"

var (
	// ErrActionNotFound indicates no action is registered under the given name.
	ErrActionNotFound = errors.New("action not registered")

	// ErrActionAlreadyRegistered indicates an action name is used twice.
	ErrActionAlreadyRegistered = errors.New("action already registered")

	// ErrTriggerAlreadyRegistered indicates a trigger field name is used twice.
	ErrTriggerAlreadyRegistered = errors.New("trigger already registered")

	// ErrInvalidComponent indicates a component failed struct validation.
	ErrInvalidComponent = errors.New("invalid component")
)

// IsActionNotFound checks if an error indicates an unknown action.
func IsActionNotFound(err error) bool {
	return errors.Is(err, ErrActionNotFound)
}
