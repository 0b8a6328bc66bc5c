// Package playbooks generates and checks example playbook configuration for
// the registered actions.
package playbooks

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoKnownTrigger indicates no registered trigger produces an event type.
	ErrNoKnownTrigger = errors.New("no known trigger for event")

	// ErrInvalidPlaybook indicates a playbook document failed validation.
	ErrInvalidPlaybook = errors.New("invalid playbook")
)

// IsNoKnownTrigger checks if an error indicates an event type without triggers.
func IsNoKnownTrigger(err error) bool {
	return errors.Is(err, ErrNoKnownTrigger)
}

// PlaybookError lists every problem found in a playbook document.
type PlaybookError struct {
	Problems []string
}

func (e *PlaybookError) Error() string {
	return fmt.Sprintf("%d problem(s) found: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *PlaybookError) Unwrap() error {
	return ErrInvalidPlaybook
}
