package wizard

import (
	"errors"
	"fmt"
)

// Failure classes surfaced by the wizard. Only ErrValidation originates in this
// package; the others classify collaborator failures for the layers above.
var (
	ErrValidation = errors.New("validation failed")
	ErrNetwork    = errors.New("network failure")
	ErrNotFound   = errors.New("not found")
	ErrTimeout    = errors.New("timed out")
)

// ValidationError explains why an action was rejected. The session is unchanged.
type ValidationError struct {
	Stage  Stage
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Stage, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(stage Stage, field, reason string) *ValidationError {
	return &ValidationError{Stage: stage, Field: field, Reason: reason}
}
