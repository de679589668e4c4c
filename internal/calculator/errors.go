package calculator

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched (errors.Is) by every rejection Compute returns.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes one rejected input or one physically inconsistent
// intermediate value.
type InputError struct {
	// Field is the input (or pipeline stage) that was rejected.
	Field string

	// Value is the offending value, when there is a single one.
	Value any

	// Reason is a human-readable explanation.
	Reason string

	// Err is the underlying cause from a pipeline stage, if any.
	Err error
}

// Error implements error.
func (e *InputError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Field, e.Reason)
	if e.Value != nil {
		msg = fmt.Sprintf("%s: %s (got %v)", e.Field, e.Reason, e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both ErrInvalidInput and the stage cause to errors.Is.
func (e *InputError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidInput, e.Err}
	}
	return []error{ErrInvalidInput}
}

func invalid(field string, value any, reason string) *InputError {
	return &InputError{Field: field, Value: value, Reason: reason}
}

func stageError(stage string, err error) *InputError {
	return &InputError{Field: stage, Reason: "inputs are physically inconsistent", Err: err}
}
