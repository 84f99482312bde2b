package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *InputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIndeterminateComparison marks a comparison where at least one route
	// has no positive income to compare against.
	ErrIndeterminateComparison = errors.New("indeterminate comparison")
)

// InputError reports a parameter outside its documented domain.
type InputError struct {
	Parameter string
	Reason    string
}

// NewInputError creates an InputError for the named parameter.
func NewInputError(parameter, reason string) *InputError {
	return &InputError{Parameter: parameter, Reason: reason}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Parameter, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match any InputError.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
