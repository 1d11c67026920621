package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrGroupAccess indicates that the acting user is not a member of the group
// they are operating on.
var ErrGroupAccess = errors.New("user has no access to group")

// ValidationError carries the full list of failed business-rule messages.
// It wraps ErrValidation so callers can match it with errors.Is.
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a ValidationError from collected failure messages.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
