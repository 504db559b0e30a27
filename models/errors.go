package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

const (
	MsgListNotFound = "The specified list was not found."
	MsgTodoNotFound = "The specified todo was not found."
)

// Lookup errors, rendered as a flash message followed by a redirect
var (
	ErrListNotFound = errors.Wrap(NotFoundError, MsgListNotFound)
	ErrTodoNotFound = errors.Wrap(NotFoundError, MsgTodoNotFound)
)

// ValidationError carries a message meant to be shown to the user as is.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return BadParameterError
}

// ValidationMessage returns the user facing message of a validation error wrapped anywhere in err.
func ValidationMessage(err error) (string, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message, true
	}
	return "", false
}
