package adapter

import (
	"errors"
	"strings"
)

var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access to the resource is forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationFailedError carries the per-field messages from a 400 response,
// exactly as the server reported them.
type ValidationFailedError struct {
	Messages []string
}

func (e *ValidationFailedError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// AsValidationFailed unwraps err into a *ValidationFailedError if it is one.
func AsValidationFailed(err error) (*ValidationFailedError, bool) {
	var validationErr *ValidationFailedError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
