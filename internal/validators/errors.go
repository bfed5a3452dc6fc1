package validators

import (
	"errors"
	"strings"
)

// MsgEmailAlreadyTaken is the message reported when the email uniqueness
// rule is violated at the storage level. It is merged into the same 400
// response as the tag-based messages.
const MsgEmailAlreadyTaken = "The email address you provided is already in use"

// ValidationError carries one human-readable message per violated rule.
// It is the error type that request handlers translate into a 400 response.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
