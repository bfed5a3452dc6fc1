// Package validators provides request-body validation for the REST API.
//
// Validation rules are declared with `validate` struct tags on the request
// DTOs in the models package and evaluated with go-playground/validator.
// Every violated rule is translated into one human-readable message, so a
// single 400 response can report all problems at once.
package validators

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	validator "github.com/go-playground/validator/v10"
)

// Validator defines a generic validation interface for request DTOs.
// Implementations return a [*ValidationError] carrying one message per
// violated rule, or nil when the input is valid.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}

// RequestValidator validates request DTOs using their `validate` struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator]. Field names in
// produced messages come from the DTO's json tags, matching the field names
// clients actually send.
func NewRequestValidator() *RequestValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate implements [Validator]. It evaluates all `validate` tags on obj
// and collects one message per violation.
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, messageFor(fieldError))
	}

	return &ValidationError{Messages: messages}
}

func messageFor(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("Please provide a value for %q", fieldError.Field())
	case "email":
		return "Please provide a valid email address"
	default:
		return fmt.Sprintf("Invalid value for %q", fieldError.Field())
	}
}
