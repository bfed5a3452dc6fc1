package validators

import (
	"context"
	"testing"

	"github.com/avdeev/go-coursebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_UserRegistration_Valid(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.UserRegistration{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
		Password:     "secret123",
	})

	assert.NoError(t, err)
}

func TestValidate_UserRegistration_AllFieldsMissing(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.UserRegistration{})
	require.Error(t, err)

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)

	assert.ElementsMatch(t, []string{
		`Please provide a value for "firstName"`,
		`Please provide a value for "lastName"`,
		`Please provide a value for "emailAddress"`,
		`Please provide a value for "password"`,
	}, validationErr.Messages)
}

func TestValidate_UserRegistration_InvalidEmail(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.UserRegistration{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "not-an-email",
		Password:     "secret123",
	})
	require.Error(t, err)

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Please provide a valid email address"}, validationErr.Messages)
}

func TestValidate_CourseInput(t *testing.T) {
	tests := []struct {
		name     string
		input    models.CourseInput
		expected []string
	}{
		{
			name:  "valid with optional fields empty",
			input: models.CourseInput{Title: "Build a Basic Bookcase", Description: "High-end furniture..."},
		},
		{
			name:  "missing title",
			input: models.CourseInput{Description: "d"},
			expected: []string{
				`Please provide a value for "title"`,
			},
		},
		{
			name:  "missing both required fields",
			input: models.CourseInput{EstimatedTime: "12 hours"},
			expected: []string{
				`Please provide a value for "title"`,
				`Please provide a value for "description"`,
			},
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.input)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}

			validationErr, ok := AsValidationError(err)
			require.True(t, ok)
			assert.ElementsMatch(t, tt.expected, validationErr.Messages)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Messages: []string{"a", "b"}}
	assert.Equal(t, "validation failed: a; b", err.Error())
}
