package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidationMessages(t *testing.T) {
	v := validator.New()

	type createProject struct {
		Name        string `validate:"required,min=3"`
		Description string
	}

	t.Run("name too short", func(t *testing.T) {
		err := v.Struct(createProject{Name: "ab"})
		assert.Equal(t, []string{"Name must be at least 3 characters long"}, ValidationMessages(err))
	})

	t.Run("missing name", func(t *testing.T) {
		err := v.Struct(createProject{})
		assert.Equal(t, []string{"Name is required"}, ValidationMessages(err))
	})

	t.Run("all violations listed", func(t *testing.T) {
		type signup struct {
			Name     string `validate:"required"`
			Email    string `validate:"required,email"`
			Password string `validate:"required,min=6"`
		}

		msgs := ValidationMessages(v.Struct(signup{Email: "not-an-email", Password: "abc"}))
		assert.Contains(t, msgs, "Name is required")
		assert.Contains(t, msgs, "Email must be a valid email address")
		assert.Contains(t, msgs, "Password must be at least 6 characters long")
	})

	t.Run("non-validation error", func(t *testing.T) {
		assert.Equal(t, []string{"Invalid request body"}, ValidationMessages(errors.New("boom")))
	})
}
