package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
}

func TestValidator_ReportsJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&signup{Email: "nope", Password: "short", Page: -1})
	require.Error(t, err)

	fields := FieldErrors(errors.WithStack(err))
	assert.ElementsMatch(t, []FieldError{
		{Field: "email", Rule: "email"},
		{Field: "password", Rule: "min", Param: "8"},
		{Field: "page", Rule: "min", Param: "1"},
	}, fields)
}

func TestValidator_CountsCharactersNotBytes(t *testing.T) {
	v := New()

	// 72 two-byte characters satisfy max=72 here; the byte limit lives in the usecase.
	password := ""
	for range 72 {
		password += "é"
	}

	assert.NoError(t, v.Validate(&signup{Email: "a@b.com", Password: password}))
}

func TestFieldErrors_OtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("plain")))
	assert.Nil(t, FieldErrors(nil))
}
