package forms

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestValidate_Credentials(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		in    models.Credentials
		field string
		want  string
	}{
		{"missing email", models.Credentials{Password: "cityslicka"}, "email", "Email is required"},
		{"bad email", models.Credentials{Email: "eve", Password: "cityslicka"}, "email", "Invalid email format"},
		{"missing password", models.Credentials{Email: "eve.holt@reqres.in"}, "password", "Password is required"},
		{"short password", models.Credentials{Email: "eve.holt@reqres.in", Password: "abc"}, "password", "Password must be at least 8 characters long"},
		{"long password", models.Credentials{Email: "eve.holt@reqres.in", Password: "abcdefghijklmnopqrstuvwxyz"}, "password", "Password can't exceed 20 characters"},
		{"no lowercase", models.Credentials{Email: "eve.holt@reqres.in", Password: "ABCDEFGH1"}, "password", "Password must contain at least one lowercase letter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			require.ErrorIs(t, err, ErrInvalid)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			require.Equal(t, tt.want, ve.Fields[tt.field])
		})
	}

	require.NoError(t, v.Validate(models.Credentials{Email: "eve.holt@reqres.in", Password: "cityslicka"}))
}

func TestValidate_UserInput(t *testing.T) {
	v := New()

	err := v.Validate(models.UserInput{Email: "nope", Avatar: "not a url"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, map[string]string{
		"first_name": "First name is required",
		"last_name":  "Last name is required",
		"email":      "Invalid email format",
		"avatar":     "Invalid URL",
	}, ve.Fields)
	require.Equal(t, "Invalid URL; Invalid email format; First name is required; Last name is required", ve.Error())

	require.NoError(t, v.Validate(&models.UserInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
		Avatar:    "https://example.com/a.png",
	}))
}

func TestValidate_NotAStruct(t *testing.T) {
	err := New().Validate(42)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrInvalid))
}
