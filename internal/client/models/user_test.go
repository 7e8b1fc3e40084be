package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Merge(t *testing.T) {
	u := User{ID: 2, Email: "janet.weaver@reqres.in", FirstName: "Janet", LastName: "Weaver", Avatar: "https://reqres.in/img/faces/2-image.jpg"}

	got := u.Merge(User{ID: 99, FirstName: "Jane"})

	assert.Equal(t, User{ID: 2, Email: "janet.weaver@reqres.in", FirstName: "Jane", LastName: "Weaver", Avatar: "https://reqres.in/img/faces/2-image.jpg"}, got)
	assert.Equal(t, "Janet", u.FirstName, "receiver must not change")
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ann Lee", User{FirstName: "Ann", LastName: "Lee"}.FullName())
	assert.Equal(t, "Ann", User{FirstName: "Ann"}.FullName())
	assert.Equal(t, "Lee", User{LastName: "Lee"}.FullName())
}

func TestUserInput_OmitsEmptyFields(t *testing.T) {
	b, err := json.Marshal(UserInput{LastName: "Holt"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"last_name":"Holt"}`, string(b))
}
