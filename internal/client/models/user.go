// Package models defines the records exchanged with the user-management API.
package models

// User is a record of the remote user directory. ID is assigned by the
// server.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// Merge returns u with every non-empty field of patch copied over it.
// The ID of u is kept.
func (u User) Merge(patch User) User {
	if patch.Email != "" {
		u.Email = patch.Email
	}
	if patch.FirstName != "" {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		u.LastName = patch.LastName
	}
	if patch.Avatar != "" {
		u.Avatar = patch.Avatar
	}
	return u
}

// FullName joins first and last name with a space.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserInput is the body of create and update calls. Empty fields are left
// out of the JSON so an update only carries what changed.
type UserInput struct {
	FirstName string `json:"first_name,omitempty" validate:"required" label:"First name"`
	LastName  string `json:"last_name,omitempty" validate:"required" label:"Last name"`
	Email     string `json:"email,omitempty" validate:"required,email" label:"Email"`
	Avatar    string `json:"avatar,omitempty" validate:"required,url" label:"Profile image link"`
}

// Credentials are posted to the sign-in endpoint.
type Credentials struct {
	Email    string `json:"email" validate:"required,email,min=5,max=50" label:"Email"`
	Password string `json:"password" validate:"required,min=8,max=20,containsany=abcdefghijklmnopqrstuvwxyz" label:"Password"`
}

// Pagination describes one page of the user list as reported by the server.
// TotalPages is trusted verbatim.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Support is the informational banner the list endpoint returns.
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// UsersPage is a successful list response.
type UsersPage struct {
	Data       []User
	Pagination Pagination
	Support    Support
}
