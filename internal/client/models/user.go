// Package models defines the client-side data models of the blog API.
package models

// User is the profile returned by GET /user/current.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Credentials are sent as query parameters of POST /login.
type Credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Registration is the body of POST /auth/register.
type Registration struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}
