package dto

import "github.com/aarondl/null/v8"

type LoginDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email_shape"`
	Password string `json:"password" validate:"required,min=6"`
}

// CurrentUserDTO is the projection of the authenticated user that the
// session exposes.
type CurrentUserDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type UserDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type SessionDTO struct {
	IsAuthenticated bool            `json:"is_authenticated"`
	CurrentUser     *CurrentUserDTO `json:"current_user,omitempty"`
	Error           null.String     `json:"error,omitempty"`
}
