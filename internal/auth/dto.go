package auth

import (
	"github.com/agrisense-io/agrisense-backend/internal/users"
)

// RegisterRequest contains the payload for creating an account. Role is
// optional and defaults to farmer.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest carries the credential pair.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    *users.UserDTO `json:"user"`
}
