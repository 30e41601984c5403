package auth

import (
	"codeberg.org/examdesk/server/examdesk/users"
	"codeberg.org/examdesk/server/internal/auth"
)

// RegisterRequest carries a new account registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse returned after successful registration
type RegisterResponse struct {
	Message string    `json:"message"`
	UserID  int64     `json:"user_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    auth.Role `json:"role"`
}

// LoginResponse returned after successful login
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    *users.User `json:"user"`
}

// Identity is the token claim payload echoed on identity endpoints
type Identity struct {
	ID    int64     `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  auth.Role `json:"role"`
}

// ProfileResponse wraps the authenticated identity
type ProfileResponse struct {
	Message string   `json:"message"`
	User    Identity `json:"user"`
}

// AdminAreaResponse returned from the admin-only endpoint
type AdminAreaResponse struct {
	Message string   `json:"message"`
	Admin   Identity `json:"admin"`
}
