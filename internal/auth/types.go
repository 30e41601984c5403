package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// reports whether the role is one of the enumerated values
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// parses a role string, rejecting anything outside the enumerated set
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("invalid role %q", s)
	}

	return role, nil
}

// represents the identity claim carried inside a token
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}
