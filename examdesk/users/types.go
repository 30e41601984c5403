package users

import (
	"time"

	"codeberg.org/examdesk/server/internal/auth"
	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type PgxRepository struct {
	db *pgxpool.Pool
}

// represents a registered account
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         auth.Role `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
