package exams

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles exam database operations
type PgxRepository struct {
	db *pgxpool.Pool
}

// represents an exam definition
type Exam struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	PassingScore    float64   `json:"passing_score"`
	CreatedBy       int64     `json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// UpdateFields carries the optional columns of a partial exam update; nil
// fields are left untouched.
type UpdateFields struct {
	Title           *string
	Description     *string
	DurationMinutes *int
	PassingScore    *float64
}
