package users

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/examdesk/server/internal/auth"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("user already exists with this email")
)

// postgres unique constraint violation
const pgUniqueViolation = "23505"

// Repository is the credential store contract consumed by the auth handlers.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, name, email, passwordHash string, role auth.Role) (*User, error)
}

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *PgxRepository {
	return &PgxRepository{db: db}
}

// finds a user by email, including the stored password hash
func (r *PgxRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	var role string

	err := r.db.QueryRow(ctx, queryFindByEmail, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("finding user by email: %w", err)
	}

	user.Role = auth.Role(role)

	return &user, nil
}

// inserts a new user record. The unique constraint on email makes concurrent
// registrations with the same address lose with ErrDuplicateEmail instead of
// creating a second row.
func (r *PgxRepository) Create(
	ctx context.Context,
	name, email, passwordHash string,
	role auth.Role,
) (*User, error) {
	var user User
	var storedRole string

	err := r.db.QueryRow(ctx, queryInsertUser, name, email, passwordHash, string(role)).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&storedRole,
		&user.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}

		return nil, fmt.Errorf("creating user: %w", err)
	}

	user.Role = auth.Role(storedRole)

	return &user, nil
}
