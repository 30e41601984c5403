package errors

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// error categories for classification
const (
	CategoryDatabase   = "database"
	CategoryNetwork    = "network"
	CategoryValidation = "validation"
	CategoryAuth       = "auth"
	CategoryNotFound   = "not_found"
	CategoryTimeout    = "timeout"
	CategoryUnknown    = "unknown"
)

// postgres error code for unique constraint violations
const pgUniqueViolation = "23505"

type errorInfo struct {
	category  string
	sanitized string
}

// reports whether err is a postgres unique constraint violation
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// reports whether err means the query matched no rows
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// analyzes an error and returns its category and production-safe message
func classifyError(err error) errorInfo {
	if err == nil {
		return errorInfo{CategoryUnknown, ""}
	}

	// database errors (pgx-specific)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return errorInfo{CategoryDatabase, "database operation failed"}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errorInfo{CategoryNotFound, "resource not found"}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errorInfo{CategoryTimeout, "request timed out"}
	}

	if errors.Is(err, context.Canceled) {
		return errorInfo{CategoryTimeout, "request canceled"}
	}

	// fallback to string matching for unknown error types
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline") {
		return errorInfo{CategoryTimeout, "request timed out"}
	}

	if strings.Contains(errMsg, "not found") || strings.Contains(errMsg, "no rows") {
		return errorInfo{CategoryNotFound, "resource not found"}
	}

	if strings.Contains(errMsg, "database") || strings.Contains(errMsg, "sql") ||
		strings.Contains(errMsg, "postgres") || strings.Contains(errMsg, "pgx") {
		return errorInfo{CategoryDatabase, "database operation failed"}
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dial") {
		return errorInfo{CategoryNetwork, "connection error occurred"}
	}

	if strings.Contains(errMsg, "validation") || strings.Contains(errMsg, "binding") ||
		strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "required") {
		return errorInfo{CategoryValidation, "validation failed"}
	}

	if strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "forbidden") ||
		strings.Contains(errMsg, "permission") || strings.Contains(errMsg, "token") {
		return errorInfo{CategoryAuth, "permission denied"}
	}

	return errorInfo{CategoryUnknown, "an error occurred"}
}
