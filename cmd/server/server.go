package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"codeberg.org/examdesk/server/examdesk/attempts"
	"codeberg.org/examdesk/server/examdesk/exams"
	"codeberg.org/examdesk/server/examdesk/users"
	"codeberg.org/examdesk/server/internal/auth"
	"codeberg.org/examdesk/server/internal/config"
	"codeberg.org/examdesk/server/internal/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	// the token codec fails here on a missing secret, before any request
	// can be served with an unsigned token
	tokenCodec, err := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("configuring token codec: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(ctx, cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		db:          db,
		config:      cfg,
		tokenCodec:  tokenCodec,
		userRepo:    users.NewRepository(db),
		examRepo:    exams.NewRepository(db),
		attemptRepo: attempts.NewRepository(db),
		router:      gin.Default(),
	}

	RegisterRoutes(server.router, server)

	return server, nil
}

// applies embedded schema migrations over a database/sql connection
func runMigrations(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}

	defer db.Close() //nolint:errcheck // best-effort close of migration connection

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}
