package main

import (
	"codeberg.org/examdesk/server/examdesk/attempts"
	"codeberg.org/examdesk/server/examdesk/exams"
	"codeberg.org/examdesk/server/examdesk/users"
	"codeberg.org/examdesk/server/internal/auth"
	"codeberg.org/examdesk/server/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	tokenCodec  *auth.TokenCodec
	userRepo    *users.PgxRepository
	examRepo    *exams.PgxRepository
	attemptRepo *attempts.PgxRepository
	router      *gin.Engine
}
