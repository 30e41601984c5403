package config

import "time"

// Config holds all deployment-time configuration, loaded once at startup and
// passed by injection. Components never read environment variables directly.
type Config struct {
	DatabaseURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	Environment    string
	Port           string
	AllowedOrigins []string
}
