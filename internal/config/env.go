package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultTokenTTL = time.Hour

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")
	origins := os.Getenv("ALLOWED_ORIGINS")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "8080"
	}

	tokenTTL := defaultTokenTTL
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL value %q: %w", ttl, err)
		}

		tokenTTL = parsed
	}

	var allowedOrigins []string

	if origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	return &Config{
		DatabaseURL:    databaseURL,
		JWTSecret:      jwtSecret,
		TokenTTL:       tokenTTL,
		Environment:    environment,
		Port:           port,
		AllowedOrigins: allowedOrigins,
	}, nil
}
