// Package config loads process configuration from the environment once at
// startup. Handlers and repositories never read the environment directly.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionTTL is how long a session cookie and its server-side session
// remain valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Config holds all runtime settings for the server process.
type Config struct {
	// Env is the deployment environment ("development" or "production").
	// The session cookie is only marked Secure in production.
	Env string

	// Port is the HTTP listen port.
	Port string

	// DatabaseURL is a PostgreSQL DSN. When empty the server falls back to
	// a local SQLite file (SQLitePath).
	DatabaseURL string

	// SQLitePath is the SQLite database file used when DatabaseURL is empty.
	SQLitePath string

	// RedisAddr is the host:port of the Redis session store. Empty disables
	// Redis and sessions are kept in the relational store instead.
	RedisAddr     string
	RedisPassword string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// CORSOrigin is the allowed frontend origin.
	CORSOrigin string

	// SessionTTL is the lifetime of issued sessions.
	SessionTTL time.Duration

	// RunMigrations enables gorm AutoMigrate at startup.
	RunMigrations bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:           getEnv("ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "twitchplanner.db"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:5173"),
		SessionTTL:    DefaultSessionTTL,
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
