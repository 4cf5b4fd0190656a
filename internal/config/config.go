// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env             string
	ListenAddr      string
	DatabasePath    string
	JWTSecret       []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	AuthRateLimit   int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(v); err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if out, err := time.ParseDuration(v); err == nil {
			return out
		}
	}
	return def
}

// Load reads the configuration. A missing JWT_SECRET is returned as an error
// value so the caller decides whether to refuse startup.
func Load() (Config, error) {
	cfg := Config{
		Env:             getenv("APP_ENV", "development"),
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		DatabasePath:    getenv("DATABASE_PATH", "vitrina.db"),
		JWTSecret:       []byte(os.Getenv("JWT_SECRET")),
		AccessTokenTTL:  getenvDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: getenvDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour),
		AuthRateLimit:   getenvInt("AUTH_RATE_LIMIT", 10),
	}
	if len(cfg.JWTSecret) == 0 {
		return cfg, fmt.Errorf("JWT_SECRET not set")
	}
	return cfg, nil
}

// CheckDatabase validates the database configuration for the db-status
// endpoint: unset or placeholder paths are flagged before any connection is
// attempted.
func (c Config) CheckDatabase() (bool, string) {
	if c.DatabasePath == "" {
		return false, "DATABASE_PATH is not set. Configure the path to the SQLite database file."
	}
	if c.DatabasePath == "your-database.db" {
		return false, "DATABASE_PATH contains a placeholder value. Replace it with the real database path."
	}
	return true, "Database configuration is valid."
}
