// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// DatabaseConfig holds SQLite settings. PoolSize connections are kept open;
// up to MaxOverflow more may be opened under load.
type DatabaseConfig struct {
	Path        string
	PoolSize    int
	MaxOverflow int
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret        string
	TokenDuration time.Duration
}

// RateLimitConfig bounds request rates on the credential endpoints.
type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

// ErrMissingJWTSecret is returned when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			AllowedOrigins: getSliceEnv("ALLOW_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			Path:        getEnv("DB_PATH", "./data/tripcraft.db"),
			PoolSize:    getIntEnv("DB_POOL_SIZE", 5),
			MaxOverflow: getIntEnv("DB_MAX_OVERFLOW", 10),
		},
		JWT: JWTConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			TokenDuration: getDurationEnv("JWT_TOKEN_DURATION", 24*time.Hour),
		},
		RateLimit: RateLimitConfig{
			PerSecond: getFloatEnv("RATE_LIMIT_PER_SECOND", 5),
			Burst:     getIntEnv("RATE_LIMIT_BURST", 5),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
