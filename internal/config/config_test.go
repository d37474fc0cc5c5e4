package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.PoolSize != 5 || cfg.Database.MaxOverflow != 10 {
		t.Errorf("pool = (%d, %d), want (5, 10)", cfg.Database.PoolSize, cfg.Database.MaxOverflow)
	}
	if cfg.JWT.TokenDuration != 24*time.Hour {
		t.Errorf("TokenDuration = %v, want 24h", cfg.JWT.TokenDuration)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_POOL_SIZE", "20")
	t.Setenv("JWT_TOKEN_DURATION", "1h")
	t.Setenv("ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.PoolSize != 20 {
		t.Errorf("PoolSize = %d, want 20", cfg.Database.PoolSize)
	}
	if cfg.JWT.TokenDuration != time.Hour {
		t.Errorf("TokenDuration = %v, want 1h", cfg.JWT.TokenDuration)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[0] != want[0] || cfg.Server.AllowedOrigins[1] != want[1] {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.Server.AllowedOrigins, want)
	}
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err != ErrMissingJWTSecret {
		t.Errorf("Load() error = %v, want ErrMissingJWTSecret", err)
	}
}
