package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/tripcraft/internal/apperr"
	"github.com/mmynk/tripcraft/internal/auth"
	"github.com/mmynk/tripcraft/internal/storage/sqlite"
)

func newTestAuthService(t *testing.T) (*AuthService, *auth.JWTManager) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"), 1, 0)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, slog.Default())
	return svc, jwtManager
}

func TestSignup(t *testing.T) {
	svc, jwtManager := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.Signup(ctx, "Alice Smith", "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	claims, err := jwtManager.Validate(token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Email != "alice@example.com" || claims.Name != "Alice Smith" {
		t.Errorf("claims = %+v, want alice's email and name", claims)
	}
	if claims.UserID() == "" {
		t.Error("claims carry no subject user id")
	}
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "Dup User", "dup@example.com", "secret123"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"name too short", "Al", "short@example.com", "secret123"},
		{"name too long", "An Extremely Long Display Name", "long@example.com", "secret123"},
		{"invalid email", "Valid Name", "not-an-email", "secret123"},
		{"password too short", "Valid Name", "weak@example.com", "12345"},
		{"password too long", "Valid Name", "strong@example.com", "123456789012345678901234567890123"},
		{"duplicate email", "Valid Name", "dup@example.com", "secret123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tt.userName, tt.email, tt.password)
			if apperr.From(err).Code != apperr.CodeInvalidRequest {
				t.Errorf("Signup() error = %v, want INVALID_REQUEST", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	svc, jwtManager := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "Bob Jones", "bob@example.com", "secret123"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login(ctx, "bob@example.com", "secret123")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if _, err := jwtManager.Validate(token); err != nil {
			t.Errorf("issued token failed validation: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "bob@example.com", "wrong-password")
		if apperr.From(err).Code != apperr.CodeUnauthorized {
			t.Errorf("Login() error = %v, want UNAUTHORIZED", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "secret123")
		if apperr.From(err).Code != apperr.CodeUnauthorized {
			t.Errorf("Login() error = %v, want UNAUTHORIZED", err)
		}
	})
}
