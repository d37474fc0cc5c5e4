package auth

import (
	"testing"
	"time"

	"github.com/mmynk/tripcraft/internal/models"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "user-123", Name: "Alice Smith", Email: "alice@example.com"}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.UserID() != "user-123" {
		t.Errorf("UserID() = %q, want user-123", claims.UserID())
	}
	if claims.Email != "alice@example.com" || claims.Name != "Alice Smith" {
		t.Errorf("claims = %+v, want alice's email and name", claims)
	}
}

func TestValidateRejectsBadTokens(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "user-123", Email: "alice@example.com"}

	t.Run("garbage", func(t *testing.T) {
		if _, err := manager.Validate("not.a.token"); err == nil {
			t.Error("Validate() succeeded on garbage token")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		token, err := other.Generate(user)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if _, err := manager.Validate(token); err == nil {
			t.Error("Validate() accepted a token signed with a different secret")
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if _, err := manager.Validate(token); err == nil {
			t.Error("Validate() accepted an expired token")
		}
	})
}
