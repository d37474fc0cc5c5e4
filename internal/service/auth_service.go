// Package service implements the application operations behind the HTTP
// handlers: account management, plan lifecycle and world reference queries.
// Services speak models and apperr; they know nothing about HTTP.
package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"unicode/utf8"

	"github.com/mmynk/tripcraft/internal/apperr"
	"github.com/mmynk/tripcraft/internal/auth"
	"github.com/mmynk/tripcraft/internal/models"
)

const (
	minNameLength = 4
	maxNameLength = 18
)

// AuthService handles signup and login, issuing session tokens.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Signup registers a new account and returns a session token for it.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, error) {
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		return "", apperr.InvalidRequest("name must be between 4 and 18 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", apperr.InvalidRequest("invalid email address")
	}

	user, err := s.authenticator.Register(ctx, email, name, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return "", apperr.InvalidRequest("email is already in use")
		case errors.Is(err, auth.ErrWeakPassword):
			return "", apperr.InvalidRequest(auth.ErrWeakPassword.Error())
		default:
			s.logger.Error("Failed to register user", "email", email, "error", err)
			return "", apperr.Internal("failed to register user")
		}
	}

	s.logger.Info("User registered", "user_id", user.ID)
	return s.issueToken(user)
}

// Login authenticates an existing account and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		// Unknown email and wrong password are deliberately the same error.
		return "", apperr.Unauthorized()
	}
	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return "", apperr.Internal("failed to generate token")
	}
	return token, nil
}
