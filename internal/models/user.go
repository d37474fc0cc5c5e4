package models

import (
	"github.com/google/uuid"
)

// User is a registered account. A user exclusively owns its credential rows.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name.
	Name string

	// Email is the login email (unique).
	Email string

	// IsValid marks whether the account has been verified.
	IsValid bool

	// Credentials are the password hashes owned by this user.
	Credentials []Credential

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// Credential is one password hash row belonging to a user.
type Credential struct {
	UserID       string
	PasswordHash string
}

// NewUser builds an unverified user with a generated ID and one credential.
func NewUser(name, email, passwordHash string) *User {
	id := uuid.New().String()
	return &User{
		ID:      id,
		Name:    name,
		Email:   email,
		IsValid: false,
		Credentials: []Credential{
			{UserID: id, PasswordHash: passwordHash},
		},
	}
}
