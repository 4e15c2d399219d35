package user

import (
	"fmt"
	"strings"
	"time"

	"anishop/internal/shared/biztime"
)

// User is a registered customer account. Guests can place orders without
// one; accounts exist so customers can list their own orders.
type User struct {
	id           string
	email        string
	passwordHash string
	displayName  string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user with an externally generated UUID and an already
// hashed password.
func NewUser(id, email, passwordHash, displayName string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from the persistence layer.
func ReconstructUser(id, email, passwordHash, displayName string, createdAt, updatedAt time.Time) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() string           { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
