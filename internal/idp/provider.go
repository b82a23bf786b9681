// Package idp abstracts the identity provider backing login and the user
// directory. The operation surface mirrors an admin-initiated provider flow:
// password auth, profile lookup, provisioning with a permanent password,
// attribute updates and deletion.
package idp

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotAuthorized is returned when password verification fails.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrUserNotFound is returned when no account matches the username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameExists is returned when provisioning collides with an existing account.
	ErrUsernameExists = errors.New("username or email already exists")
)

// Account is a provider-side user record.
type Account struct {
	UserID       string `gorm:"primaryKey;size:64"`
	Name         string `gorm:"size:255"`
	Email        string `gorm:"uniqueIndex;size:255"`
	UserType     string `gorm:"size:32"`
	PasswordHash string `gorm:"size:255"`
	Enabled      bool
	Confirmed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName keeps provider accounts apart from the resource tables.
func (Account) TableName() string { return "directory_accounts" }

// Attributes is a partial attribute update; nil fields are left untouched.
type Attributes struct {
	Name     *string
	Email    *string
	UserType *string
}

// Provider is the identity-provider contract used by the auth gateway and
// the user directory service.
type Provider interface {
	// InitiateAuth verifies credentials and returns a provider access token.
	InitiateAuth(ctx context.Context, userID, password string) (string, error)
	GetUser(ctx context.Context, userID string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	ListUsers(ctx context.Context) ([]Account, error)
	// CreateUser provisions an unconfirmed account with a temporary password.
	CreateUser(ctx context.Context, acct *Account, tempPassword string) error
	// SetPassword replaces the password; permanent confirms the account.
	SetPassword(ctx context.Context, userID, password string, permanent bool) error
	UpdateAttributes(ctx context.Context, userID string, attrs Attributes) error
	DeleteUser(ctx context.Context, userID string) error
}
