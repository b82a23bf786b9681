package idp

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartcampus/internal/auth"
)

const bcryptCost = 10

// Directory is the GORM-backed Provider implementation. It is the sole
// source of truth for portal accounts; the directory table replaces the
// hosted user pool of the original deployment behind the same call surface.
type Directory struct {
	db     *gorm.DB
	tokens *auth.JWTService
}

var _ Provider = (*Directory)(nil)

// NewDirectory builds a directory provider issuing tokens from jwtService.
func NewDirectory(db *gorm.DB, tokens *auth.JWTService) *Directory {
	return &Directory{db: db, tokens: tokens}
}

// InitiateAuth verifies the password and mints a signed access token.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (d *Directory) InitiateAuth(ctx context.Context, userID, password string) (string, error) {
	acct, err := d.GetUser(ctx, userID)
	if err != nil {
		return "", ErrNotAuthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return "", ErrNotAuthorized
	}
	token, err := d.tokens.GenerateAccessToken(acct.UserID, acct.UserType)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

// GetUser returns the account or ErrUserNotFound.
func (d *Directory) GetUser(ctx context.Context, userID string) (*Account, error) {
	var acct Account
	if err := d.db.WithContext(ctx).First(&acct, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// FindByEmail returns the account with the given email or ErrUserNotFound.
func (d *Directory) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var acct Account
	if err := d.db.WithContext(ctx).First(&acct, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// ListUsers returns every account, unordered.
func (d *Directory) ListUsers(ctx context.Context) ([]Account, error) {
	var accts []Account
	if err := d.db.WithContext(ctx).Find(&accts).Error; err != nil {
		return nil, err
	}
	return accts, nil
}

// CreateUser provisions an enabled, unconfirmed account holding the hashed
// temporary password. Confirmation happens through a permanent SetPassword.
func (d *Directory) CreateUser(ctx context.Context, acct *Account, tempPassword string) error {
	existing, err := d.GetUser(ctx, acct.UserID)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return ErrUsernameExists
	}
	if byEmail, err := d.FindByEmail(ctx, acct.Email); err == nil && byEmail != nil {
		return ErrUsernameExists
	} else if err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	acct.PasswordHash = string(hash)
	acct.Enabled = true
	acct.Confirmed = false
	return d.db.WithContext(ctx).Create(acct).Error
}

// SetPassword replaces the stored hash; permanent marks the account confirmed.
func (d *Directory) SetPassword(ctx context.Context, userID, password string, permanent bool) error {
	acct, err := d.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	acct.PasswordHash = string(hash)
	if permanent {
		acct.Confirmed = true
	}
	return d.db.WithContext(ctx).Save(acct).Error
}

// UpdateAttributes applies the non-nil attribute fields.
func (d *Directory) UpdateAttributes(ctx context.Context, userID string, attrs Attributes) error {
	acct, err := d.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if attrs.Name != nil {
		acct.Name = *attrs.Name
	}
	if attrs.Email != nil {
		acct.Email = *attrs.Email
	}
	if attrs.UserType != nil {
		acct.UserType = *attrs.UserType
	}
	return d.db.WithContext(ctx).Save(acct).Error
}

// DeleteUser removes the account. Deleting an unknown user is an error,
// matching provider semantics.
func (d *Directory) DeleteUser(ctx context.Context, userID string) error {
	res := d.db.WithContext(ctx).Delete(&Account{}, "user_id = ?", userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
