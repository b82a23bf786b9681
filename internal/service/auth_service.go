package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"time"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/idp"
	"smartcampus/internal/model"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 12
)

type demoAccount struct {
	password string
	userType string
	name     string
	email    string
}

// Built-in demo accounts checked before the identity provider. Their tokens
// are unsigned base64 payloads, good for demos only.
var demoAccounts = map[string]demoAccount{
	"admin001":   {password: "Pass123!", userType: "Admin", name: "Administrator", email: "admin001@campus.edu"},
	"student001": {password: "Pass123!", userType: "Student", name: "John Doe", email: "student001@campus.edu"},
	"student002": {password: "Pass123!", userType: "Student", name: "Jane Smith", email: "student002@campus.edu"},
}

// AuthService handles portal login.
type AuthService interface {
	Login(ctx context.Context, userID, password, userType string) (*model.SessionUser, error)
}

type authService struct {
	provider idp.Provider
}

// NewAuthService creates a new authentication service.
func NewAuthService(provider idp.Provider) AuthService {
	return &authService{provider: provider}
}

// Login validates the request, tries the demo accounts and then delegates to
// the identity provider. Every provider-side failure other than a user-type
// mismatch or a disabled account collapses to ErrInvalidCredentials so the
// response never reveals which check failed.
func (s *authService) Login(ctx context.Context, userID, password, userType string) (*model.SessionUser, error) {
	if userID == "" || password == "" || userType == "" {
		return nil, apperrors.ErrMissingFields
	}
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return nil, apperrors.ErrPasswordLength
	}

	if demo, ok := demoAccounts[userID]; ok && demo.password == password && demo.userType == userType {
		return &model.SessionUser{
			ID:       userID,
			UserType: demo.userType,
			Name:     demo.name,
			Email:    demo.email,
			Token:    demoToken(userID, demo.userType),
		}, nil
	}

	token, err := s.provider.InitiateAuth(ctx, userID, password)
	if err != nil {
		log.Printf("auth: provider rejected %q: %v", userID, err)
		return nil, apperrors.ErrInvalidCredentials
	}

	acct, err := s.provider.GetUser(ctx, userID)
	if err != nil {
		log.Printf("auth: profile lookup failed for %q: %v", userID, err)
		return nil, apperrors.ErrInvalidCredentials
	}
	if acct.UserType != userType {
		return nil, apperrors.ErrInvalidUserType
	}
	if !acct.Enabled {
		return nil, apperrors.ErrUserDisabled
	}

	return &model.SessionUser{
		ID:       acct.UserID,
		UserType: acct.UserType,
		Name:     acct.Name,
		Email:    acct.Email,
		Token:    token,
	}, nil
}

// demoToken encodes an opaque, unsigned session token for demo accounts.
func demoToken(userID, userType string) string {
	payload, _ := json.Marshal(map[string]interface{}{
		"userId":    userID,
		"userType":  userType,
		"timestamp": time.Now().UnixMilli(),
	})
	return base64.StdEncoding.EncodeToString(payload)
}
