package service

import (
	"context"
	"errors"
	"log"
	"time"

	"smartcampus/internal/cache"
	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/idp"
	"smartcampus/internal/model"
	"smartcampus/internal/notify"
)

const (
	userListCacheKey = "users:all"
	userListCacheTTL = 5 * time.Minute
)

// UserService manages directory users. The identity provider is the sole
// source of truth; the cache only accelerates listing and is invalidated on
// every mutation.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, userID, name, email, userType, password string) (*model.User, error)
	UpdateUser(ctx context.Context, userID string, password *string, attrs idp.Attributes) (*model.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	provider idp.Provider
	cache    *cache.Client
	mailer   notify.Mailer
	welcome  bool
}

// NewUserService builds a UserService over the identity provider. mailer may
// be nil; welcome mail is sent only when enabled and a mailer is configured.
func NewUserService(provider idp.Provider, cacheClient *cache.Client, mailer notify.Mailer, welcome bool) UserService {
	return &userService{provider: provider, cache: cacheClient, mailer: mailer, welcome: welcome}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	var cached []model.User
	if s.cache.GetJSON(ctx, userListCacheKey, &cached) {
		return cached, nil
	}

	accts, err := s.provider.ListUsers(ctx)
	if err != nil {
		log.Printf("users: provider list failed: %v", err)
		return nil, apperrors.ErrUpstream
	}
	users := make([]model.User, 0, len(accts))
	for _, acct := range accts {
		users = append(users, mapAccount(&acct))
	}

	s.cache.SetJSON(ctx, userListCacheKey, users, userListCacheTTL)
	return users, nil
}

// CreateUser provisions the user with a permanent password. A userId or
// email already known to the provider is a conflict and provisions nothing.
func (s *userService) CreateUser(ctx context.Context, userID, name, email, userType, password string) (*model.User, error) {
	acct := &idp.Account{
		UserID:   userID,
		Name:     name,
		Email:    email,
		UserType: userType,
	}
	if err := s.provider.CreateUser(ctx, acct, password); err != nil {
		if errors.Is(err, idp.ErrUsernameExists) {
			return nil, apperrors.ErrUserExists
		}
		log.Printf("users: provider create failed for %q: %v", userID, err)
		return nil, apperrors.ErrUpstream
	}
	if err := s.provider.SetPassword(ctx, userID, password, true); err != nil {
		log.Printf("users: permanent password failed for %q: %v", userID, err)
		return nil, apperrors.ErrUpstream
	}

	if s.welcome && s.mailer != nil {
		// best effort, account creation already succeeded
		if err := s.mailer.SendWelcome(ctx, name, email, userID); err != nil {
			log.Printf("users: welcome mail failed for %q: %v", userID, err)
		}
	}

	_ = s.cache.Delete(ctx, userListCacheKey)

	created, err := s.provider.GetUser(ctx, userID)
	if err != nil {
		log.Printf("users: readback failed for %q: %v", userID, err)
		return nil, apperrors.ErrUpstream
	}
	user := mapAccount(created)
	return &user, nil
}

// UpdateUser changes the password and/or profile attributes. Both provider
// paths surface failure uniformly instead of swallowing attribute errors.
func (s *userService) UpdateUser(ctx context.Context, userID string, password *string, attrs idp.Attributes) (*model.User, error) {
	if userID == "" {
		return nil, apperrors.ErrMissingID
	}
	if _, err := s.provider.GetUser(ctx, userID); err != nil {
		if errors.Is(err, idp.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		log.Printf("users: provider lookup failed for %q: %v", userID, err)
		return nil, apperrors.ErrUpstream
	}

	if password != nil {
		if err := s.provider.SetPassword(ctx, userID, *password, true); err != nil {
			log.Printf("users: password update failed for %q: %v", userID, err)
			return nil, apperrors.ErrUpstream
		}
	}
	if attrs.Name != nil || attrs.Email != nil || attrs.UserType != nil {
		if err := s.provider.UpdateAttributes(ctx, userID, attrs); err != nil {
			log.Printf("users: attribute update failed for %q: %v", userID, err)
			return nil, apperrors.ErrUpstream
		}
	}

	_ = s.cache.Delete(ctx, userListCacheKey)

	updated, err := s.provider.GetUser(ctx, userID)
	if err != nil {
		log.Printf("users: readback failed for %q: %v", userID, err)
		return nil, apperrors.ErrUpstream
	}
	user := mapAccount(updated)
	return &user, nil
}

// DeleteUser removes the user from the provider before touching the cache,
// so a provider failure leaves the directory state intact.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.provider.DeleteUser(ctx, userID); err != nil {
		log.Printf("users: provider delete failed for %q: %v", userID, err)
		return apperrors.ErrUpstream
	}
	_ = s.cache.Delete(ctx, userListCacheKey)
	return nil
}

// mapAccount converts a provider account to the directory response shape.
func mapAccount(acct *idp.Account) model.User {
	status := model.UserStatusInactive
	if acct.Confirmed {
		status = model.UserStatusActive
	}
	return model.User{
		UserID:    acct.UserID,
		Name:      acct.Name,
		Email:     acct.Email,
		UserType:  acct.UserType,
		Status:    status,
		CreatedAt: acct.CreatedAt.Format("2006-01-02"),
	}
}
