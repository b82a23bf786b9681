package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, userID, password, userType string) (*model.SessionUser, error) {
	args := m.Called(ctx, userID, password, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SessionUser), args.Error(1)
}

func TestLoginResponseEnvelope(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc)

	svc.On("Login", mock.Anything, "student001", "Pass123!", "Student").
		Return(&model.SessionUser{
			ID:       "student001",
			UserType: "Student",
			Name:     "John Doe",
			Email:    "student001@campus.edu",
			Token:    "session-token",
		}, nil)

	body := `{"userId":"student001","password":"Pass123!","userType":"Student"}`
	c, rec := newTestContext(http.MethodPost, "/auth", body)

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// the session rides inside a "user" envelope
	var got map[string]model.SessionUser
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	user, ok := got["user"]
	assert.True(t, ok)
	assert.Equal(t, "student001", user.ID)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, "session-token", user.Token)
}

func TestLoginErrorPassthrough(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc)

	svc.On("Login", mock.Anything, "student001", "WrongPass1", "Student").
		Return(nil, apperrors.ErrInvalidCredentials)

	body := `{"userId":"student001","password":"WrongPass1","userType":"Student"}`
	c, _ := newTestContext(http.MethodPost, "/auth", body)

	assert.ErrorIs(t, h.Login(c), apperrors.ErrInvalidCredentials)
}
