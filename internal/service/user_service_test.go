package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/idp"
	"smartcampus/internal/model"
)

// MockMailer is a mock implementation of notify.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendWelcome(ctx context.Context, name, email, userID string) error {
	args := m.Called(ctx, name, email, userID)
	return args.Error(0)
}

func TestListUsersMapsStatus(t *testing.T) {
	provider := new(MockProvider)
	svc := NewUserService(provider, nil, nil, false)

	created := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	provider.On("ListUsers", mock.Anything).Return([]idp.Account{
		{UserID: "admin001", Name: "Administrator", Email: "admin001@campus.edu", UserType: "Admin", Confirmed: true, CreatedAt: created},
		{UserID: "student003", Name: "Mike Johnson", Email: "student003@campus.edu", UserType: "Student", Confirmed: false, CreatedAt: created},
	}, nil)

	users, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, model.UserStatusActive, users[0].Status)
	assert.Equal(t, model.UserStatusInactive, users[1].Status)
	assert.Equal(t, "2024-03-15", users[0].CreatedAt)
}

func TestListUsersProviderFailure(t *testing.T) {
	provider := new(MockProvider)
	svc := NewUserService(provider, nil, nil, false)

	provider.On("ListUsers", mock.Anything).Return(nil, errors.New("provider down"))

	_, err := svc.ListUsers(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestCreateUserConflict(t *testing.T) {
	provider := new(MockProvider)
	svc := NewUserService(provider, nil, nil, false)

	provider.On("CreateUser", mock.Anything, mock.AnythingOfType("*idp.Account"), "Pass123!").
		Return(idp.ErrUsernameExists)

	_, err := svc.CreateUser(context.Background(), "admin001", "Administrator", "admin001@campus.edu", "Admin", "Pass123!")

	assert.ErrorIs(t, err, apperrors.ErrUserExists)
	// a conflict must not provision anything
	provider.AssertNotCalled(t, "SetPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateUserSuccess(t *testing.T) {
	provider := new(MockProvider)
	mailer := new(MockMailer)
	svc := NewUserService(provider, nil, mailer, true)

	provider.On("CreateUser", mock.Anything, mock.AnythingOfType("*idp.Account"), "Pass123!").Return(nil)
	provider.On("SetPassword", mock.Anything, "student009", "Pass123!", true).Return(nil)
	provider.On("GetUser", mock.Anything, "student009").
		Return(&idp.Account{
			UserID:    "student009",
			Name:      "Sam Lee",
			Email:     "student009@campus.edu",
			UserType:  "Student",
			Confirmed: true,
			CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		}, nil)
	mailer.On("SendWelcome", mock.Anything, "Sam Lee", "student009@campus.edu", "student009").Return(nil)

	user, err := svc.CreateUser(context.Background(), "student009", "Sam Lee", "student009@campus.edu", "Student", "Pass123!")

	assert.NoError(t, err)
	assert.Equal(t, "student009", user.UserID)
	assert.Equal(t, model.UserStatusActive, user.Status)
	assert.Equal(t, "2024-06-01", user.CreatedAt)
	provider.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestCreateUserWelcomeMailBestEffort(t *testing.T) {
	provider := new(MockProvider)
	mailer := new(MockMailer)
	svc := NewUserService(provider, nil, mailer, true)

	provider.On("CreateUser", mock.Anything, mock.AnythingOfType("*idp.Account"), "Pass123!").Return(nil)
	provider.On("SetPassword", mock.Anything, "student010", "Pass123!", true).Return(nil)
	provider.On("GetUser", mock.Anything, "student010").
		Return(&idp.Account{UserID: "student010", Confirmed: true}, nil)
	mailer.On("SendWelcome", mock.Anything, mock.Anything, mock.Anything, "student010").
		Return(errors.New("smtp down"))

	user, err := svc.CreateUser(context.Background(), "student010", "Pat Kim", "student010@campus.edu", "Student", "Pass123!")

	// mail failure does not fail the creation
	assert.NoError(t, err)
	assert.Equal(t, "student010", user.UserID)
}

func TestUpdateUserMissingID(t *testing.T) {
	provider := new(MockProvider)
	svc := NewUserService(provider, nil, nil, false)

	_, err := svc.UpdateUser(context.Background(), "", nil, idp.Attributes{})

	assert.ErrorIs(t, err, apperrors.ErrMissingID)
	provider.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestUpdateUserUnknown(t *testing.T) {
	provider := new(MockProvider)
	svc := NewUserService(provider, nil, nil, false)

	provider.On("GetUser", mock.Anything, "ghost").Return(nil, idp.ErrUserNotFound)

	_, err := svc.UpdateUser(context.Background(), "ghost", nil, idp.Attributes{})

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateUserPasswordFailure(t *testing.T) {
	provider := new(MockProvider)
	svc := NewUserService(provider, nil, nil, false)

	password := "NewPass123!"
	provider.On("GetUser", mock.Anything, "student001").
		Return(&idp.Account{UserID: "student001"}, nil).Once()
	provider.On("SetPassword", mock.Anything, "student001", password, true).
		Return(errors.New("provider down"))

	_, err := svc.UpdateUser(context.Background(), "student001", &password, idp.Attributes{})

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestUpdateUserAttributes(t *testing.T) {
	provider := new(MockProvider)
	svc := NewUserService(provider, nil, nil, false)

	name := "John D. Doe"
	provider.On("GetUser", mock.Anything, "student001").
		Return(&idp.Account{UserID: "student001", Name: "John Doe", Confirmed: true}, nil).Once()
	provider.On("UpdateAttributes", mock.Anything, "student001", idp.Attributes{Name: &name}).Return(nil)
	provider.On("GetUser", mock.Anything, "student001").
		Return(&idp.Account{UserID: "student001", Name: name, Confirmed: true}, nil).Once()

	user, err := svc.UpdateUser(context.Background(), "student001", nil, idp.Attributes{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, name, user.Name)
	provider.AssertNotCalled(t, "SetPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteUserProviderFirst(t *testing.T) {
	provider := new(MockProvider)
	svc := NewUserService(provider, nil, nil, false)

	provider.On("DeleteUser", mock.Anything, "student001").Return(nil)

	assert.NoError(t, svc.DeleteUser(context.Background(), "student001"))
	provider.AssertExpectations(t)
}

func TestDeleteUserProviderFailure(t *testing.T) {
	provider := new(MockProvider)
	svc := NewUserService(provider, nil, nil, false)

	provider.On("DeleteUser", mock.Anything, "student001").Return(errors.New("provider down"))

	err := svc.DeleteUser(context.Background(), "student001")

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
