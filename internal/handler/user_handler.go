package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/idp"
	"smartcampus/internal/service"
)

// UserHandler bundles HTTP handlers for the user directory.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type createUserRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	UserType string `json:"userType" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	UserID   string  `json:"userId"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	UserType *string `json:"userType"`
	Password *string `json:"password"`
}

// List godoc
// @Summary List directory users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create godoc
// @Summary Create a directory user
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.svc.CreateUser(c.Request().Context(), req.UserID, req.Name, req.Email, req.UserType, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update godoc
// @Summary Update a directory user
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrMissingFields
	}
	user, err := h.svc.UpdateUser(c.Request().Context(), req.UserID, req.Password, idp.Attributes{
		Name:     req.Name,
		Email:    req.Email,
		UserType: req.UserType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a directory user
// @Tags users
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return apperrors.ErrMissingIDParam
	}
	if err := h.svc.DeleteUser(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}
