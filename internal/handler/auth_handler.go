package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/service"
)

// AuthHandler bundles login and session handlers.
type AuthHandler struct {
	svc service.AuthService
}

// NewAuthHandler creates a handler layer.
func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

// Login godoc
// @Summary Log in with userId, password and user type
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]model.SessionUser
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrMissingFields
	}
	user, err := h.svc.Login(c.Request().Context(), req.UserID, req.Password, req.UserType)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// Me godoc
// @Summary Return the claims of the presented session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, _ := token.Claims.(jwt.MapClaims)
	return c.JSON(http.StatusOK, echo.Map{"token_claims": claims})
}
