package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "smartcampus/internal/errors"
)

func TestCorsPreflight(t *testing.T) {
	e := echo.New()
	e.Use(corsMiddleware())
	e.POST("/events", func(c echo.Context) error {
		return c.String(http.StatusCreated, "created")
	})

	req := httptest.NewRequest(http.MethodOptions, "/events", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "Content-Type,Authorization", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
	assert.Equal(t, "OPTIONS,GET,POST,PUT,DELETE", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
}

func TestCorsHeadersOnNormalRequest(t *testing.T) {
	e := echo.New()
	e.Use(corsMiddleware())
	e.GET("/events", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestErrorHandlerDomainError(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	e.PUT("/events", func(c echo.Context) error {
		return apperrors.ErrRecordNotFound
	})

	req := httptest.NewRequest(http.MethodPut, "/events", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Record not found","code":"NOT_FOUND"}`, rec.Body.String())
}

func TestErrorHandlerValidationError(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	e.POST("/events", func(c echo.Context) error {
		return apperrors.ErrMissingFields
	})

	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields","code":"VALIDATION_ERROR"}`, rec.Body.String())
}

func TestErrorHandlerMethodNotAllowed(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	e.POST("/auth", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPatch, "/auth", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed","code":"METHOD_NOT_ALLOWED"}`, rec.Body.String())
}

func TestErrorHandlerUnknownRoute(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found","code":"NOT_FOUND"}`, rec.Body.String())
}

func TestErrorHandlerHidesInternalDetail(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	e.GET("/events", func(c echo.Context) error {
		return assert.AnError
	})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error","code":"INTERNAL_ERROR"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestHealthHandlerPayload(t *testing.T) {
	e := echo.New()
	e.GET("/events/health", healthHandler("events"))

	req := httptest.NewRequest(http.MethodGet, "/events/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"events"}`, rec.Body.String())
}
