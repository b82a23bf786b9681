// Package handler contains the HTTP layer: one handler per portal resource,
// request DTOs with validation tags, and partial updates expressed through
// pointer fields so explicit false/0/"" values still apply.
package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "smartcampus/internal/errors"
)

// bind decodes and validates a request body, collapsing any failure into the
// generic validation error of the API.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrMissingFields
	}
	if err := c.Validate(req); err != nil {
		return apperrors.ErrMissingFields
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
