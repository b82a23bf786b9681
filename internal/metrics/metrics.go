package metrics

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "smartcampus/internal/errors"
)

// RequestsTotal counts handled HTTP requests by method, route and status.
var RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "campus_http_requests_total",
	Help: "HTTP requests processed, partitioned by method, route and status.",
}, []string{"method", "route", "status"})

// Middleware records a counter sample per request.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			// the error handler has not run yet, so resolve the status the
			// same way it will
			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = apperrors.MapErrorToHTTP(err).StatusCode
				}
			}
			RequestsTotal.WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).Inc()
			return err
		}
	}
}
