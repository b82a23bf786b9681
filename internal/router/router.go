package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"smartcampus/internal/config"
	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/handler"
	"smartcampus/internal/metrics"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	timetableHandler *handler.TimetableHandler,
	eventsHandler *handler.EventsHandler,
	lostFoundHandler *handler.LostFoundHandler,
	queryHandler *handler.AcademicQueryHandler,
	cafeteriaHandler *handler.CafeteriaHandler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(corsMiddleware())
	e.Use(metrics.Middleware())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Timetable
	e.GET("/timetable", timetableHandler.List)
	e.POST("/timetable", timetableHandler.Create)
	e.PUT("/timetable", timetableHandler.Update)
	e.DELETE("/timetable", timetableHandler.Delete)
	e.GET("/timetable/health", healthHandler("timetable"))

	// Events
	e.GET("/events", eventsHandler.List)
	e.POST("/events", eventsHandler.Create)
	e.PUT("/events", eventsHandler.Update)
	e.DELETE("/events", eventsHandler.Delete)
	e.GET("/events/health", healthHandler("events"))

	// Lost and found
	e.GET("/lostfound", lostFoundHandler.List)
	e.POST("/lostfound", lostFoundHandler.Create)
	e.PUT("/lostfound", lostFoundHandler.Update)
	e.DELETE("/lostfound", lostFoundHandler.Delete)
	e.GET("/lostfound/health", healthHandler("lostfound"))

	// Academic queries
	e.GET("/academic-query", queryHandler.List)
	e.POST("/academic-query", queryHandler.Create)
	e.PUT("/academic-query", queryHandler.Update)
	e.DELETE("/academic-query", queryHandler.Delete)
	e.GET("/academic-query/health", healthHandler("academic-query"))

	// Cafeteria: menu, orders and feedback
	e.GET("/cafeteria", cafeteriaHandler.ListMenu)
	e.POST("/cafeteria", cafeteriaHandler.CreateMenuItem)
	e.PUT("/cafeteria", cafeteriaHandler.UpdateMenuItem)
	e.DELETE("/cafeteria", cafeteriaHandler.DeleteMenuItem)
	e.GET("/cafeteria/health", healthHandler("cafeteria"))
	e.GET("/cafeteria/orders", cafeteriaHandler.ListOrders)
	e.POST("/cafeteria/orders", cafeteriaHandler.CreateOrder)
	e.GET("/cafeteria/feedback", cafeteriaHandler.ListFeedback)
	e.POST("/cafeteria/feedback", cafeteriaHandler.CreateFeedback)

	// Identity gateway
	e.POST("/auth", authHandler.Login)
	e.GET("/auth/health", healthHandler("auth"))
	e.GET("/auth/me", authHandler.Me, echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// User directory
	e.GET("/users", userHandler.List)
	e.POST("/users", userHandler.Create)
	e.PUT("/users", userHandler.Update)
	e.DELETE("/users", userHandler.Delete)
	e.GET("/users/health", healthHandler("user-management"))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// healthHandler returns the static per-service health payload. It never
// touches the database.
func healthHandler(service string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "healthy", "service": service})
	}
}

// corsMiddleware opens the API to all origins and answers preflight with an
// empty 200, short-circuiting before any table access.
func corsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type,Authorization")
			h.Set(echo.HeaderAccessControlAllowMethods, "OPTIONS,GET,POST,PUT,DELETE")
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}

// errorHandler renders every failure as the {"error": ...} envelope. Domain
// errors map through the taxonomy; anything unrecognized is a generic 500
// with the detail kept in the server log.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		switch he.Code {
		case http.StatusMethodNotAllowed:
			msg = "Method not allowed"
		case http.StatusNotFound:
			msg = "Not found"
		default:
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		_ = c.JSON(he.Code, apperrors.ErrorResponse{Error: msg, Code: codeForStatus(he.Code)})
		return
	}

	mapped := apperrors.MapErrorToHTTP(err)
	if mapped.StatusCode >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	_ = c.JSON(mapped.StatusCode, mapped.ToErrorResponse())
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "INTERNAL_ERROR"
	}
}
