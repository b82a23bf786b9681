package errors

import (
	"errors"
	"net/http"
)

// Error values carry the exact client-facing messages of the portal API.
var (
	// ErrMissingFields is returned when a required field is absent from a create request.
	ErrMissingFields = errors.New("Missing required fields")
	// ErrMissingID is returned when an update request omits the record id.
	ErrMissingID = errors.New("Missing id")
	// ErrMissingIDParam is returned when a delete request omits the id query parameter.
	ErrMissingIDParam = errors.New("Missing id parameter")
	// ErrMissingItemID is returned when a feedback listing omits the itemId query parameter.
	ErrMissingItemID = errors.New("Missing itemId parameter")
	// ErrPasswordLength is returned when a login password is outside the accepted range.
	ErrPasswordLength = errors.New("Password must be between 8 to 12 characters")
	// ErrRecordNotFound is returned when an update targets a record that does not exist.
	ErrRecordNotFound = errors.New("Record not found")
	// ErrUserNotFound is returned when a directory update targets an unknown user.
	ErrUserNotFound = errors.New("User not found")
	// ErrUserExists is returned when a directory create collides on userId or email.
	ErrUserExists = errors.New("User already exists")
	// ErrInvalidCredentials is the collapsed failure for any bad login attempt.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrInvalidUserType is returned when the stored user type disagrees with the request.
	ErrInvalidUserType = errors.New("Invalid user type")
	// ErrUserDisabled is returned when the account exists but is disabled.
	ErrUserDisabled = errors.New("User account is disabled")
	// ErrUpstream is returned when the identity provider or object store fails.
	// Detail is logged server-side, never sent to the caller.
	ErrUpstream = errors.New("Upstream service failure")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrMissingID),
		errors.Is(err, ErrMissingIDParam),
		errors.Is(err, ErrMissingItemID),
		errors.Is(err, ErrPasswordLength):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "CONFLICT")
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidUserType),
		errors.Is(err, ErrUserDisabled):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrRecordNotFound), errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrUpstream):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "UPSTREAM_FAILURE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
	}
}
