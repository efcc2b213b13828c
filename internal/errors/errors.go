package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when a resource does not exist or is owned
	// by a different user. The two cases are deliberately not told apart.
	ErrNotFound = errors.New("resource not found")
	// ErrNoFields is returned when an update payload contributes no
	// recognized field.
	ErrNoFields = errors.New("no fields to update")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when registering an existing email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// ValidationError reports the field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ErrorResponse is the wire shape of every error the API returns.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HTTPError carries a status code alongside the wire shape.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, code, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: code, Message: message}
}

// ToErrorResponse converts an HTTPError to the wire shape.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Code, Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The label names the
// resource in 404 messages ("Todo", "Project", "Idea").
func MapErrorToHTTP(err error, label string) *HTTPError {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return NewHTTPError(http.StatusBadRequest, "Invalid "+ve.Field,
			fmt.Sprintf("Field %s %s", ve.Field, ve.Reason))
	case errors.Is(err, ErrNoFields):
		return NewHTTPError(http.StatusBadRequest, "No fields to update",
			"At least one field must be provided for update")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, label+" not found",
			fmt.Sprintf("%s does not exist or you do not have permission to access it", label))
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error",
			"An unexpected error occurred")
	}
}
