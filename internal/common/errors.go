package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound        = errors.New("requested resource not found")
	ErrUnauthorized    = errors.New("unauthorized access")
	ErrForbidden       = errors.New("forbidden access")
	ErrBadRequest      = errors.New("bad request")
	ErrConflict        = errors.New("resource conflict") // e.g., username already exists
	ErrInternalServer  = errors.New("internal server error")
	ErrValidation      = errors.New("validation failed")
	ErrTooManyRequests = errors.New("too many requests")
)

// messageError gives a sentinel a client-facing message without losing errors.Is matching.
type messageError struct {
	kind error
	msg  string
}

func (e *messageError) Error() string { return e.msg }
func (e *messageError) Unwrap() error { return e.kind }

// WithMessage returns an error that reads as msg and matches kind.
func WithMessage(kind error, msg string) error {
	return &messageError{kind: kind, msg: msg}
}

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Status()
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrBadRequest) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrTooManyRequests) {
		return http.StatusTooManyRequests
	}

	return http.StatusInternalServerError
}

// APIError is an application error with an explicit status and structured details.
type APIError struct {
	Code    int
	Message string
	Details map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

func NewAPIError(code int, message string, details map[string]any) *APIError {
	if details == nil {
		details = map[string]any{}
	}
	return &APIError{Code: code, Message: message, Details: details}
}
