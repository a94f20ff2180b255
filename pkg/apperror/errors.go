package apperror

import (
	"errors"
	"net/http"
)

// Domain failures. The messages are part of the external contract and must
// not change between releases.
var (
	ErrDuplicateEmail  = errors.New("email is already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrArticleNotFound = errors.New("article not found")
	ErrUserNotMatch    = errors.New("user does not match")
	ErrCommentNotFound = errors.New("comment not found")
	ErrArticleNotMatch = errors.New("comment does not belong to the article")
	ErrInternal        = errors.New("internal server error")
)

// AppError is a custom error type that can hold an HTTP status code
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// MapErrorToStatus maps domain failures to HTTP status codes
func MapErrorToStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}

	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrArticleNotFound),
		errors.Is(err, ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrWrongPassword),
		errors.Is(err, ErrUserNotMatch),
		errors.Is(err, ErrArticleNotMatch):
		return http.StatusBadRequest
	}

	// Storage faults and anything else unmapped stay opaque.
	return http.StatusInternalServerError
}
