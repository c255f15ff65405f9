package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmptyItem is returned when submitted item text is blank.
	ErrEmptyItem = errors.New("empty list item")
	// ErrDuplicateItem is returned when the text already exists in the target list.
	ErrDuplicateItem = errors.New("duplicate list item")
	// ErrListNotFound is returned when a list lookup by id fails.
	ErrListNotFound = errors.New("list not found")
	// ErrUserNotFound is returned when a user lookup by email fails.
	ErrUserNotFound = errors.New("user not found")
	// ErrTokenNotFound is returned when a login token lookup fails; callers
	// treat it as "remain anonymous", not a hard failure.
	ErrTokenNotFound = errors.New("token not found")
)

// HTTPStatus maps domain errors to HTTP status codes for page handlers.
// Validation errors never reach this mapping: they are recovered at the
// form boundary and re-rendered with status 200.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrListNotFound), errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyItem), errors.Is(err, ErrDuplicateItem):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
