package api

import (
	"errors"
	"net/http"

	"github.com/msolana/videojuegos-api/internal/domain"
	"github.com/msolana/videojuegos-api/internal/service"
	"github.com/msolana/videojuegos-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, service.ErrDuplicateTitle),
		errors.Is(err, service.ErrFilterField),
		errors.Is(err, domain.ErrInvalidRecord):
		return http.StatusBadRequest

	// Storage failures and everything else: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Validation messages are produced by this
// codebase and name only the violated field, so they are safe to return
// verbatim; storage errors are replaced by a generic message so internal
// paths never reach the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return "Videojuego not found"

	case errors.Is(err, service.ErrDuplicateTitle):
		return "Videojuego already exists"

	case errors.Is(err, service.ErrFilterField):
		return err.Error()

	case errors.Is(err, domain.ErrInvalidRecord):
		return err.Error()

	case errors.Is(err, store.ErrStorageRead),
		errors.Is(err, store.ErrStorageWrite):
		return "Failed to access videojuego data"

	default:
		return "An unexpected error occurred"
	}
}
