package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when no record exists at the requested id.
	ErrNotFound = errors.New("videojuego not found")

	// ErrStorageRead is returned when the backing document is missing,
	// unreadable, or not a valid collection document. Check the wrapped
	// error for the underlying cause.
	ErrStorageRead = errors.New("failed to read videojuego document")

	// ErrStorageWrite is returned when the backing document cannot be
	// replaced, for example on permission or disk failures.
	ErrStorageWrite = errors.New("failed to write videojuego document")
)
