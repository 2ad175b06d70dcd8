// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidRecord is returned when a videojuego payload fails
	// structural validation. It is wrapped with a message naming the
	// first violated field.
	ErrInvalidRecord = errors.New("invalid videojuego")
)
