// Package store defines the persistence interface for the videojuego
// collection and the sentinel errors shared by its implementations.
//
// The unit of atomicity is the whole collection: implementations load the
// entire document and replace it in full on save. There are no
// partial-record writes.
package store

import (
	"context"

	"github.com/msolana/videojuegos-api/internal/domain"
)

// VideojuegoStore loads and persists the entire record collection as one
// document.
type VideojuegoStore interface {
	// Load reads the backing document and returns the full collection.
	// It fails with ErrStorageRead if the document is missing or
	// malformed.
	Load(ctx context.Context) ([]domain.Videojuego, error)

	// Save serializes the given collection and overwrites the backing
	// document in full. It fails with ErrStorageWrite on I/O failure.
	Save(ctx context.Context, collection []domain.Videojuego) error
}
