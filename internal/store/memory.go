package store

import (
	"context"
	"sync"

	"github.com/msolana/videojuegos-api/internal/domain"
)

// MemoryStore is an in-memory VideojuegoStore used as a test double and
// for throwaway environments. It mirrors the whole-document semantics of
// the file-backed store: Load returns a copy of the full collection and
// Save replaces it wholesale.
type MemoryStore struct {
	mu         sync.RWMutex
	collection []domain.Videojuego

	// FailReads and FailWrites force the corresponding sentinel error,
	// letting tests exercise storage failure paths.
	FailReads  bool
	FailWrites bool
}

// NewMemoryStore creates a MemoryStore seeded with the given collection.
func NewMemoryStore(seed []domain.Videojuego) *MemoryStore {
	s := &MemoryStore{}
	s.collection = append(s.collection, seed...)
	return s
}

func (s *MemoryStore) Load(ctx context.Context) ([]domain.Videojuego, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailReads {
		return nil, ErrStorageRead
	}

	out := make([]domain.Videojuego, len(s.collection))
	copy(out, s.collection)
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, collection []domain.Videojuego) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return ErrStorageWrite
	}

	s.collection = make([]domain.Videojuego, len(collection))
	copy(s.collection, collection)
	return nil
}
