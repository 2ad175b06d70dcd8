// Package jsonfile implements store.VideojuegoStore on top of a single
// JSON document on local disk.
//
// Layout of the backing document:
//
//	{
//	  "Videojuegos": [ { "id": 1, "titulo": "...", ... }, ... ]
//	}
//
// Every save replaces the document in full; there are no partial writes.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/msolana/videojuegos-api/internal/domain"
	"github.com/msolana/videojuegos-api/internal/store"
)

// collectionKey is the single top-level field holding the record array.
const collectionKey = "Videojuegos"

// document is the on-disk shape. The slice is a pointer so a document
// missing the Videojuegos key can be told apart from an empty collection.
type document struct {
	Videojuegos *[]domain.Videojuego `json:"Videojuegos"`
}

// Store reads and replaces the backing document at a fixed, injected
// path. The mutex serializes file access within this process; cross-
// process writers are out of scope.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a Store backed by the document at path. The document is
// not created or checked here; use Init to seed a missing one.
func New(path string) *Store {
	return &Store{path: path}
}

// Init creates the backing document with an empty collection if it does
// not exist yet. An existing document is left untouched.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", store.ErrStorageRead, err)
	}

	return s.write([]domain.Videojuego{})
}

func (s *Store) Load(ctx context.Context) ([]domain.Videojuego, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrStorageRead, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: malformed document: %v", store.ErrStorageRead, err)
	}
	if doc.Videojuegos == nil {
		return nil, fmt.Errorf("%w: document is missing the %q key", store.ErrStorageRead, collectionKey)
	}

	return *doc.Videojuegos, nil
}

func (s *Store) Save(ctx context.Context, collection []domain.Videojuego) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(collection)
}

// write marshals the collection under the top-level key and overwrites
// the document. Callers must hold s.mu.
func (s *Store) write(collection []domain.Videojuego) error {
	doc := document{Videojuegos: &collection}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrStorageWrite, err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", store.ErrStorageWrite, err)
	}
	return nil
}
