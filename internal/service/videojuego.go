// Package service orchestrates the videojuego CRUD operations over the
// store, the record validator, and the timestamp enricher.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/msolana/videojuegos-api/internal/domain"
	"github.com/msolana/videojuegos-api/internal/store"
)

// Service-level errors surfaced to the API layer.
var (
	// ErrDuplicateTitle is returned when creating a record whose titulo
	// already exists in the collection (case-sensitive exact match).
	ErrDuplicateTitle = errors.New("videojuego already exists")
)

// VideojuegoService implements the record operations. Every mutating
// operation runs its load-mutate-save cycle inside a single critical
// section, so two racing writers cannot drop each other's update within
// this process. Whole-document replacement stays the unit of atomicity.
type VideojuegoService struct {
	store  store.VideojuegoStore
	logger *slog.Logger
	now    func() time.Time

	mu sync.Mutex
}

// NewVideojuegoService creates a VideojuegoService backed by the given store.
func NewVideojuegoService(s store.VideojuegoStore, logger *slog.Logger) *VideojuegoService {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for VideojuegoService")
	}

	return &VideojuegoService{
		store:  s,
		logger: logger.With(slog.String("component", "videojuego_service")),
		now:    time.Now,
	}
}

// List returns the full collection, narrowed by the optional clave/valor
// filter pair.
func (s *VideojuegoService) List(ctx context.Context, clave, valor string) ([]domain.Videojuego, error) {
	collection, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return Filter(collection, clave, valor)
}

// Get returns the record with the given id, or store.ErrNotFound.
func (s *VideojuegoService) Get(ctx context.Context, id int) (*domain.Videojuego, error) {
	collection, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range collection {
		if collection[i].ID == id {
			return &collection[i], nil
		}
	}
	return nil, store.ErrNotFound
}

// Create validates the payload against the current snapshot, stamps
// created_at, assigns the next id, and appends the record.
//
// The duplicate-title check runs before structural validation, so a
// payload that is both malformed and a duplicate reports the duplicate.
func (s *VideojuegoService) Create(ctx context.Context, payload domain.Videojuego) (*domain.Videojuego, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range collection {
		if collection[i].Titulo == payload.Titulo {
			return nil, fmt.Errorf("%w: titulo %q", ErrDuplicateTitle, payload.Titulo)
		}
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	payload.StampCreated(s.now())
	payload.ID = nextID(collection)
	collection = append(collection, payload)

	if err := s.store.Save(ctx, collection); err != nil {
		return nil, err
	}

	s.logger.Info("videojuego created",
		slog.Int("id", payload.ID),
		slog.String("titulo", payload.Titulo))
	return &payload, nil
}

// Update replaces the record at the given id wholesale with the
// validated payload. The stored created_at is preserved and updated_at
// is stamped with the current time; uniqueness of titulo is not
// re-checked on update.
func (s *VideojuegoService) Update(ctx context.Context, id int, payload domain.Videojuego) (*domain.Videojuego, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range collection {
		if collection[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, store.ErrNotFound
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	payload.ID = id
	payload.CreatedAt = collection[idx].CreatedAt
	payload.StampUpdated(s.now())
	collection[idx] = payload

	if err := s.store.Save(ctx, collection); err != nil {
		return nil, err
	}

	s.logger.Info("videojuego updated", slog.Int("id", id))
	return &payload, nil
}

// Delete removes every record with the given id and rewrites the
// document. Deleting an id that does not exist succeeds silently, so the
// operation is idempotent.
func (s *VideojuegoService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	remaining := collection[:0]
	for _, v := range collection {
		if v.ID != id {
			remaining = append(remaining, v)
		}
	}

	if err := s.store.Save(ctx, remaining); err != nil {
		return err
	}

	s.logger.Info("videojuego deleted", slog.Int("id", id))
	return nil
}

// BackfillUpdatedAt sets updated_at to the current time on every record
// whose updated_at is absent or empty, leaving records that already
// carry one untouched. Returns the number of records stamped. The result
// is persisted as one document replacement: either every stamp lands or
// none do.
func (s *VideojuegoService) BackfillUpdatedAt(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	updated := 0
	for i := range collection {
		if collection[i].UpdatedAt == "" {
			collection[i].StampUpdated(now)
			updated++
		}
	}

	if err := s.store.Save(ctx, collection); err != nil {
		return 0, err
	}

	s.logger.Info("updated_at backfill completed", slog.Int("records_stamped", updated))
	return updated, nil
}

// nextID returns one past the highest id in the collection. Unlike
// counting records, this stays monotonic when records in the middle have
// been deleted and can never hand out a live id.
func nextID(collection []domain.Videojuego) int {
	highest := 0
	for _, v := range collection {
		if v.ID > highest {
			highest = v.ID
		}
	}
	return highest + 1
}
