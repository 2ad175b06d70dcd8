// Package api provides HTTP handlers for the API.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/msolana/videojuegos-api/internal/api/shared"
	"github.com/msolana/videojuegos-api/internal/domain"
	"github.com/msolana/videojuegos-api/internal/service"
)

// VideojuegoHandler handles videojuego-related HTTP requests.
type VideojuegoHandler struct {
	service *service.VideojuegoService
	logger  *slog.Logger
}

// NewVideojuegoHandler creates a new VideojuegoHandler.
func NewVideojuegoHandler(svc *service.VideojuegoService, logger *slog.Logger) *VideojuegoHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for VideojuegoHandler")
	}

	return &VideojuegoHandler{
		service: svc,
		logger:  logger.With(slog.String("component", "videojuego_handler")),
	}
}

// ListVideojuegos handles GET /Videojuegos requests.
// The optional clave/valor query pair narrows the result to records
// whose clave field contains valor case-insensitively.
func (h *VideojuegoHandler) ListVideojuegos(w http.ResponseWriter, r *http.Request) {
	clave := r.URL.Query().Get("clave")
	valor := r.URL.Query().Get("valor")

	collection, err := h.service.List(r.Context(), clave, valor)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if collection == nil {
		collection = []domain.Videojuego{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, collection)
}

// GetVideojuego handles GET /Videojuegos/{id} requests.
func (h *VideojuegoHandler) GetVideojuego(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	videojuego, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, videojuego)
}

// CreateVideojuego handles POST /Videojuegos/Guardarjuegos requests.
// The payload is validated against the current collection (duplicate
// titulo first, then structure), stamped with created_at, and assigned
// the next id.
func (h *VideojuegoHandler) CreateVideojuego(w http.ResponseWriter, r *http.Request) {
	var payload domain.Videojuego
	if err := shared.DecodeJSON(r, &payload); err != nil {
		h.logger.Debug("invalid create payload", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := h.service.Create(r.Context(), payload)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// UpdateVideojuego handles PUT /Videojuegos/{id} requests.
// The stored record is replaced wholesale by the validated payload; the
// path id wins over any id in the body.
func (h *VideojuegoHandler) UpdateVideojuego(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var payload domain.Videojuego
	if err := shared.DecodeJSON(r, &payload); err != nil {
		h.logger.Debug("invalid update payload", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// DeleteVideojuego handles DELETE /Videojuegos/{id} requests.
// The operation is idempotent: deleting an id that is already absent
// returns the same confirmation.
func (h *VideojuegoHandler) DeleteVideojuego(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Message: fmt.Sprintf("Videojuego con ID %d eliminado correctamente", id),
		ID:      id,
	})
}

// BackfillFechas handles PUT /Videojuegos/ActualizarFecha requests.
// Every record missing updated_at receives the current timestamp.
func (h *VideojuegoHandler) BackfillFechas(w http.ResponseWriter, r *http.Request) {
	updated, err := h.service.BackfillUpdatedAt(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BackfillResponse{
		Message: "Campos updated_at actualizados correctamente en todos los registros",
		Updated: updated,
	})
}

// pathID parses the {id} path parameter. Ids are stored as integers, so
// an unparsable id is rejected up front instead of coerced.
func (h *VideojuegoHandler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.logger.Debug("invalid id in path", slog.String("id", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid videojuego ID format")
		return 0, false
	}
	return id, true
}
