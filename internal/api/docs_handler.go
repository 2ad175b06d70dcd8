package api

import (
	"log/slog"
	"net/http"

	"github.com/msolana/videojuegos-api/internal/platform/openapi"
)

// DocsHandler serves the generated OpenAPI document.
type DocsHandler struct {
	logger *slog.Logger
}

// NewDocsHandler creates a new DocsHandler.
func NewDocsHandler(logger *slog.Logger) *DocsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DocsHandler")
	}

	return &DocsHandler{logger: logger.With(slog.String("component", "docs_handler"))}
}

// OpenAPIJSON handles GET /api-docs/openapi.json requests.
func (h *DocsHandler) OpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	data, err := openapi.JSON()
	if err != nil {
		h.logger.Error("failed to render OpenAPI document", slog.String("error", err.Error()))
		http.Error(w, "Failed to render API documentation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write OpenAPI document", slog.String("error", err.Error()))
	}
}

// OpenAPIYAML handles GET /api-docs/openapi.yaml requests.
func (h *DocsHandler) OpenAPIYAML(w http.ResponseWriter, r *http.Request) {
	data, err := openapi.YAML()
	if err != nil {
		h.logger.Error("failed to render OpenAPI document", slog.String("error", err.Error()))
		http.Error(w, "Failed to render API documentation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write OpenAPI document", slog.String("error", err.Error()))
	}
}
