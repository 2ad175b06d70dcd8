package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/msolana/videojuegos-api/internal/api"
	apiMiddleware "github.com/msolana/videojuegos-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.AccessLog(app.accessLog))

	videojuegoHandler := api.NewVideojuegoHandler(app.videojuegoService, app.logger)
	docsHandler := api.NewDocsHandler(app.logger)

	r.Route("/Videojuegos", func(r chi.Router) {
		r.Get("/", videojuegoHandler.ListVideojuegos)
		r.Post("/Guardarjuegos", videojuegoHandler.CreateVideojuego)

		// Static route; chi matches it ahead of the {id} pattern.
		r.Put("/ActualizarFecha", videojuegoHandler.BackfillFechas)

		r.Get("/{id}", videojuegoHandler.GetVideojuego)
		r.Put("/{id}", videojuegoHandler.UpdateVideojuego)
		r.Delete("/{id}", videojuegoHandler.DeleteVideojuego)
	})

	r.Route("/api-docs", func(r chi.Router) {
		r.Get("/openapi.json", docsHandler.OpenAPIJSON)
		r.Get("/openapi.yaml", docsHandler.OpenAPIYAML)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
