package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msolana/videojuegos-api/internal/config"
	"github.com/msolana/videojuegos-api/internal/domain"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 3000, LogLevel: "error"},
		Store:  config.StoreConfig{Path: filepath.Join(dir, "db.json")},
		AccessLog: config.AccessLogConfig{
			Path:      filepath.Join(dir, "access_log.txt"),
			MaxSizeMB: 1,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApplication(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(app.cleanup)

	return app
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestOpenAPIDocumentEndpoints(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-docs/openapi.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc, "paths")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-docs/openapi.yaml", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCRUDAgainstFileStore(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	payload, err := json.Marshal(map[string]string{
		"titulo":        "Stardew Valley",
		"plataforma":    "PC",
		"genero":        "Simulación",
		"lanzamiento":   "2016-02-26",
		"estudio":       "ConcernedApe",
		"modo de juego": "Un jugador",
		"precio venta":  "13.99",
	})
	require.NoError(t, err)

	// Create
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/Videojuegos/Guardarjuegos", bytes.NewReader(payload))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Videojuego
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	// List
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/Videojuegos", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var listed []domain.Videojuego
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)

	// Delete, then verify absence
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/Videojuegos/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/Videojuegos/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAccessLogFileReceivesLines(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	// Close the writer so the file is fully written before reading it.
	require.NoError(t, app.accessLog.Close())

	data, err := os.ReadFile(app.config.AccessLog.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[GET] [/health] /health")
}
