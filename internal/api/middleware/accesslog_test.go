package middleware

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLogLineFormat(t *testing.T) {
	var buf strings.Builder

	r := chi.NewRouter()
	r.Use(AccessLog(&buf))
	r.Get("/Videojuegos/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/Videojuegos/3?clave=genero", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	require.NotEmpty(t, line)

	// 2024-05-03 18:21:07 [GET] [/Videojuegos/{id}] /Videojuegos/3?clave=genero
	pattern := regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[GET\] \[/Videojuegos/\{id\}\] /Videojuegos/3\?clave=genero\n$`,
	)
	assert.Regexp(t, pattern, line)
}

func TestAccessLogOneLinePerRequest(t *testing.T) {
	var buf strings.Builder

	r := chi.NewRouter()
	r.Use(AccessLog(&buf))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {})

	for range [3]struct{}{} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	}

	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
}
