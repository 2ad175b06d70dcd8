package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// AccessLog writes one line per request to the given writer, in the form
//
//	2024-05-03 18:21:07 [GET] [/Videojuegos/{id}] /Videojuegos/3
//
// The second bracket holds the matched route pattern, which is only
// known after routing, so the line is written once the handler returns.
// The writer is expected to be safe for concurrent use (the rotating
// file writer used in production is).
func AccessLog(w io.Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(rw, r)

			pattern := "unknown"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				pattern = rctx.RoutePattern()
			}

			line := fmt.Sprintf("%s [%s] [%s] %s\n",
				start.Format("2006-01-02 15:04:05"),
				r.Method,
				pattern,
				r.URL.RequestURI())

			if _, err := io.WriteString(w, line); err != nil {
				slog.Error("failed to write access log line", "error", err)
			}
		})
	}
}
