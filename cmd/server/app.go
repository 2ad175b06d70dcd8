package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/msolana/videojuegos-api/internal/config"
	"github.com/msolana/videojuegos-api/internal/platform/jsonfile"
	"github.com/msolana/videojuegos-api/internal/service"
	"github.com/msolana/videojuegos-api/internal/store"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	videojuegoStore   store.VideojuegoStore
	videojuegoService *service.VideojuegoService

	// accessLog receives one line per handled request; rotated by size
	// and age.
	accessLog io.WriteCloser
}

// newApplication creates a new application instance with all dependencies
// initialized. The backing document is created with an empty collection
// if it does not exist yet.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	fileStore := jsonfile.New(cfg.Store.Path)
	if err := fileStore.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	app.videojuegoStore = fileStore
	logger.Info("JSON file store initialized", "path", cfg.Store.Path)

	app.videojuegoService = service.NewVideojuegoService(app.videojuegoStore, logger)

	app.accessLog = &lumberjack.Logger{
		Filename:   cfg.AccessLog.Path,
		MaxSize:    cfg.AccessLog.MaxSizeMB,
		MaxBackups: cfg.AccessLog.MaxBackups,
		MaxAge:     cfg.AccessLog.MaxAgeDays,
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.accessLog != nil {
		if err := app.accessLog.Close(); err != nil {
			app.logger.Error("Error closing access log", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
