// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server hosts the desktop UI: a loopback HTTP server exposing the
// selection, settings, conversion, and quick-action API together with the
// embedded front-end page.
package server

import (
	"context"
	"embed"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/rs/cors"

	"github.com/pdiddy/mdesk/internal/history"
	"github.com/pdiddy/mdesk/internal/orchestrator"
	"github.com/pdiddy/mdesk/internal/present"
	"github.com/pdiddy/mdesk/internal/selector"
	"github.com/pdiddy/mdesk/pkg/types"
)

//go:embed static
var staticFS embed.FS

// shutdownGrace bounds how long in-flight requests may run after the serve
// context is cancelled.
const shutdownGrace = 5 * time.Second

// App coordinates the UI-facing state: the current selection, the settings
// record, the conversion lifecycle, and the quick actions. Handlers run
// concurrently, so selection and settings access is serialized here; the
// orchestrator guards its own state.
type App struct {
	mu       sync.Mutex
	selector *selector.Selector
	settings types.DocumentSettings

	orch      *orchestrator.Orchestrator
	presenter *present.Presenter
	history   *history.Store
	logger    *slog.Logger
}

// NewApp returns an app with an empty selection and default settings.
// hist may be nil; the history endpoint then serves an empty list.
func NewApp(orch *orchestrator.Orchestrator, presenter *present.Presenter, hist *history.Store, logger *slog.Logger) *App {
	return &App{
		selector:  selector.New(),
		settings:  types.DefaultSettings(),
		orch:      orch,
		presenter: presenter,
		history:   hist,
		logger:    logger,
	}
}

// Handler returns the app's HTTP handler with middleware applied.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", a.handleIndex)
	mux.HandleFunc("GET /api/state", a.handleState)
	mux.HandleFunc("PUT /api/file", a.handleSelectFile)
	mux.HandleFunc("DELETE /api/file", a.handleClearFile)
	mux.HandleFunc("GET /api/settings", a.handleGetSettings)
	mux.HandleFunc("PATCH /api/settings", a.handleUpdateSettings)
	mux.HandleFunc("POST /api/convert", a.handleConvert)
	mux.HandleFunc("POST /api/actions/copy-path", a.handleCopyPath)
	mux.HandleFunc("POST /api/actions/open-file", a.handleOpenFile)
	mux.HandleFunc("POST /api/actions/open-folder", a.handleOpenFolder)
	mux.HandleFunc("GET /api/history", a.handleHistory)

	var handler http.Handler = mux
	handler = logRequests(a.logger)(handler)
	handler = recovery(a.logger)(handler)
	return cors.AllowAll().Handler(handler)
}

// Serve runs the app server on addr until ctx is cancelled or the listener
// fails.
func (a *App) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.Handler()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	a.logger.Info("app server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
