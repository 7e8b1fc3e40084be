// Package mockapi is an in-memory implementation of the user-management API
// the console talks to. It serves seeded users with the same paths, bodies
// and error messages, so the console can run without the remote service.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/logging"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config  *Config
	logger  logging.Logger
	handler *Handler
}

func NewApp(cfg *Config, logger logging.Logger) (*App, error) {
	h, err := NewHandler(NewDirectory(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("handler init error: %w", err)
	}
	return &App{config: cfg, logger: logger, handler: h}, nil
}

// Run listens on the configured address until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.Addr, err)
	}
	return app.Serve(ctx, ln)
}

// Serve runs the HTTP server on ln and shuts it down gracefully once ctx is
// done.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           app.handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info(gctx, "Starting mock API...", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()

		app.logger.Info(shutdownCtx, "Shutting down mock API...")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
