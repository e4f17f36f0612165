package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nameid/nameid/config"
	httpx "github.com/nameid/nameid/internal/http"
)

// BuildRouter assembles the HTTP handler for the wired services.
func BuildRouter(cfg *config.AppConfig, services *Services, logger *slog.Logger) (http.Handler, error) {
	return httpx.NewRouter(httpx.RouterServices{
		Dispatch:     services.Dispatch,
		Sessions:     services.Sessions,
		Audit:        services.Audit,
		Endpoint:     cfg.HTTP.BaseURL,
		CookieDomain: cfg.HTTP.CookieDomain,
		SessionTTL:   cfg.Auth.SessionTTL,
		Logger:       logger,
	})
}

// RunServer runs the HTTP server until ctx is cancelled or a termination
// signal arrives, then shuts it down gracefully.
func RunServer(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	if addr == "" {
		addr = ":8080"
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
