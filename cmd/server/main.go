package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/flamescrm/agent-platform/internal/config"
	"github.com/flamescrm/agent-platform/internal/store"
	"github.com/flamescrm/agent-platform/pkg/logging"
	"github.com/joho/godotenv"
)

// Application holds the process-wide dependencies shared by all handlers.
type Application struct {
	config *config.Config
	store  store.System
	logger *slog.Logger
}

func main() {
	// Missing .env is fine; regular environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Finalize(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(&cfg.Logging)

	// The store degrades rather than blocking startup: a missing or
	// unreachable database is observable through GET /test.
	st, err := store.Open(context.Background(), &cfg.Database, logger)
	if err != nil {
		logger.Warn("store connection failed, continuing degraded", "error", err)
	}

	app := &Application{
		config: cfg,
		store:  st,
		logger: logger,
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.routes(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
		defer cancel()

		err := srv.Shutdown(ctx)
		if cerr := st.Close(ctx); cerr != nil {
			logger.Error("store close error", "error", cerr)
		}
		shutdownError <- err
	}()

	logger.Info("starting server", "addr", srv.Addr)

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	err = <-shutdownError
	if err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
