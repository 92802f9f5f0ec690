package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/remaimber-it/matchdrill/internal/api"
	"github.com/remaimber-it/matchdrill/internal/infrastructure/config"
	"github.com/remaimber-it/matchdrill/internal/infrastructure/logging"
	"github.com/remaimber-it/matchdrill/internal/infrastructure/metrics"
	"github.com/remaimber-it/matchdrill/internal/ledger"
	"github.com/remaimber-it/matchdrill/internal/service"
	"github.com/remaimber-it/matchdrill/internal/store"

	_ "github.com/remaimber-it/matchdrill/docs" // generated swagger docs
)

// @title           matchdrill API
// @version         1.0
// @description     Matching-question drills: parse bank files, run an exam session and keep per-question statistics.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	logger := logging.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		stop()
		os.Exit(1)
	}
}

// run wires the dependencies and serves until ctx is cancelled. The store
// is closed only after serve has drained every request.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// ── Dependencies ────────────────────────────────────────────────
	driver, err := store.ParseDriver(cfg.StoreDriver)
	if err != nil {
		return fmt.Errorf("invalid store driver: %w", err)
	}
	db, err := store.Open(ctx, driver, cfg.StoreDSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	stats, err := ledger.Open(ctx, db, logger)
	if err != nil {
		return fmt.Errorf("load statistics: %w", err)
	}

	m := metrics.New()
	exams := service.NewExamService(db, stats, m, logger)
	handler := api.NewHandler(exams, logger)

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Handler:           api.NewRouter(handler, m, logger, cfg.CORSOrigins),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.ServerAddress)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	logger.Info("starting server", "address", ln.Addr().String(), "driver", driver)
	return serve(ctx, server, ln, cfg.ShutdownTimeout, logger)
}

// serve runs server on ln until ctx is cancelled, then shuts it down and
// returns once Shutdown has finished.
func serve(ctx context.Context, server *http.Server, ln net.Listener, timeout time.Duration, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.Info("shutting down server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
