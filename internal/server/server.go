package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/employee-directory/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// NewRouter mounts the directory page, the health check and the metrics endpoint.
func NewRouter(ui *UI, health http.Handler, reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	ui.Register(mux)
	mux.Handle("GET /healthz", health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true, Registry: reg}))

	return mux
}

// StartServer serves handler on port until ctx is cancelled, then shuts down gracefully.
func StartServer(ctx context.Context, log *slog.Logger, handler http.Handler, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "Starting directory server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("directory server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	log.InfoContext(ctx, "Shutting down directory server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "Directory server shutdown failed", sl.Err(err))
		return fmt.Errorf("failed to shutdown directory server: %w", err)
	}

	return nil
}
