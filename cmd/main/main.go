package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/UnknownOlympus/employee-directory/internal/client"
	"github.com/UnknownOlympus/employee-directory/internal/config"
	"github.com/UnknownOlympus/employee-directory/internal/lib/logger/sl"
	"github.com/UnknownOlympus/employee-directory/internal/metrics"
	"github.com/UnknownOlympus/employee-directory/internal/server"
	"github.com/UnknownOlympus/employee-directory/internal/services/employees"
	"github.com/UnknownOlympus/employee-directory/internal/view"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is the entry point of the application.
func main() {
	var wgr sync.WaitGroup
	delta := 2

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := sl.New(cfg.Env, os.Stdout)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	httpClient := client.CreateHTTPClient(logger, cfg.API.Timeout)
	employeeAPI := client.NewEmployeeClient(httpClient, appMetrics, cfg.API.BaseURL)
	store := employees.NewStore(logger, employeeAPI, appMetrics)
	directory := employees.NewDirectory(logger, store, employees.Options{
		View: view.Options{
			PageSize:          cfg.View.PageSize,
			ResetPageOnSearch: cfg.View.ResetPageOnSearch,
		},
		KeepInputOnFailure: cfg.Form.KeepInputOnFailure,
	})

	router := server.NewRouter(
		server.NewUI(directory, logger),
		server.NewHealthChecker(cfg.API.BaseURL, logger),
		reg,
	)

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		logger.InfoContext(ctx, "Starting Directory Service", "api", cfg.API.BaseURL)
		if err := directory.Start(ctx, cfg.API.RefreshInterval); err != nil {
			logger.ErrorContext(ctx, "Directory Service failed", sl.Err(err))
		}
		logger.InfoContext(ctx, "Directory Service stopped.")
	}()

	go func() {
		defer wgr.Done()
		if err := server.StartServer(ctx, logger, router, cfg.Server.Port); err != nil {
			logger.ErrorContext(ctx, "Directory server failed", sl.Err(err))
			stop()
		}
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	wgr.Wait()

	logger.InfoContext(ctx, "Application stopped gracefully...")
}
