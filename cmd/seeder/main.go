package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/employee-directory/internal/client"
	"github.com/UnknownOlympus/employee-directory/internal/config"
	"github.com/UnknownOlympus/employee-directory/internal/devseed"
	"github.com/UnknownOlympus/employee-directory/internal/lib/logger/sl"
	"github.com/UnknownOlympus/employee-directory/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.MustLoad()

	count := flag.Int("count", cfg.Seed.Count, "number of sample employees to create")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := sl.New(cfg.Env, os.Stdout)
	httpClient := client.CreateHTTPClient(logger, cfg.API.Timeout)
	employeeAPI := client.NewEmployeeClient(httpClient, metrics.NewMetrics(prometheus.NewRegistry()), cfg.API.BaseURL)

	if err := devseed.Run(ctx, logger, employeeAPI, *count); err != nil {
		log.Fatal(err)
	}
}
