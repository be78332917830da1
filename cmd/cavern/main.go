// Package main is the entry point for Cavern.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samdwyer/cavern/internal/game"
	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/metrics"
	"github.com/samdwyer/cavern/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(cfg game.Config) error {
	// The terminal belongs to the game, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logCfg := logger.ConfigFromEnv()
	logCfg.Output = logFile
	logger.Init(logCfg)
	entry := logger.Component("main")

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		entry.WithError(err).Warn("telemetry setup failed, running without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				entry.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	g, err := game.New(cfg, collector)
	if err != nil {
		return fmt.Errorf("initializing game: %w", err)
	}
	defer g.Close()

	return g.Run(ctx)
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Component("metrics").WithError(err).Error("metrics server stopped")
		}
	}()
	logger.Component("metrics").WithField("addr", addr).Info("serving metrics")
	return srv
}
