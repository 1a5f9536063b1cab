// cmd/activities-server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"activities-service/internal/common/config"
	"activities-service/internal/common/logger"
	"activities-service/internal/common/observability"
	"activities-service/internal/models"
	"activities-service/internal/registry"
	"activities-service/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	zapLog.Info("Starting activities server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild the logger with the configured level and format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Seed the registry ---
	var seed map[string]models.Activity
	if cfg.Seed.CatalogPath != "" {
		seed, err = registry.SeedFromFile(cfg.Seed.CatalogPath)
		if err != nil {
			zapLog.Fatal("catalog seed failed", zap.Error(err))
		}
		zapLog.Info("Registry seeded from catalog file",
			zap.String("path", cfg.Seed.CatalogPath),
			zap.Int("activities", len(seed)),
		)
	} else {
		seed = registry.DefaultSeed()
		zapLog.Info("Registry seeded from built-in catalog",
			zap.Int("activities", len(seed)),
		)
	}
	reg := registry.New(seed)

	srv := server.New(cfg, reg, log, server.WithObservability(obs))
	httpSrv := srv.HTTPServer()

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", cfg.Server.Addr()))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Activities server stopped gracefully")
}
