package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iDarcky/retrocircuit/internal/arena"
	"github.com/iDarcky/retrocircuit/internal/catalog"
	"github.com/iDarcky/retrocircuit/internal/config"
	"github.com/iDarcky/retrocircuit/internal/finder"
	"github.com/iDarcky/retrocircuit/internal/plugin"
	"github.com/iDarcky/retrocircuit/internal/server"
	"github.com/iDarcky/retrocircuit/internal/services"
	"github.com/iDarcky/retrocircuit/internal/store"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	flag.Parse()

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("RetroCircuit server starting")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// Open the catalog database
	db, err := store.New(cfg.GetString("store.path"))
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	defer db.Close()

	repo := services.NewSQLiteDeviceRepository(db.DB())

	// Create module registry
	registry := plugin.NewRegistry(logger)

	// Register all modules (compile-time composition)
	modules := []plugin.Plugin{
		catalog.New(db, repo),
		finder.New(repo),
		arena.New(repo),
	}
	for _, m := range modules {
		if err := registry.Register(m); err != nil {
			logger.Fatal("failed to register module", zap.Error(err))
		}
	}

	// Initialize all modules
	if err := registry.InitAll(cfg); err != nil {
		logger.Fatal("failed to initialize modules", zap.Error(err))
	}

	// Start modules (the catalog module migrates and seeds here)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := registry.StartAll(ctx); err != nil {
		logger.Fatal("failed to start modules", zap.Error(err))
	}

	// Create and start HTTP server
	srv := server.New(cfg.GetString("server.addr"), registry, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("RetroCircuit server ready", zap.String("addr", cfg.GetString("server.addr")))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	registry.StopAll()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("RetroCircuit server stopped")
}
