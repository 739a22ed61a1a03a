// Package main is the entry point for the Strategic Planning API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/strategic-planning/backend/config"
	"github.com/strategic-planning/backend/internal/infra/db"
	"github.com/strategic-planning/backend/internal/infra/dependency"
	"github.com/strategic-planning/backend/internal/integration/adapters"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Strategic Planning API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
	}

	// Summary cache is optional
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = adapters.NewRedisClient(cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Warn("Redis unavailable, plan summaries will not be cached", "error", err)
			redisClient = nil
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					slog.Error("Failed to close redis client", "error", err)
				}
			}()
		}
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	injector, err := dependency.NewInjector(workerCtx, cfg, database, dependency.Options{Redis: redisClient})
	if err != nil {
		slog.Error("Failed to initialize dependencies", "error", err)
		os.Exit(1)
	}

	if injector.EmailWorker != nil {
		go injector.EmailWorker.Start(workerCtx)
	}

	cleanupInterval := cfg.RateLimit.ExportWindow
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				injector.ExportRateLimiter.Cleanup()
			}
		}
	}()

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
