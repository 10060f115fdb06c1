// bannerd — banner-message dispatcher. Drains the shared command queue
// into per-device appliance workers and serves the browser-facing query
// endpoint.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/messagenet/bannerd/pkg/api"
	"github.com/messagenet/bannerd/pkg/appliance"
	"github.com/messagenet/bannerd/pkg/config"
	"github.com/messagenet/bannerd/pkg/database"
	"github.com/messagenet/bannerd/pkg/dispatcher"
	"github.com/messagenet/bannerd/pkg/journal"
	"github.com/messagenet/bannerd/pkg/registry"
	"github.com/messagenet/bannerd/pkg/services"
	"github.com/messagenet/bannerd/pkg/version"
	"github.com/messagenet/bannerd/pkg/wtc"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envPath := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8081")

	ctx := context.Background()

	// 1. Configuration
	cfg := config.LoadFromEnv()
	slog.Info("Starting bannerd",
		"version", version.Full(),
		"http_port", httpPort,
		"node", cfg.NodeName,
		"state_dir", cfg.StateDir)

	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		slog.Error("Failed to create state directory", "dir", cfg.StateDir, "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Command queue, with stale rows from a previous run purged
	queue := wtc.NewQueue(dbClient.Client, cfg.NodeName, cfg.Queue.PollInterval)
	if cfg.Queue.PurgeOnStartup {
		n, err := queue.PurgeNode(ctx)
		if err != nil {
			slog.Error("Failed to purge stale queue rows", "error", err)
			// Non-fatal — continue
		} else if n > 0 {
			slog.Info("Purged stale queue rows", "count", n)
		}
	}

	// 4. Device registry
	reg, err := registry.Build(ctx, dbClient.Client)
	if err != nil {
		slog.Error("Failed to build device registry", "error", err)
		os.Exit(1)
	}
	slog.Info("Device registry built", "appliances", len(reg.Appliances()))

	// 5. Domain services and appliance transport
	hardwareService := services.NewHardwareService(dbClient.Client)
	bannerService := services.NewBannerService(dbClient.Client)
	sender := appliance.NewClient(cfg.Transport, hardwareService)
	journals := journal.NewStore(cfg.StateDir)
	slog.Info("Services initialized")

	// 6. Dispatcher pool (before HTTP server)
	pool := dispatcher.NewPool(cfg.NodeName, reg, queue, sender, bannerService,
		journals, cfg.Queue, cfg.Transport)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start dispatcher pool", "error", err)
		os.Exit(1)
	}

	// 7. HTTP query endpoint (non-blocking)
	server := api.NewServer(queue, hardwareService, bannerService, journals, cfg.Queue)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("bannerd started successfully", "node", cfg.NodeName)

	// 8. Wait for shutdown signal or server error. HUP, USR1, and PIPE
	// historically meant "close handles and go away"; they shut down
	// cooperatively here too rather than killing the process mid-write.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT,
		syscall.SIGHUP, syscall.SIGUSR1, syscall.SIGPIPE)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: workers finish their current command
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Dispatcher pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
