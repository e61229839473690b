package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/light-bringer/ecofinds-storefront/internal/pkg/logging"
	"github.com/light-bringer/ecofinds-storefront/internal/services"
	"github.com/light-bringer/ecofinds-storefront/internal/transport/grpc/health"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load configuration from .env and environment variables
	_ = godotenv.Load()
	config, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(config.LogMode, config.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting EcoFinds storefront",
		zap.String("catalog_source", config.Services.CatalogSource),
		zap.String("http_port", config.HTTPPort),
		zap.String("grpc_port", config.GRPCPort),
		zap.Bool("redis", config.Services.RedisURL != ""),
	)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, config.Services, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Start the operations gRPC server first so health checks see NOT_SERVING
	// while the catalog loads
	grpcServer := health.NewServer(logger)
	lis, err := net.Listen("tcp", ":"+config.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	// 4. Initial catalog load; the server does not start without a catalog
	if err := serviceOpts.Catalog.Load(ctx); err != nil {
		grpcServer.Stop()
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	grpcServer.SetCatalogReady(true)

	// 5. Scheduled and on-demand reloads
	reloads := services.NewReloadScheduler(serviceOpts.Catalog, logger)
	if config.ReloadCron != "" {
		if err := reloads.Schedule(config.ReloadCron); err != nil {
			grpcServer.Stop()
			return err
		}
		logger.Info("catalog reload scheduled", zap.String("schedule", config.ReloadCron))
	}
	reloads.Start()

	// 6. HTTP server
	httpServer := &http.Server{
		Addr:              ":" + config.HTTPPort,
		Handler:           serviceOpts.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// 7. Signals: SIGHUP reloads, SIGINT/SIGTERM shut down
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range sigCh {
		if sig == syscall.SIGHUP {
			logger.Info("SIGHUP received, reloading catalog")
			go reloads.RunOnce(ctx)
			continue
		}
		break
	}

	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}
	reloads.Stop()
	grpcServer.Stop()

	return nil
}

// Config holds application configuration.
type Config struct {
	HTTPPort   string
	GRPCPort   string
	LogMode    string
	LogLevel   string
	ReloadCron string
	Services   services.Config
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() (Config, error) {
	maxRequests, err := strconv.Atoi(getEnvOrDefault("RATE_LIMIT_MAX_REQUESTS", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_MAX_REQUESTS: %w", err)
	}

	window, err := parseWindow(getEnvOrDefault("RATE_LIMIT_WINDOW", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	workers, err := strconv.Atoi(getEnvOrDefault("ANALYTICS_WORKERS", "4"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid ANALYTICS_WORKERS: %w", err)
	}

	return Config{
		HTTPPort:   getEnvOrDefault("HTTP_PORT", "8080"),
		GRPCPort:   getEnvOrDefault("GRPC_PORT", "9090"),
		LogMode:    getEnvOrDefault("LOG_MODE", "development"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		ReloadCron: os.Getenv("CATALOG_RELOAD_CRON"),
		Services: services.Config{
			CatalogSource:   getEnvOrDefault("CATALOG_SOURCE", services.SourceFile),
			ExploreSeedPath: getEnvOrDefault("CATALOG_SEED_PATH", "data/explore-seed.json"),
			LandingSeedPath: getEnvOrDefault("LANDING_SEED_PATH", "data/landing-seed.json"),
			// Default for local development with emulator
			SpannerDB:        getEnvOrDefault("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/ecofinds-db"),
			RedisURL:         os.Getenv("REDIS_URL"),
			RateLimitMax:     maxRequests,
			RateLimitWindow:  window,
			AnalyticsWorkers: workers,
			AllowedOrigins:   splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
	}, nil
}

// parseWindow accepts a Go duration ("10m") or plain milliseconds ("600000").
func parseWindow(raw string) (time.Duration, error) {
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(raw)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
