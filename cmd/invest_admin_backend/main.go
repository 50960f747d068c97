package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/SscSPs/investment_admin_core/internal/adapters/messaging/rabbitmq"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_admin_core/internal/core/ports/services"
	"github.com/SscSPs/investment_admin_core/internal/core/services"
	"github.com/SscSPs/investment_admin_core/internal/handlers"
	"github.com/SscSPs/investment_admin_core/internal/middleware"
	"github.com/SscSPs/investment_admin_core/internal/platform/config"
	"github.com/SscSPs/investment_admin_core/internal/platform/metrics"
	"github.com/SscSPs/investment_admin_core/internal/repositories/database/memory"
	"github.com/SscSPs/investment_admin_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/investment_admin_core/pkg/database"
)

// @title Investment Admin API
// @version 1.0
// @description Back-office API for approving and rejecting investments.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	publisher, closePublisher, err := openPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	serviceContainer := services.NewServiceContainer(cfg, repos, publisher, recorder)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handlers.RegisterValidators(); err != nil {
		return err
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), recorder.GinMiddleware())
	if corsMiddleware := handlers.CORS(cfg); corsMiddleware != nil {
		r.Use(corsMiddleware)
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, metrics.Handler(registry)); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to run: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore builds the repositories for the configured STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		if cfg.SeedFile != "" {
			n, err := store.LoadSeedFile(cfg.SeedFile)
			if err != nil {
				return portsrepo.RepositoryProvider{}, nil, err
			}
			logger.Info("Memory store seeded", slog.String("file", cfg.SeedFile), slog.Int("documents", n))
		}
		logger.Warn("Using in-memory store; data is lost on restart")
		return memory.NewRepositoryProvider(store), func() {}, nil

	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			dbPool.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}
}

// openPublisher connects to RabbitMQ when RABBITMQ_URL is set, otherwise events
// are only logged.
func openPublisher(cfg *config.Config, logger *slog.Logger) (portssvc.EventPublisher, func(), error) {
	if cfg.RabbitMQURL == "" {
		logger.Warn("RABBITMQ_URL not set; investment events will only be logged")
		return rabbitmq.LogPublisher{}, func() {}, nil
	}

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.EventsQueue)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Publishing investment events", slog.String("queue", cfg.EventsQueue))
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close RabbitMQ publisher", slog.String("error", err.Error()))
		}
	}, nil
}
