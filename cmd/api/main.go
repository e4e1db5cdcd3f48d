package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fraudlens/fraudlens/internal/api/handlers"
	"github.com/fraudlens/fraudlens/internal/api/router"
	"github.com/fraudlens/fraudlens/internal/config"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/pkg/validator"
	"github.com/fraudlens/fraudlens/internal/repository/postgres"
	"github.com/fraudlens/fraudlens/internal/services"
	"github.com/fraudlens/fraudlens/internal/storage"
	"github.com/fraudlens/fraudlens/internal/worker"
	"github.com/fraudlens/fraudlens/migrations"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := postgres.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, migrations.GetFS()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("Database ready")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var uploader storage.Uploader
	switch cfg.Storage.Driver {
	case "s3":
		uploader, err = storage.NewS3Uploader(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("initializing s3 storage: %w", err)
		}
	default:
		uploader, err = storage.NewLocalUploader(cfg.Storage.LocalDir)
		if err != nil {
			return fmt.Errorf("initializing local storage: %w", err)
		}
	}

	// Repositories
	accountRepo := postgres.NewAccountRepository(db)
	caseRepo := postgres.NewCaseRepository(db)
	integrationRepo := postgres.NewIntegrationRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)

	// Services
	authService := services.NewAuthService(accountRepo, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, cfg.Auth.BCryptCost, log)
	accountService := services.NewAccountService(accountRepo, log)
	caseService := services.NewCaseService(caseRepo, subscriptionRepo, uploader, log)
	integrationService := services.NewIntegrationService(integrationRepo, log)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, log)

	val := validator.New()

	h := &router.Handlers{
		Health:       handlers.NewHealthHandler(db, log),
		Auth:         handlers.NewAuthHandler(authService, accountService, subscriptionService, cfg, log, val),
		Case:         handlers.NewCaseHandler(caseService, log, val),
		Integration:  handlers.NewIntegrationHandler(integrationService, log, val),
		Subscription: handlers.NewSubscriptionHandler(subscriptionService, log, val),
	}

	// Monthly usage reset worker
	resetter := worker.NewUsageResetter(subscriptionService, cfg.Usage.ResetSchedule, log)
	if err := resetter.Start(ctx); err != nil {
		return fmt.Errorf("starting usage reset worker: %w", err)
	}
	defer resetter.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]interface{}{
			"addr": srv.Addr,
			"env":  cfg.Server.Environment,
		}).Info("Server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
