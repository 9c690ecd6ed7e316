package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikkim/pcbuild-backend/config"
	"github.com/ikkim/pcbuild-backend/internal/app/controller"
	"github.com/ikkim/pcbuild-backend/internal/app/repository"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/db"
	"github.com/ikkim/pcbuild-backend/internal/middleware"
	"github.com/ikkim/pcbuild-backend/internal/pricing"
	"github.com/ikkim/pcbuild-backend/internal/router"
	"github.com/ikkim/pcbuild-backend/internal/storage"
	"github.com/ikkim/pcbuild-backend/pkg/logger"
	"github.com/ikkim/pcbuild-backend/pkg/openai"
	"github.com/ikkim/pcbuild-backend/pkg/redis"
)

// unconfiguredGenerator fails every request so the admin API stays usable without an AI key.
type unconfiguredGenerator struct {
	err error
}

func (g unconfiguredGenerator) GenerateJSON(context.Context, string, string, string, map[string]any) ([]byte, error) {
	return nil, g.err
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      cfg.Server.LogFormat,
		EnableColor: cfg.Server.LogFormat == "console",
	})

	logger.Info("Starting PC Build Backend Server", map[string]interface{}{
		"environment":   cfg.Server.Environment,
		"port":          cfg.Server.Port,
		"log_level":     logLevel,
		"state_backend": cfg.State.Backend,
	})

	// Initialize state storage
	var stateRepo repository.StateRepository
	switch cfg.State.Backend {
	case config.StateBackendRedis:
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to initialize Redis", err)
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
		stateRepo = repository.NewRedisStateRepository(redis.GetClient(), cfg.State.KeyPrefix)
	default:
		if err := db.Initialize(cfg); err != nil {
			logger.Fatal("Failed to initialize database", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close database connection", err)
			}
		}()
		if err := db.Migrate(); err != nil {
			logger.Fatal("Failed to run migrations", err)
		}
		stateRepo = repository.NewStateRepository(db.GetDB())
	}

	engine, err := pricing.NewEngine(cfg.Pricing.Markup)
	if err != nil {
		logger.Fatal("Invalid pricing markup", err, map[string]interface{}{
			"markup": cfg.Pricing.Markup,
		})
	}

	// Initialize generator
	var generator service.JSONGenerator
	aiClient, err := openai.NewClient(openai.Config{
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
		Timeout: cfg.AI.Timeout,
	})
	if err != nil {
		logger.Warn("AI client not configured, quote generation is disabled", map[string]interface{}{
			"error": err.Error(),
		})
		generator = unconfiguredGenerator{err: err}
	} else {
		logger.Info("AI client configured", map[string]interface{}{
			"model": aiClient.Model(),
		})
		generator = aiClient
	}

	// Initialize document storage
	var objectStore storage.ObjectStore = storage.DisabledStorage{}
	if cfg.S3.S3Enabled() {
		objectStore = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
		logger.Info("Document publishing enabled", map[string]interface{}{
			"bucket": cfg.S3.Bucket,
			"folder": cfg.S3.DocumentFolder,
		})
	}

	// Initialize services
	ctx := context.Background()
	catalogService := service.NewCatalogService(ctx, stateRepo)
	itemService := service.NewAdditionalItemService(ctx, stateRepo)
	bundleService := service.NewBundleService(ctx, stateRepo)
	commissionService := service.NewCommissionService(ctx, stateRepo)
	adminService := service.NewAdminService(ctx, stateRepo, cfg.Admin.DefaultPassphrase)
	settlementService := service.NewSettlementService(engine, catalogService, bundleService, itemService, commissionService)
	recommendationService := service.NewRecommendationService(catalogService, generator)
	documentService := service.NewDocumentService(engine, catalogService, bundleService, objectStore, cfg.S3.DocumentFolder)

	// Initialize controllers
	quoteController := controller.NewQuoteController(recommendationService)
	adminController := controller.NewAdminController(adminService)
	catalogController := controller.NewCatalogController(catalogService)
	additionalItemController := controller.NewAdditionalItemController(itemService, settlementService)
	bundleController := controller.NewBundleController(bundleService, settlementService)
	documentController := controller.NewDocumentController(documentService)
	commissionController := controller.NewCommissionController(commissionService)

	// Initialize middleware
	adminMiddleware := middleware.NewAdminMiddleware(adminService)

	// Setup router
	r := router.NewRouter(
		quoteController,
		adminController,
		catalogController,
		additionalItemController,
		bundleController,
		documentController,
		commissionController,
		adminMiddleware,
		cfg,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r.Setup(),
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	logger.Info("Server stopped successfully")
}
