package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smartcash/internal/api"
	"smartcash/internal/api/handlers"
	"smartcash/internal/memcache"
	"smartcash/internal/service"
	"smartcash/internal/storage"
	"smartcash/pkg/auth"
	"smartcash/pkg/config"
	"smartcash/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting SmartCash service",
		zap.String("backend", cfg.Storage.Backend))

	// Initialize storage backend (Postgres or local fallback)
	ctx := context.Background()
	backend, err := storage.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer backend.Cleanup()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	cache := memcache.NewTransactionList()
	txService := service.NewTransactionService(backend.Store, cache, appLogger)

	var authService *service.AuthService
	if backend.Users != nil {
		authService = service.NewAuthService(backend.Users, jwtManager, appLogger)
	}

	var insightService *service.InsightService
	if cfg.GigaChat.APIKey != "" {
		insightService, err = service.NewInsightService(&cfg.GigaChat, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize insight service", zap.Error(err))
		}
		defer insightService.Close()
	} else {
		appLogger.Warn("GIGACHAT_API_KEY not set, insights will be empty")
	}

	// Initialize handlers
	var authHandler *handlers.AuthHandler
	if authService != nil {
		authHandler = handlers.NewAuthHandler(authService, appLogger)
	}
	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	dashHandler := handlers.NewDashboardHandler(txService, insightService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, txHandler, dashHandler, jwtManager, api.RouterConfig{
		LocalMode:         cfg.Storage.Backend == config.BackendLocal,
		AdminLocalEnabled: cfg.Admin.LocalEnabled,
	}, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
