package main

import (
	"log/slog"
	"os"

	"github.com/costbook/costbook_app/internal/core/services"
	"github.com/costbook/costbook_app/internal/handlers"
	"github.com/costbook/costbook_app/internal/middleware"
	"github.com/costbook/costbook_app/internal/repositories/kv"
	"github.com/costbook/costbook_app/pkg/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Costbook Backend API
// @version 1.0
// @description Cost-code catalog, invoice drafting and invoice directory backend.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Apply embedded schema migrations before opening the main handle.
	if err := kv.RunMigrations(cfg.SQLitePath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied.")

	store, err := kv.NewSQLiteStore(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Store opened", slog.String("path", cfg.SQLitePath))

	repos := kv.NewRepositoryProvider(store)
	container := services.NewServiceContainer(&repos)

	if err := handlers.RegisterCustomValidations(); err != nil {
		logger.Error("Failed to register validations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("error", err.Error()), slog.String("rate_limit", cfg.RateLimit))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
