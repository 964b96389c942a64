package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/bizedge/bizedge_backend/internal/adapters/database/mongodb"
	"github.com/bizedge/bizedge_backend/internal/core/services"
	"github.com/bizedge/bizedge_backend/internal/handlers"
	"github.com/bizedge/bizedge_backend/internal/middleware"
	"github.com/bizedge/bizedge_backend/internal/platform/config"
	"github.com/bizedge/bizedge_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title BizEdge Backend API
// @version 1.0
// @description Business accounting backend for parties, products, invoices, transactions and insights.

// @host localhost:8000
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect to the document store. A failed connection is not fatal:
	// the server keeps running and data endpoints answer 503 until the
	// database comes back.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	cancel()
	if err != nil {
		logger.Warn("Database connection failed, continuing in degraded mode",
			slog.String("error", err.Error()))
	} else {
		logger.Info("Database connection established", slog.String("database", cfg.DatabaseName))
	}
	defer db.Close(context.Background())

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := mongodb.NewRepositoryProvider(db)
	svcContainer := services.NewServiceContainer(cfg, repos)
	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
