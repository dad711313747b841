// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"vitrine/internal/domain/catalog"
	"vitrine/internal/domain/host"
	"vitrine/internal/domain/options"
	"vitrine/internal/infrastructure/http/v1/handlers"
	"vitrine/internal/infrastructure/http/v1/middleware"
	"vitrine/internal/infrastructure/storage/postgres"
	"vitrine/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// CatalogService runs catalog generation
	CatalogService *catalog.Service

	// OptionsService loads the filter option lists
	OptionsService *options.Service

	// HostService validates host-environment actions
	HostService *host.Service

	// RunLog serves the generation run history (may be nil)
	RunLog *postgres.RunLog
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		catalogHandler := handlers.NewCatalogHandler(cfg.CatalogService, cfg.RunLog)
		catalogGroup := v1.Group("/catalog")
		{
			catalogGroup.POST("/generate", catalogHandler.Generate)
			catalogGroup.GET("/status", catalogHandler.Status)
			catalogGroup.GET("/runs", catalogHandler.Runs)
		}

		optionsHandler := handlers.NewOptionsHandler(cfg.OptionsService)
		v1.GET("/options", optionsHandler.List)

		hostHandler := handlers.NewHostHandler(cfg.HostService)
		v1.POST("/host/fullscreen", hostHandler.LaunchFullScreen)
	}

	return router
}
