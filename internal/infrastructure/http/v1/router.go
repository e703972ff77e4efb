// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"stocktally/internal/domain/catalogs/item"
	"stocktally/internal/domain/catalogs/location"
	"stocktally/internal/domain/counts"
	"stocktally/internal/domain/reports"
	"stocktally/internal/domain/summary"
	"stocktally/internal/importer"
	"stocktally/internal/infrastructure/http/v1/handlers"
	"stocktally/internal/infrastructure/http/v1/middleware"
	"stocktally/internal/infrastructure/storage/sqlite"
	"stocktally/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	DB     *sqlite.DB
	Logger *logger.Logger

	Items     *item.Service
	Locations *location.Service
	Counts    *counts.Service
	Summary   *summary.Service
	Reports   *reports.Service

	CountImporter *importer.CountImporter

	// ImportFailureDir is where per-batch failure logs are written.
	ImportFailureDir string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.DB)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	catalogHandler := handlers.NewCatalogHandler(cfg.Items, cfg.ImportFailureDir)
	locationHandler := handlers.NewLocationHandler(cfg.Locations)
	countHandler := handlers.NewCountHandler(cfg.Counts, cfg.CountImporter, cfg.ImportFailureDir)
	summaryHandler := handlers.NewSummaryHandler(cfg.Summary)
	reportHandler := handlers.NewReportHandler(cfg.Reports)

	v1 := router.Group("/api/v1")
	{
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/items", catalogHandler.List)
			catalog.GET("/items/:code", catalogHandler.Get)
			catalog.POST("/items/import", catalogHandler.Import)
			catalog.PUT("/items/:code/inventory", catalogHandler.Correct)
			catalog.POST("/corrections", catalogHandler.Corrections)
		}

		v1.GET("/deposits", locationHandler.Deposits)
		v1.GET("/racks", locationHandler.Racks)

		countsGroup := v1.Group("/counts")
		{
			countsGroup.GET("", countHandler.List)
			countsGroup.POST("", countHandler.Submit)
			countsGroup.GET("/resolve/:code", countHandler.Resolve)
			countsGroup.POST("/import", countHandler.Import)
			countsGroup.GET("/:id", countHandler.Get)
			countsGroup.PUT("/:id", countHandler.Update)
			countsGroup.DELETE("/:id", countHandler.Delete)
		}

		summaryGroup := v1.Group("/summary")
		{
			summaryGroup.GET("", summaryHandler.List)
			summaryGroup.POST("/rebuild", summaryHandler.Rebuild)
		}

		reportsGroup := v1.Group("/reports")
		{
			reportsGroup.GET("/counts", reportHandler.Counts)
			reportsGroup.GET("/differences", reportHandler.Differences)
			reportsGroup.GET("/uncounted", reportHandler.Uncounted)
			reportsGroup.GET("/remarks", reportHandler.Remarks)
		}
	}

	return router
}
