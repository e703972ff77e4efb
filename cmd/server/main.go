// Package main is the entry point for the stocktally API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stocktally/internal/config"
	"stocktally/internal/domain/catalogs/item"
	"stocktally/internal/domain/catalogs/location"
	"stocktally/internal/domain/counts"
	"stocktally/internal/domain/reports"
	"stocktally/internal/domain/summary"
	"stocktally/internal/importer"
	v1 "stocktally/internal/infrastructure/http/v1"
	"stocktally/internal/infrastructure/storage/sqlite"
	"stocktally/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting stocktally server")

	db, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to open database", "path", cfg.DBPath, "error", err)
	}
	defer db.Close()
	log.Infow("database ready", "path", cfg.DBPath)

	// --- Repositories ---
	itemRepo := sqlite.NewItemRepo(db)
	locationRepo := sqlite.NewLocationRepo(db)
	countRepo := sqlite.NewCountRepo(db)
	summaryRepo := sqlite.NewSummaryRepo(db)
	reportRepo := sqlite.NewReportRepo(db)

	// --- Services ---
	itemService := item.NewService(itemRepo)
	locationService := location.NewService(locationRepo)
	countService := counts.NewService(countRepo, itemService, locationService)
	summaryService := summary.NewService(summaryRepo)
	reportService := reports.NewService(reportRepo)

	countImporter := importer.NewCountImporter(countService, locationService)

	router := v1.NewRouter(v1.RouterConfig{
		DB:               db,
		Logger:           log,
		Items:            itemService,
		Locations:        locationService,
		Counts:           countService,
		Summary:          summaryService,
		Reports:          reportService,
		CountImporter:    countImporter,
		ImportFailureDir: cfg.ImportFailureDir,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
