// Package main is the entry point for the Vitrine catalog server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"vitrine/internal/domain/catalog"
	"vitrine/internal/domain/host"
	"vitrine/internal/domain/options"
	v1 "vitrine/internal/infrastructure/http/v1"
	"vitrine/internal/infrastructure/storage/postgres"
	"vitrine/pkg/logger"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting vitrine server")

	// --- Database connection ---
	dsn := mustEnv("DATABASE_URL")
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	// --- Query assembler ---
	assemblerCfg := catalog.Config{
		Scheme: catalog.Scheme{
			SegmentID:     getEnvInt("SEGMENT_CLASS_ID", 100),
			DepartmentIDs: getEnvInts("DEPARTMENT_CLASS_IDS", []int{101, 102, 201, 202, 301, 401}),
			CategoryLow:   getEnvInt("CATEGORY_CLASS_LOW", 1000),
			CategoryHigh:  getEnvInt("CATEGORY_CLASS_HIGH", 9999),
		},
		Scope: catalog.StockScope{
			Companies: getEnvInts("STOCK_COMPANIES", []int{1, 2, 4}),
			Locations: getEnvInts("STOCK_LOCATIONS", []int{10100, 10400, 11200}),
		},
		MaxPriceTable: getEnvInt("MAX_PRICE_TABLE", 25),
	}
	assembler, err := catalog.NewAssembler(assemblerCfg)
	if err != nil {
		log.Fatalw("invalid assembler configuration", "error", err)
	}

	// --- Generation run log ---
	runLog, err := postgres.NewRunLog(pool)
	if err != nil {
		log.Fatalw("failed to initialize run log", "error", err)
	}

	// --- Services ---
	images := host.NewImageResolver(
		getEnv("IMAGE_HOST", "https://erp.example.com"),
		getEnv("IMAGE_FALLBACK_HOST", "https://erp-mirror.example.com"),
	)

	executor := postgres.NewCatalogExecutor(pool, log)
	catalogService := catalog.NewService(
		assembler,
		executor,
		runLog,
		images,
		getEnvInt("PAGE_CAPACITY", catalog.DefaultPageCapacity),
		log,
	)

	optionsRepo := postgres.NewOptionsRepo(pool)
	optionsService := options.NewService(optionsRepo, assemblerCfg.Scheme, log)

	hostService := host.NewService(
		getEnv("HOST_INSTANCE_ID", "vitrine"),
		getEnv("HOST_INITIAL_PAGE", "index.html"),
		log,
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:           pool,
		Logger:         log,
		CatalogService: catalogService,
		OptionsService: optionsService,
		HostService:    hostService,
		RunLog:         runLog,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}

// getEnvInts parses a comma-separated list of integers.
func getEnvInts(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return defaultValue
		}
		out = append(out, n)
	}
	return out
}
