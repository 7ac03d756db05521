package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mobelio/estimator_api/internal/cache"
	"github.com/mobelio/estimator_api/internal/catalog"
	"github.com/mobelio/estimator_api/internal/config"
	"github.com/mobelio/estimator_api/internal/handler"
	"github.com/mobelio/estimator_api/internal/metrics"
	"github.com/mobelio/estimator_api/internal/middleware"
	"github.com/mobelio/estimator_api/internal/service"
	"github.com/mobelio/estimator_api/internal/worker"
)

// main is the application entrypoint for the furniture estimator API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting estimator api")

	// 3. Build the in-memory store from seed data. The catalog lives for the
	// life of the process; there is no durable persistence by design.
	store := catalog.NewStore(catalog.SeedCategories(), catalog.SeedPriceEntries(), nil)
	log.Info().Int("categories", len(catalog.SeedCategories())).Msg("catalog seeded")

	// 3a. Connect to Redis (optional, backs the combination grid cache)
	var gridCache *cache.GridCache
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis connection failed - grid caching disabled")
		} else {
			defer redisClient.Close()
			gridCache = cache.NewGridCache(redisClient, cfg.Cache.GridTTL)
			log.Info().Msg("redis connected successfully")
		}
	}

	// 4. Initialize services
	catalogSvc := service.NewCatalogService(store)
	estimateSvc := service.NewEstimateService(store)
	combinationSvc := service.NewCombinationService(store, gridCache)

	// 5. Initialize handlers
	handlers := &Handlers{
		Health:       handler.NewHealthHandler(catalogSvc),
		Catalog:      handler.NewCatalogHandler(catalogSvc),
		CatalogAdmin: handler.NewCatalogAdminHandler(catalogSvc),
		Price:        handler.NewPriceHandler(store),
		Combination:  handler.NewCombinationHandler(combinationSvc),
		Estimate:     handler.NewEstimateHandler(estimateSvc),
	}

	// 6. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	writeLimiter := middleware.NewWriteRateLimiter(60, time.Minute)
	setupRoutes(router, handlers, writeLimiter)

	// 7. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 8. Start workers (warming is pointless without a cache to warm)
	if gridCache != nil {
		go worker.NewGridWarmWorker(combinationSvc, cfg.Worker.GridWarmInterval).Start(ctx)
	}

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Cancel context to stop workers
	cancel()

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health       *handler.HealthHandler
	Catalog      *handler.CatalogHandler
	CatalogAdmin *handler.CatalogAdminHandler
	Price        *handler.PriceHandler
	Combination  *handler.CombinationHandler
	Estimate     *handler.EstimateHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, writeLimiter *middleware.WriteRateLimiter) {
	router.GET("/v1/health", handlers.Health.GetHealth)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Estimation flow (public)
	router.GET("/v1/catalog", handlers.Catalog.GetCatalog)
	router.GET("/v1/catalog/categories/:id", handlers.Catalog.GetCategory)
	router.POST("/v1/estimate", handlers.Estimate.CreateEstimate)

	// Admin routes (no auth by design; writes are rate limited)
	admin := router.Group("/v1/admin")
	admin.Use(writeLimiter.Handle())
	{
		// Category Management
		admin.POST("/categories", handlers.CatalogAdmin.CreateCategory)
		admin.PUT("/categories/:id", handlers.CatalogAdmin.UpdateCategory)
		admin.DELETE("/categories/:id", handlers.CatalogAdmin.DeleteCategory)

		// Feature Management
		admin.POST("/categories/:id/features", handlers.CatalogAdmin.CreateFeature)
		admin.PUT("/categories/:id/features/:featureId", handlers.CatalogAdmin.UpdateFeature)
		admin.DELETE("/categories/:id/features/:featureId", handlers.CatalogAdmin.DeleteFeature)

		// Option Management
		admin.POST("/categories/:id/features/:featureId/options", handlers.CatalogAdmin.CreateOption)
		admin.PUT("/categories/:id/features/:featureId/options/:optionId", handlers.CatalogAdmin.UpdateOption)
		admin.DELETE("/categories/:id/features/:featureId/options/:optionId", handlers.CatalogAdmin.DeleteOption)

		// Size Management
		admin.POST("/categories/:id/sizes", handlers.CatalogAdmin.CreateSize)
		admin.PUT("/categories/:id/sizes/:sizeId", handlers.CatalogAdmin.UpdateSize)
		admin.DELETE("/categories/:id/sizes/:sizeId", handlers.CatalogAdmin.DeleteSize)

		// Price Table Management
		admin.GET("/prices", handlers.Price.ListPrices)
		admin.PUT("/prices", handlers.Price.UpsertPrice)

		// Bulk pricing grid
		admin.GET("/combinations", handlers.Combination.GetCombinations)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
