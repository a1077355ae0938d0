// Market Insight API serves store catalog queries, census demographics and
// location recommendations for small businesses.
//
// @title Market Insight API
// @version 1.0
// @description Store catalog, census demographics and location recommendations for small businesses.
// @BasePath /
package main

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.3 init --dir ../.. --generalInfo cmd/api/main.go --output ../../docs

import (
	"context"
	"net/http"
	"time"

	"market-insight-api/docs"
	"market-insight-api/internal/cache"
	"market-insight-api/internal/config"
	"market-insight-api/internal/handler"
	"market-insight-api/internal/logging"
	"market-insight-api/internal/metrics"
	"market-insight-api/internal/repository"
	"market-insight-api/internal/service"
	"market-insight-api/internal/storeapi"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	_ = godotenv.Load()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(config.LogLevel, config.LogFormat)

	ctx := context.Background()

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	// Statistics cache is optional
	var statsCache *cache.Cache
	rdb, err := cache.Open(ctx, config.RedisAddr, config.RedisPassword, config.RedisDB)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, statistics cache disabled")
	} else if rdb != nil {
		defer rdb.Close()
		statsCache = cache.New(rdb, "insight:stats:", config.StatsCacheTTL)
	}

	registry := storeapi.NewClient(config.StoreAPIBaseURL, config.StoreAPIKey, config.StoreAPITimeout, nil)

	// Initialize layers
	storeService := service.NewStoreService(repo, statsCacheOrNil(statsCache))
	syncService := service.NewSyncService(registry, repo, statsCacheOrNil(statsCache), service.SyncOptions{
		PageSize:     config.SyncPageSize,
		MaxPerRegion: config.SyncMaxPerRegion,
		RegionDelay:  config.SyncRegionDelay,
		Regions:      syncRegions(config.SyncProvinceCode),
	})
	demographicService := service.NewDemographicService(repo)
	recommendationService := service.NewRecommendationService(demographicService, repo)

	storeHandler := handler.NewStoreHandler(storeService)
	syncHandler := handler.NewSyncHandler(syncService)
	demographicHandler := handler.NewDemographicHandler(demographicService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)

	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := repo.Ping(pingCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		stores := api.Group("/stores")
		stores.GET("/nearby", storeHandler.Nearby)
		stores.GET("/region", storeHandler.ByRegion)
		stores.GET("/statistics", storeHandler.Statistics)
		stores.POST("/sync", syncHandler.Sync)

		recommendations := api.Group("/recommendations")
		recommendations.GET("/target-customer", recommendationHandler.TargetCustomer)
		recommendations.GET("/optimal-location", recommendationHandler.OptimalLocation)
		recommendations.GET("/marketing-timing", recommendationHandler.MarketingTiming)

		demographics := api.Group("/demographics")
		demographics.GET("/provinces", demographicHandler.Provinces)
		demographics.GET("/cities", demographicHandler.Cities)
		demographics.GET("/districts", demographicHandler.Districts)
		demographics.GET("/population", demographicHandler.Population)
		demographics.GET("/age-distribution", demographicHandler.AgeDistribution)
	}

	log.Info().Str("address", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// syncRegions crawls Seoul district by district; other provinces are fetched whole.
func syncRegions(provinceCode string) []storeapi.Region {
	if provinceCode == "" || provinceCode == storeapi.SeoulProvinceCode {
		return storeapi.SeoulDistricts
	}
	return []storeapi.Region{{ProvinceCode: provinceCode}}
}

// statsCacheOrNil keeps a disabled cache out of the service interfaces as a nil interface.
func statsCacheOrNil(c *cache.Cache) interface {
	service.StatsCache
	service.CacheInvalidator
} {
	if c == nil {
		return nil
	}
	return c
}
