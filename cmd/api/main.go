package main

// @title TRACK Rail Analytics API
// @version 1.0.0
// @description Сервис аналитики железных дорог Франции. Читает открытые наборы данных SNCF (станции, линии, тарифы TGV, пунктуальность, пассажиропоток), обогащает их справочниками и отдаёт готовые представления для графиков и карт.
// @description
// @description Основные возможности:
// @description - Станции по регионам и категориям, маркеры карты
// @description - Железнодорожные линии с длиной по пикетам
// @description - Тарифы и цена за километр для известных маршрутов
// @description - Пунктуальность TGV и причины задержек
// @description - Пассажиропоток станций 2015-2023

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/track-analytics/docs"
	"github.com/track-analytics/internal/config"
	httpDelivery "github.com/track-analytics/internal/delivery/http"
	"github.com/track-analytics/internal/delivery/http/handler"
	"github.com/track-analytics/internal/domain/repository"
	"github.com/track-analytics/internal/pkg/logger"
	"github.com/track-analytics/internal/repository/cache"
	"github.com/track-analytics/internal/repository/dataset"
	"github.com/track-analytics/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting TRACK Rail Analytics")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("dataset_dir", cfg.Datasets.Dir),
	)

	// 3. Dataset catalog
	catalog := dataset.NewCatalog(&cfg.Datasets, log)
	health := map[string]httpDelivery.HealthChecker{"datasets": catalog}

	if cfg.Datasets.Warmup {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if err := catalog.Warmup(ctx); err != nil {
			// Непарсящийся файл не мешает старту: его страница отдаст пустое представление
			log.Error("Dataset warmup failed", zap.Error(err))
		} else {
			log.Info("Datasets loaded", zap.Int64("loads", catalog.Loads()))
		}
		cancel()
	}

	// 4. View cache: Redis if enabled, otherwise no-op
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		health["redis"] = redisClient
	} else {
		log.Info("Redis disabled, views are recomputed on every request")
		cacheRepo = cache.NewNoopRepository()
	}

	// 5. Initialize Use Cases
	ttl := cfg.Cache.ViewCacheTTL
	stationUC := usecase.NewStationUseCase(catalog, cacheRepo, log, ttl)
	lineUC := usecase.NewLineUseCase(catalog, cacheRepo, log, ttl)
	priceUC := usecase.NewPriceUseCase(catalog, cacheRepo, log, ttl)
	regularityUC := usecase.NewRegularityUseCase(catalog, cacheRepo, log, ttl)
	frequentationUC := usecase.NewFrequentationUseCase(catalog, cacheRepo, log, ttl)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		health,
		handler.NewStationHandler(stationUC, log),
		handler.NewLineHandler(lineUC, log),
		handler.NewPriceHandler(priceUC, log),
		handler.NewRegularityHandler(regularityUC, log),
		handler.NewFrequentationHandler(frequentationUC, log),
	)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
