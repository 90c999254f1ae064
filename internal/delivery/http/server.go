package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/track-analytics/internal/config"
	"github.com/track-analytics/internal/delivery/http/handler"
	"github.com/track-analytics/internal/delivery/http/middleware"
	"github.com/track-analytics/internal/pkg/errors"
)

// HealthChecker - зависимость, состояние которой отражается в /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	health map[string]HealthChecker

	// Handlers
	stationHandler       *handler.StationHandler
	lineHandler          *handler.LineHandler
	priceHandler         *handler.PriceHandler
	regularityHandler    *handler.RegularityHandler
	frequentationHandler *handler.FrequentationHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	health map[string]HealthChecker,
	stationHandler *handler.StationHandler,
	lineHandler *handler.LineHandler,
	priceHandler *handler.PriceHandler,
	regularityHandler *handler.RegularityHandler,
	frequentationHandler *handler.FrequentationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "TRACK Rail Analytics",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                  app,
		config:               cfg,
		logger:               logger,
		health:               health,
		stationHandler:       stationHandler,
		lineHandler:          lineHandler,
		priceHandler:         priceHandler,
		regularityHandler:    regularityHandler,
		frequentationHandler: frequentationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.healthCheck)

	// Stations
	api.Get("/stations", s.stationHandler.GetStations)
	api.Get("/stations/options", s.stationHandler.GetOptions)

	// Railway lines
	api.Get("/lines", s.lineHandler.GetLines)

	// Prices
	prices := api.Group("/prices")
	prices.Get("/stations", s.priceHandler.GetStations)
	prices.Get("/route", s.priceHandler.GetRoute)
	prices.Get("/most-expensive", s.priceHandler.GetMostExpensive)
	prices.Get("/compare", s.priceHandler.Compare)

	// Regularity
	regularity := api.Group("/regularity")
	regularity.Get("/monthly-delays", s.regularityHandler.GetMonthlyDelays)
	regularity.Get("/top-incidents", s.regularityHandler.GetTopIncidents)
	regularity.Get("/causes", s.regularityHandler.GetCauses)

	// Frequentation
	frequentation := api.Group("/frequentation")
	frequentation.Get("/top", s.frequentationHandler.GetTop)
	frequentation.Get("/compare", s.frequentationHandler.Compare)
	frequentation.Get("/stations", s.frequentationHandler.GetStations)
	frequentation.Get("/trend", s.frequentationHandler.GetTrend)
}

// healthCheck - состояние сервиса и его зависимостей
func (s *Server) healthCheck(c *fiber.Ctx) error {
	status := "healthy"
	checks := make(fiber.Map, len(s.health))
	for name, dep := range s.health {
		if err := dep.Health(c.Context()); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = err.Error()
			status = "degraded"
			continue
		}
		checks[name] = "ok"
	}

	return c.JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// App - fiber-приложение, используется в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		appCode := errors.ErrInternalServer.Code

		var fe *fiber.Error
		var ae *errors.AppError
		switch {
		case stderrors.As(err, &fe):
			code = fe.Code
			if code < fiber.StatusInternalServerError {
				appCode = errors.CodeInvalidRequest
			}
		case stderrors.As(err, &ae):
			code = ae.StatusCode
			appCode = ae.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    appCode,
				"message": err.Error(),
			},
		})
	}
}
