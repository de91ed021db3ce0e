package app

import (
	"context"

	"greeting-api/internal/app/crud"
	"greeting-api/internal/app/greeting"
	"greeting-api/internal/app/health"
	"greeting-api/internal/app/message"
	"greeting-api/internal/config"
	"greeting-api/internal/db"
	"greeting-api/internal/db/seeder"
	"greeting-api/internal/gateways/websocket"
	"greeting-api/internal/providers/redis"
	"greeting-api/internal/router"
	"greeting-api/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
	Hub    *websocket.Hub
	Redis  *redis.RedisProvider
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	if cfg.SeedDemoData {
		seed := seeder.NewSeeder(dbConn, logger)
		if err := seed.Seed(); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	var redisProvider *redis.RedisProvider
	var cache crud.Cache
	if cfg.CacheEnabled {
		redisProvider = redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
		cache = redisProvider
	}

	return Assemble(cfg, logger, dbConn, cache, redisProvider), nil
}

// Assemble wires repositories, services, handlers and routes around an open database.
// cache and redisProvider may be nil.
func Assemble(cfg *config.Config, logger *zap.Logger, dbConn *gorm.DB, cache crud.Cache, redisProvider *redis.RedisProvider) *Application {
	eventBus := utils.NewEventBus()
	alerts := crud.Alerts{AppName: cfg.AppName}

	greetingRepo := greeting.NewRepository(dbConn)
	messageRepo := message.NewRepository(dbConn)

	greetingService := greeting.NewService(greetingRepo, cache, eventBus, logger)
	messageService := message.NewService(messageRepo, cache, eventBus, logger)

	hub := websocket.NewHub(logger, eventBus)

	checker := &utils.HealthChecker{DB: dbConn}
	if redisProvider != nil {
		checker.Redis = redisProvider.Client
	}

	r := router.NewRouter(logger, cfg.FrontendURL, alerts.ExposedHeaders()...)

	r.RegisterHealthRoutes(health.NewHandler(checker))
	r.RegisterGreetingRoutes(greeting.NewHandler(greetingService, alerts, logger))
	r.RegisterMessageRoutes(message.NewHandler(messageService, alerts, logger))
	r.RegisterWebSocketRoutes(hub)
	r.RegisterSwaggerRoutes()

	return &Application{
		Router: r,
		DB:     dbConn,
		Hub:    hub,
		Redis:  redisProvider,
	}
}

// Start runs background workers until ctx is cancelled.
func (a *Application) Start(ctx context.Context) {
	go a.Hub.Run(ctx)
}

func (a *Application) Close() {
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
