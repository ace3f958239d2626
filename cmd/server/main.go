package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/sumitdkd/me-api-playground/adapters/event"
	httpAdapter "github.com/sumitdkd/me-api-playground/adapters/http"
	"github.com/sumitdkd/me-api-playground/adapters/persistence"
	profileUC "github.com/sumitdkd/me-api-playground/internal/application/usecase/profile"
	queryUC "github.com/sumitdkd/me-api-playground/internal/application/usecase/query"
	"github.com/sumitdkd/me-api-playground/internal/config"
	domainProfile "github.com/sumitdkd/me-api-playground/internal/domain/profile"
	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

func main() {
	fmt.Println("Starting Me-API Playground server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Profile store
	var profileRepo domainProfile.Repository
	switch cfg.Store.Driver {
	case "memory":
		profileRepo = persistence.NewMemoryProfileRepo()
		appLogger.Info("Using in-memory profile store")
	default:
		dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
		if err != nil {
			log.Fatalf("FATAL: cannot connect Postgres: %v", err)
		}
		defer dbPool.Close()
		profileRepo = persistence.NewPostgresProfileRepo(dbPool, appLogger)
	}

	// Optional read-through snapshot cache
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("FATAL: cannot connect Redis: %v", err)
		}
		defer redisClient.Close()
		profileRepo = persistence.NewCachedProfileRepo(profileRepo, redisClient, cfg.Cache.TTL, appLogger)
	}

	// Optional profile change events
	var kafkaClient *event.KafkaProducerClient
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err = event.NewKafkaProducerClient(cfg)
		if err != nil {
			log.Fatalf("FATAL: cannot init Kafka: %v", err)
		}
		defer kafkaClient.Close()
	}

	// Use cases
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, kafkaClient, appLogger)
	listProjectsUseCase := queryUC.NewListProjectsUseCase(profileRepo, appLogger)
	searchUseCase := queryUC.NewSearchUseCase(profileRepo, appLogger)

	// HTTP handlers
	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		ProfileHandler: httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		ProjectHandler: httpAdapter.NewProjectHandler(listProjectsUseCase, appLogger),
		SearchHandler:  httpAdapter.NewSearchHandler(searchUseCase, appLogger),
		HealthHandler:  httpAdapter.NewHealthHandler(),
		Logger:         appLogger,
		WebDir:         cfg.App.WebDir,
	})

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
