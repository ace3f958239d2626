package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/sumitdkd/me-api-playground/adapters/event"
	"github.com/sumitdkd/me-api-playground/adapters/persistence"
	"github.com/sumitdkd/me-api-playground/internal/config"
	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

// The worker keeps the Redis profile snapshot warm: every profile change
// event drops the cached copy and re-reads the record from Postgres.
func main() {
	fmt.Println("Starting Me-API Playground worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	profileRepo := persistence.NewCachedProfileRepo(
		persistence.NewPostgresProfileRepo(dbPool, appLogger),
		redisClient, cfg.Cache.TTL, appLogger,
	)

	profileConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  "profile-cache-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer profileConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicProfileEvents)

	ctx := context.Background()
	for {
		msg, err := profileConsumer.FetchMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.ProfileEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(profileConsumer, msg)
			continue
		}

		log.Printf("Processing event: [%s] for ProfileID: %s", payload.EventType, payload.ProfileID)

		if err := redisClient.Del(ctx, persistence.ProfileCacheKey).Err(); err != nil {
			log.Printf("ERROR: Failed to drop cached profile: %v", err)
			continue
		}
		// Re-read through the cached repo to repopulate the snapshot.
		if _, err := profileRepo.Get(ctx); err != nil {
			log.Printf("ERROR: Failed to warm profile cache: %v", err)
			continue
		}

		commitMessage(profileConsumer, msg)
	}
}

func commitMessage(r *kafka.Reader, msg kafka.Message) {
	if err := r.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
