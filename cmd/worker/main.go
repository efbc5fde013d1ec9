package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/audioguide/pkg/app"
	"github.com/ghuser/audioguide/pkg/cache"
	"github.com/ghuser/audioguide/pkg/config"
	"github.com/ghuser/audioguide/pkg/database"
	"github.com/ghuser/audioguide/pkg/events"
	"github.com/ghuser/audioguide/pkg/logger"
	"github.com/ghuser/audioguide/pkg/telemetry"
	exhibitEvents "github.com/ghuser/audioguide/services/exhibit/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, exhibitEvents.TopicExhibitCreated, handleExhibitCreated(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", exhibitEvents.TopicExhibitCreated,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{exhibitEvents.TopicExhibitCreated})
	return nil
}

// handleExhibitCreated returns a handler for exhibit.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// It drops any visit-cache entry for the created key so the next visitor
// lookup reads the fresh row from Postgres (the event carries only a subset
// of fields, so invalidation is safer than warming a partial entry).
func handleExhibitCreated(a *app.Application) func(context.Context, *message.Message) error {
	exhibitCache := cache.NewExhibitCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt exhibitEvents.ExhibitCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := exhibitCache.Delete(ctx, evt.OwnerID, evt.ItemNumber, evt.Language); err != nil {
			// Invalidation is best-effort; the entry expires by TTL anyway.
			a.Logger.WarnContext(ctx, "cache invalidation failed for exhibit.created",
				"owner_id", evt.OwnerID, "item_number", evt.ItemNumber, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "visit cache invalidated",
				"owner_id", evt.OwnerID, "item_number", evt.ItemNumber, "language", evt.Language)
		}

		return nil
	}
}
