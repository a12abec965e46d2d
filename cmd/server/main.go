package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/amet-alumni/network-backend/internal/api"
	"github.com/amet-alumni/network-backend/internal/app"
	"github.com/amet-alumni/network-backend/internal/config"
	"github.com/amet-alumni/network-backend/internal/queue"
	"github.com/amet-alumni/network-backend/internal/repository"
	"github.com/amet-alumni/network-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("failed to create db pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("failed to ping db", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	mentorRepo := repository.NewMentorRepository(pool)
	menteeRepo := repository.NewMenteeRepository(pool)
	relationshipRepo := repository.NewRelationshipRepository(pool)
	slotRepo := repository.NewSlotRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	alertRepo := repository.NewJobAlertRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)

	producer := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaUsername, cfg.KafkaPassword)
	defer producer.Close()

	handlers := api.NewHandlers(
		service.NewMentorService(mentorRepo, logger),
		service.NewMatchingService(mentorRepo, logger),
		service.NewRelationshipService(relationshipRepo, logger),
		service.NewAvailabilityService(slotRepo, logger),
		service.NewBookingService(menteeRepo, slotRepo, sessionRepo, logger),
		service.NewAlertService(alertRepo, jobRepo, profileRepo, notificationRepo, producer, cfg.SiteURL, logger),
		logger,
	)

	srv := api.NewServer(handlers, cfg.JWTSecret, cfg.SiteURL)

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.Listen(cfg.HTTPAddr); err != nil {
			logger.Error("http server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
