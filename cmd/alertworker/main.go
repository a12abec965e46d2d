// Command alertworker runs one job-alert delivery pass and exits. It is
// meant to be run from cron: hourly with -frequency immediate, daily with
// -frequency daily, weekly with -frequency weekly.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/amet-alumni/network-backend/internal/app"
	"github.com/amet-alumni/network-backend/internal/config"
	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/amet-alumni/network-backend/internal/queue"
	"github.com/amet-alumni/network-backend/internal/repository"
	"github.com/amet-alumni/network-backend/internal/service"
)

func main() {
	frequency := flag.String("frequency", "daily", "alert frequency to process: daily, weekly or immediate")
	flag.Parse()

	switch model.AlertFrequency(*frequency) {
	case model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyImmediate:
	default:
		log.Fatalf("unknown frequency %q", *frequency)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("failed to create db pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("failed to ping db", zap.Error(err))
	}

	producer := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaUsername, cfg.KafkaPassword)
	defer producer.Close()

	alerts := service.NewAlertService(
		repository.NewJobAlertRepository(pool),
		repository.NewJobRepository(pool),
		repository.NewProfileRepository(pool),
		repository.NewNotificationRepository(pool),
		producer,
		cfg.SiteURL,
		logger,
	)

	summary, err := alerts.ProcessAlerts(ctx, model.AlertFrequency(*frequency))
	if err != nil {
		logger.Fatal("alert pass failed", zap.Error(err))
	}

	logger.Info("alert pass finished",
		zap.String("frequency", *frequency),
		zap.Int("processed", summary.Processed),
		zap.Int("matched", summary.Matched),
		zap.Int("sent", summary.Sent),
	)
}
