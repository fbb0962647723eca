package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airline/config"
	"github.com/Domenick1991/airline/internal/kafka"
	"github.com/Domenick1991/airline/internal/logger"
	"github.com/Domenick1991/airline/internal/notify"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = config.DefaultPath
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	err = run(cfg, lg)
	if err != nil {
		lg.Error("worker stopped", zap.Error(err))
	}
	_ = lg.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	if !cfg.Kafka.Enabled() {
		return errors.New("kafka is not configured: set kafka.brokers and kafka.bookings_topic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingsTopic, lg)
	defer consumer.Close()

	notifier := notify.NewNotifier(lg)

	lg.Info("worker started", zap.String("topic", cfg.Kafka.BookingsTopic), zap.String("group_id", cfg.Kafka.GroupID))
	if err := consumer.Consume(ctx, notifier.Send); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("consume: %w", err)
	}
	lg.Info("worker stopped")
	return nil
}
