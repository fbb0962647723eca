package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airline/config"
	"github.com/Domenick1991/airline/internal/bootstrap"
	"github.com/Domenick1991/airline/internal/cache"
	"github.com/Domenick1991/airline/internal/kafka"
	"github.com/Domenick1991/airline/internal/logger"
	"github.com/Domenick1991/airline/internal/repository"
	"github.com/Domenick1991/airline/internal/service/booking"
	"github.com/Domenick1991/airline/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
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
		lg.Error("app stopped", zap.Error(err))
	}
	_ = lg.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run owns every resource it opens, so deferred closes happen before main exits.
func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	flightRepo := repository.NewFlightRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)

	var flightOpts []flights.FlightServiceOption
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			lg.Warn("redis unreachable, cache reads will fall back to postgres", zap.Error(err))
		}
		flightOpts = append(flightOpts, flights.WithCache(redisCache))
	}

	var bookingOpts []booking.BookingServiceOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, lg)
		defer producer.Close()
		bookingOpts = append(bookingOpts, booking.WithProducer(producer, cfg.Kafka.BookingsTopic))
	}

	flightService := flights.NewFlightService(flightRepo, passengerRepo, lg, flightOpts...)
	bookingService := booking.NewBookingService(passengerRepo, lg, bookingOpts...)

	if err := bootstrap.Run(ctx, cfg, lg, flightService, bookingService); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
