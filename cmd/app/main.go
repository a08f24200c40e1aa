package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loadbooking/cmd"
	httpin "loadbooking/internal/adapters/in/http"
	"loadbooking/internal/adapters/out/kafka"
	"loadbooking/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(appLogger)

	if err = run(configs, appLogger); err != nil {
		appLogger.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(configs cmd.Config, appLogger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers: configs.KafkaBrokers,
		Topic:   configs.KafkaTopic,
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := producer.Close(); closeErr != nil {
			appLogger.Error("Failed to close Kafka producer", "error", closeErr)
		}
	}()

	var redisClient *redis.Client
	routerConfig := httpin.RouterConfig{Logger: appLogger}
	if configs.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		defer redisClient.Close()
		if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
			appLogger.Warn("Redis is unreachable, idempotency keys will pass through", "error", pingErr)
		}
		routerConfig.Redis = redisClient
	}

	app := cmd.NewCompositionRoot(configs, gormDB, producer, appLogger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpin.NewRouter(app.CreateServer(), routerConfig)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("HTTP server listening", "port", configs.HTTPPort, "topic", producer.Topic())
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			serverErr <- startErr
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		appLogger.Info("Shutdown signal received")
	case err = <-serverErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
