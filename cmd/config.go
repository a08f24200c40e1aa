package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" env-default:"8080"`
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-default:"loadbooking"`
	DBSslMode  string `env:"DB_SSLMODE" env-default:"disable"`

	// RedisAddr enables Idempotency-Key handling when set.
	RedisAddr string `env:"REDIS_ADDR"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" env-default:"localhost:9092" env-separator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" env-default:"loadbooking.events"`

	OutboxRelaySchedule string        `env:"OUTBOX_RELAY_SCHEDULE" env-default:"* * * * * *"`
	OutboxBatchSize     int           `env:"OUTBOX_BATCH_SIZE" env-default:"100"`
	OutboxRetention     time.Duration `env:"OUTBOX_RETENTION" env-default:"168h"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// LoadConfig reads the configuration from the environment. Values in an
// optional .env file in the working directory are loaded first and never
// override variables that are already set.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LOG_LEVEL onto a slog level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
