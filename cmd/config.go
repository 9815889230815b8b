package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RabbitMQURL   string
	TelegramToken string

	KafkaHost              string
	KafkaOrderChangedTopic string

	RequestTimeout   time.Duration
	NotifyTimeout    time.Duration
	ReminderSchedule string
	ReminderAfter    time.Duration
}

// DSN builds the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// LoadConfig reads .env (when present) into the process environment and
// builds a Config from it. Durations use time.ParseDuration syntax.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	config := Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		DBHost:                 envOr("DB_HOST", "localhost"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		RabbitMQURL:            os.Getenv("RABBITMQ_URL"),
		TelegramToken:          os.Getenv("TELEGRAM_TOKEN"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: envOr("KAFKA_ORDER_CHANGED_TOPIC", "order.status.changed"),
		ReminderSchedule:       envOr("REMINDER_SCHEDULE", "0 */1 * * * *"),
	}

	var requestErr, notifyErr, reminderErr error
	config.RequestTimeout, requestErr = durationOr("REQUEST_TIMEOUT", 5*time.Second)
	config.NotifyTimeout, notifyErr = durationOr("NOTIFY_TIMEOUT", 3*time.Second)
	config.ReminderAfter, reminderErr = durationOr("REMINDER_AFTER", 2*time.Minute)

	if err := errors.Join(requestErr, notifyErr, reminderErr); err != nil {
		return Config{}, err
	}
	return config, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}
