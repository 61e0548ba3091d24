package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	MailerProviderSMTP = "smtp"
	MailerProviderAPI  = "api"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	AppEnv           string `env:"APP_ENV" envDefault:"production"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`

	// Shared secret of the external cron caller (keep-warm).
	CronSecret string `env:"CRON_SECRET"`

	JWT    JWTConfig
	Mailer MailerConfig
	Kafka  Kafka
}

type JWTConfig struct {
	PublicKey string `env:"JWT_PUBLIC_KEY"`
}

type MailerConfig struct {
	Provider string `env:"MAILER_PROVIDER" envDefault:"smtp"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Staff Scheduling"`

	// SMTP
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`

	// HTTP API provider
	APIURL        string        `env:"MAILER_API_URL"`
	APIKey        string        `env:"MAILER_API_KEY"`
	Timeout       time.Duration `env:"MAILER_TIMEOUT" envDefault:"10s"`
	RetryAttempts int           `env:"MAILER_RETRY_ATTEMPTS" envDefault:"3"`
}

type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS" envSeparator:","`
	ConsumerID        string   `env:"KAFKA_CONSUMER_ID" envDefault:"scheduling"`
	NotificationTopic string   `env:"KAFKA_NOTIFICATION_TOPIC" envDefault:"scheduling-notifications"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	if c.PostgresDSN == "" {
		return Config{}, errors.New("POSTGRES_DSN is required")
	}

	switch c.Mailer.Provider {
	case MailerProviderSMTP, MailerProviderAPI:
	default:
		return Config{}, fmt.Errorf("unknown MAILER_PROVIDER: %s", c.Mailer.Provider)
	}

	return c, nil
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}
