package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config holds all runtime configuration. It is assembled once in Load and
// never mutated afterwards; every component receives it by pointer.
type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8000"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	PostgresHost     string `env:"POSTGRES_HOST"`
	PostgresPort     string `env:"POSTGRES_PORT"`
	PostgresUser     string `env:"POSTGRES_USER"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostsDBName      string `env:"POSTS_DB_NAME"`

	// Readiness budget for the database gate. Exhaustion is fatal to startup.
	DBReadyInterval     time.Duration `env:"DB_READY_INTERVAL" default:"1s"`
	DBReadyAttempts     int           `env:"DB_READY_ATTEMPTS" default:"10"`
	DBReadyProbeTimeout time.Duration `env:"DB_READY_PROBE_TIMEOUT" default:"5s"`
	DBReadySuccesses    int           `env:"DB_READY_SUCCESSES" default:"1"`

	SeedSampleData bool `env:"SEED_SAMPLE_DATA" default:"false"`

	MaxRequestsPerSecond float64       `env:"MAX_REQUESTS_PER_SECOND" default:"100"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"POSTGRES_HOST":     cfg.PostgresHost,
		"POSTGRES_PORT":     cfg.PostgresPort,
		"POSTGRES_USER":     cfg.PostgresUser,
		"POSTGRES_PASSWORD": cfg.PostgresPassword,
		"POSTS_DB_NAME":     cfg.PostsDBName,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if _, err := strconv.Atoi(cfg.PostgresPort); err != nil {
		return fmt.Errorf("POSTGRES_PORT must be numeric: %w", err)
	}

	if cfg.DBReadyAttempts < 1 {
		return fmt.Errorf("DB_READY_ATTEMPTS must be at least 1, got %d", cfg.DBReadyAttempts)
	}
	if cfg.DBReadySuccesses < 1 {
		return fmt.Errorf("DB_READY_SUCCESSES must be at least 1, got %d", cfg.DBReadySuccesses)
	}
	if cfg.DBReadyInterval <= 0 {
		return fmt.Errorf("DB_READY_INTERVAL must be positive, got %s", cfg.DBReadyInterval)
	}
	if cfg.DBReadyProbeTimeout <= 0 {
		return fmt.Errorf("DB_READY_PROBE_TIMEOUT must be positive, got %s", cfg.DBReadyProbeTimeout)
	}

	return nil
}

// DatabaseURL assembles the Postgres DSN from the five connection coordinates.
// Credentials are URL-escaped so passwords with special characters survive.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:   net.JoinHostPort(c.PostgresHost, c.PostgresPort),
		Path:   "/" + c.PostsDBName,
	}
	return u.String()
}
