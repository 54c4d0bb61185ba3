package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv string `env:"APP_ENV" default:"development"`
	Port   string `env:"PORT" default:"8080"`

	// RedisURL switches emotion state to Redis when set; empty keeps
	// the in-process store.
	RedisURL string `env:"REDIS_URL"`

	BrainWSURL   string `env:"BRAIN_WS_URL"`
	BrainToken   string `env:"BRAIN_TOKEN"`
	PlatformName string `env:"PLATFORM_NAME" default:"bilibili"`
	RoomID       string `env:"ROOM_ID"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	DefaultIntimacy float64 `env:"DEFAULT_INTIMACY" default:"50"`

	// PruneTTL drops conversations idle longer than this. Zero disables
	// the sweep.
	PruneTTL      time.Duration `env:"PRUNE_TTL" default:"0s"`
	PruneInterval time.Duration `env:"PRUNE_INTERVAL" default:"10m"`
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
	if cfg.BrainWSURL == "" {
		return fmt.Errorf("BRAIN_WS_URL is required")
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	if cfg.DefaultIntimacy < 0 || cfg.DefaultIntimacy > 100 {
		return fmt.Errorf("DEFAULT_INTIMACY must be between 0 and 100, got %g", cfg.DefaultIntimacy)
	}

	if cfg.PruneTTL < 0 {
		return fmt.Errorf("PRUNE_TTL must not be negative")
	}
	if cfg.PruneTTL > 0 && cfg.PruneInterval <= 0 {
		return fmt.Errorf("PRUNE_INTERVAL must be positive when PRUNE_TTL is set")
	}

	return nil
}
