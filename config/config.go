package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, populated from the environment.
type Config struct {
	// Server configuration
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Storage configuration. An empty DATABASE_URL selects the in-memory
	// store with seeded sample ideas, for local runs without Postgres.
	DatabaseURL string `env:"DATABASE_URL"`

	// Auth configuration
	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Bid admission configuration
	BidRetryAttempts int `env:"BID_RETRY_ATTEMPTS" envDefault:"3"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
