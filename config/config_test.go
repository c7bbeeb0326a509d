package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, "dev-secret", cfg.JWTSecret)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, 3, cfg.BidRetryAttempts)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/idea_auction")
	t.Setenv("BID_RETRY_ATTEMPTS", "5")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "postgres://localhost:5432/idea_auction", cfg.DatabaseURL)
	require.Equal(t, 5, cfg.BidRetryAttempts)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}
