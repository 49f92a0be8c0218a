package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, insecureSecret, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 60*time.Second, cfg.TrendingInterval)
	assert.True(t, insecureSecret)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("TRENDING_INTERVAL", "0s")

	cfg, insecureSecret, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.False(t, insecureSecret)
	assert.Equal(t, "real-secret", cfg.JWTSecret)
	assert.Equal(t, time.Duration(0), cfg.TrendingInterval)
}
