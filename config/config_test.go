package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, DriverRedis, cfg.Store.Driver)
	assert.Equal(t, "localhost:6379", cfg.Store.RedisAddr)
	assert.Equal(t, "http://localhost:5000/api", cfg.Client.APIBaseURL)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", DriverPostgres)
	t.Setenv("API_BASE_URL", "https://studio.example.com/api")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "https://studio.example.com/api", cfg.Client.APIBaseURL)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongodb")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Store.RedisDB)
}
