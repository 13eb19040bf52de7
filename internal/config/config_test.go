package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable Load reads for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName,
		EnvVersion, EnvSimulationDays, EnvFixturePath, EnvWorkers, EnvMetricsFile,
	} {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultDays, cfg.Days, "Should use default days")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "gildedrose", cfg.ServiceName)
		assert.Empty(t, cfg.FixturePath)
		assert.Empty(t, cfg.MetricsFile)
		assert.Equal(t, 1, cfg.Workers)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvSimulationDays, "30")
		t.Setenv(EnvFixturePath, "testdata/items.json")
		t.Setenv(EnvWorkers, "8")
		t.Setenv(EnvMetricsFile, "/var/lib/node_exporter/gildedrose.prom")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, 30, cfg.Days)
		assert.Equal(t, "testdata/items.json", cfg.FixturePath)
		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, "/var/lib/node_exporter/gildedrose.prom", cfg.MetricsFile)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("returns error for invalid SIMULATION_DAYS", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSimulationDays, "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid SIMULATION_DAYS value")
	})

	t.Run("returns error for negative SIMULATION_DAYS", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSimulationDays, "-1")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "must not be negative")
	})

	t.Run("returns error for unknown LOG_FORMAT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLogFormat, "xml")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvLogFormat)
	})

	t.Run("returns error for zero WORKERS", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvWorkers, "0")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be at least 1")
	})

	t.Run("returns error for invalid WORKERS", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvWorkers, "many")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid WORKERS value")
	})
}
