package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the driver configuration
type Config struct {
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	Days        int    // number of days the driver simulates
	Workers     int    // goroutines used per daily update; 1 updates sequentially
	FixturePath string // optional JSON fixture; empty means the built-in catalogue
	MetricsFile string // optional Prometheus textfile written after the run
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		FixturePath: getEnv(EnvFixturePath, ""),
		MetricsFile: getEnv(EnvMetricsFile, ""),
	}

	daysStr := getEnv(EnvSimulationDays, strconv.Itoa(DefaultDays))
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvSimulationDays, err)
	}
	cfg.Days = days

	workersStr := getEnv(EnvWorkers, strconv.Itoa(DefaultWorkers))
	workers, err := strconv.Atoi(workersStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvWorkers, err)
	}
	cfg.Workers = workers

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
