package main

import (
	"os"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration.
// Logs go to stderr so the daily report on stdout stays clean.
func initLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	logger.InitLoggerWithWriter(loggerConfig, os.Stderr)
}
