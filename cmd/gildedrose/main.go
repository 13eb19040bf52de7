package main

import (
	"log/slog"
	"os"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No app config yet, so report through the fallback logger.
		logger.InitLoggerWithWriter(logger.DefaultConfig(), os.Stderr)
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if err := newRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
