package main

import (
	"github.com/osse101/WashRewards_Go/internal/config"
	"github.com/osse101/WashRewards_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info is always on in dev, otherwise only when asked for
	addSource := cfg.LogAddSource || cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.Init(loggerConfig)
}
