package bootstrap

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/osse101/UrbanPark_Go/internal/config"
	"github.com/osse101/UrbanPark_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from the application
// configuration and logs the startup banner. Source locations are only
// added in development environments.
func SetupLogger(cfg *config.Config) {
	addSource := slices.Contains(devEnvironments, strings.ToLower(cfg.Environment))

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
	logger.InitLogger(loggerConfig)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.Level)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"publish_workers", cfg.PublishWorkers,
		"relay", cfg.RedisAddr != "")

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}
}
