package bootstrap

import (
	"log/slog"

	"github.com/osse101/CraftPanel_Go/internal/config"
	"github.com/osse101/CraftPanel_Go/internal/logger"
)

// SetupLogger installs the default logger from the application config and
// logs the start-up banner. Source locations are added in dev environments.
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   logger.IsDevelopment(cfg.Environment),
	})

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingCraftPanel,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"store", cfg.StoreBackend)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"panels_dir", cfg.PanelsDir,
		"seed_file", cfg.SeedFile,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName)
}
