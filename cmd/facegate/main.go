package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Pulkitsaraswat52/facegate/config"
	"github.com/Pulkitsaraswat52/facegate/internal/bootstrap"
)

func main() {
	ctx := context.Background()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	logger := bootstrap.InitLogger(cfg.Observability)
	logStartupInfo(ctx, logger, &cfg)

	if err := run(ctx, &cfg, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	agent, err := bootstrap.BuildAgent(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return agent.Run(ctx)
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting facegate agent",
		"api_base_url", cfg.API.BaseURL,
		"capture_mode", cfg.Capture.Mode,
		"capture_interval", cfg.Capture.Interval,
		"notify_enabled", cfg.Notify.Enabled,
		"dev", cfg.IsDev)
}
