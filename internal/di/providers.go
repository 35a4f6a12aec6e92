package di

import (
	"os"

	"github.com/fatih/color"

	"zentra-notify/internal/adapter/clock"
	"zentra-notify/internal/adapter/console"
	"zentra-notify/internal/adapter/discord"
	"zentra-notify/internal/adapter/logging"
	"zentra-notify/internal/config"
	"zentra-notify/internal/domain/ports"
)

// Status lines go to stdout; diagnostics go to stderr.

func provideLogger(cfg *config.Config) ports.Logger {
	if cfg.LogFormat == "json" {
		return logging.NewJSON(os.Stderr, cfg.LogLevel)
	}
	return logging.NewConsole(os.Stderr, cfg.LogLevel, color.NoColor)
}

func provideReporter() ports.Reporter {
	return console.New(os.Stdout)
}

func provideClock() ports.Clock {
	return clock.System{}
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	if cfg.DryRun {
		return discord.NewPreview(os.Stdout, logger)
	}
	return discord.NewWebhook(cfg.WebhookURL, cfg.UserAgent, cfg.RequestTimeout, logger)
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
