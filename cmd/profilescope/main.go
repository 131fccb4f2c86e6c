package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ProfileScope/internal/app"
	"ProfileScope/internal/config"
	"ProfileScope/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	// Missing credentials are a startup-time fatal, not a runtime error.
	if cfg.Telegram.BotToken == "" {
		logger.Error("BOT_TOKEN is not set")
		os.Exit(1)
	}
	if cfg.Summarizer.APIKey == "" {
		logger.Error("DEEPSEEK_API_KEY is not set")
		os.Exit(1)
	}

	application := app.New(cfg, logger)

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
