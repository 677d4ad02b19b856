package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daily-routine-bot/config"
	"daily-routine-bot/internal/httpserver"
	tgDelivery "daily-routine-bot/internal/routine/delivery/telegram"
	"daily-routine-bot/internal/routine/repository/sqlite"
	"daily-routine-bot/internal/routine/usecase"
	"daily-routine-bot/internal/webhook"
	"daily-routine-bot/pkg/dateparse"
	"daily-routine-bot/pkg/log"
	"daily-routine-bot/pkg/telegram"
)

// @title       Daily Routine Bot API
// @description Telegram bot for dated to-do items backed by SQLite.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daily Routine Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "SQLite path: %s", cfg.SQLite.Path)

	// 3. Storage
	db, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open task database: ", err)
		return
	}
	defer db.Close()

	taskRepo := sqlite.New(db, logger)

	// 4. Date resolver
	resolver, rErr := dateparse.NewResolver(cfg.Routine.Timezone)
	if rErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Routine.Timezone, rErr)
		resolver, _ = dateparse.NewResolver("UTC")
	}

	// 5. Routine domain
	var telegramHandler tgDelivery.Handler

	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

		guard := webhook.NewGuard(webhook.GuardConfig{
			Secret:          cfg.Telegram.WebhookSecret,
			RateLimitPerMin: cfg.Telegram.RateLimitPerMin,
		})

		routineUC := usecase.New(logger, taskRepo, resolver, cfg.Routine.SessionLimit, cfg.Routine.SessionTTL)

		telegramHandler = tgDelivery.New(logger, routineUC, telegramBot, guard)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, ngrokAPIBase)
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram delivery skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
