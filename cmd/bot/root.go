package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	tgbot "github.com/go-telegram/bot"
	"github.com/spf13/cobra"

	"github.com/edgard/fkusi/internal/bot"
	"github.com/edgard/fkusi/internal/bot/handlers"
	"github.com/edgard/fkusi/internal/bot/tasks"
	"github.com/edgard/fkusi/internal/config"
	"github.com/edgard/fkusi/internal/gateway"
	"github.com/edgard/fkusi/internal/health"
	"github.com/edgard/fkusi/internal/httpapi"
	"github.com/edgard/fkusi/internal/linkclean"
	"github.com/edgard/fkusi/internal/logger"
	"github.com/edgard/fkusi/internal/republish"
	"github.com/edgard/fkusi/internal/telegram"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bot",
		Short:         "Telegram bot that strips tracking parameters from shared media links",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, configPath)
		},
	}

	cmd.PersistentFlags().String("config", config.DefaultConfigPath, "Path to configuration file")

	cmd.AddCommand(newCleanCmd())

	return cmd
}

// run initializes and starts all application components and blocks until ctx
// is cancelled or a component fails.
func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", configPath, "error", err)
		return err
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	extractor, err := linkclean.NewDefaultExtractor()
	if err != nil {
		log.Error("Failed to compile link patterns", "error", err)
		return err
	}

	hDeps := handlers.HandlerDeps{
		Logger:    log,
		Config:    cfg,
		Extractor: extractor,
		NewGateway: func(b *tgbot.Bot) republish.Gateway {
			return gateway.NewTelegram(b, cfg.Telegram.BotInfo.ID, cfg.Telegram.RequestTimeout)
		},
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log), handlers.Recover(log)),
		tgbot.WithDefaultHandler(handlers.NewLinkHandler(hDeps)),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, cfg.Telegram.PollTimeout, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return err
	}

	if err := prepare(ctx, tg, cfg, hDeps, log); err != nil {
		return err
	}

	status := &health.Status{}
	tDeps := tasks.TaskDeps{
		Logger:   log,
		Config:   cfg,
		Bot:      tg,
		Commands: handlers.Commands(cfg),
		Health:   status,
	}
	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		return err
	}

	var httpServer bot.Runner
	if cfg.HTTP.Enabled {
		httpServer = httpapi.NewServer(cfg.HTTP.Addr, extractor, status, log)
	}

	app := bot.NewBot(log, cfg, tg, sched, httpServer)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return runErr
	}

	log.Info("Bot stopped gracefully.")
	return nil
}

// prepare fetches the bot identity, registers command handlers and publishes
// the command menu.
func prepare(ctx context.Context, tg *tgbot.Bot, cfg *config.Config, hDeps handlers.HandlerDeps, log *slog.Logger) error {
	reqCtx, cancel := context.WithTimeout(ctx, cfg.Telegram.RequestTimeout)
	defer cancel()

	var err error
	cfg.Telegram.BotInfo, err = tg.GetMe(reqCtx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return fmt.Errorf("failed to get bot info: %w", err)
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	if err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return err
	}

	if err := telegram.PublishCommands(reqCtx, tg, handlers.Commands(cfg)); err != nil {
		log.Error("Failed to publish bot commands", "error", err)
		return err
	}

	if cfg.Telegram.DropPendingUpdates {
		if _, err := tg.DeleteWebhook(reqCtx, &tgbot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			log.Error("Failed to drop pending updates", "error", err)
			return fmt.Errorf("failed to drop pending updates: %w", err)
		}
		log.Info("Dropped pending updates")
	}

	return nil
}
