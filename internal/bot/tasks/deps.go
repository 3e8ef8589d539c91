// Package tasks implements the bot's scheduled tasks.
// It includes task definitions, dependencies, and registration mechanisms.
package tasks

import (
	"context"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/fkusi/internal/config"
	"github.com/edgard/fkusi/internal/health"
)

// BotClient is the part of the Telegram client used by tasks.
type BotClient interface {
	GetMe(ctx context.Context) (*models.User, error)
	SetMyCommands(ctx context.Context, params *tgbot.SetMyCommandsParams) (bool, error)
}

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Bot      BotClient
	Commands []models.BotCommand
	Health   *health.Status
}
