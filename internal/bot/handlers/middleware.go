// Package handlers contains Telegram bot command and message handlers,
// along with their registration logic and middleware.
package handlers

import (
	"context"
	"log/slog"
	"runtime/debug"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Recover creates a middleware that stops a panic in one handler from taking
// down the process. The panic is logged with the update it happened on.
func Recover(logger *slog.Logger) tgbot.Middleware {
	log := logger.With("middleware", "Recover")
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
			defer func() {
				if r := recover(); r != nil {
					log.ErrorContext(ctx, "Handler panicked",
						"update_id", update.ID,
						"panic", r,
						"stack", string(debug.Stack()))
				}
			}()
			next(ctx, bot, update)
		}
	}
}
