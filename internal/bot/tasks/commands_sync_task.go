package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/edgard/fkusi/internal/telegram"
)

// newCommandsSyncTask creates the scheduled task that republishes the bot's command menu.
func newCommandsSyncTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "commands_sync")

	return func(ctx context.Context) error {
		startTime := time.Now()

		ctx, cancel := context.WithTimeout(ctx, deps.Config.Telegram.RequestTimeout)
		defer cancel()

		if err := telegram.PublishCommands(ctx, deps.Bot, deps.Commands); err != nil {
			log.ErrorContext(ctx, "Command sync failed", "error", err, "duration", time.Since(startTime))
			return fmt.Errorf("commands sync failed: %w", err)
		}

		log.InfoContext(ctx, "Bot commands synchronized", "count", len(deps.Commands), "duration", time.Since(startTime))
		return nil
	}
}
