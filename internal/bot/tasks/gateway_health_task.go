package tasks

import (
	"context"
	"fmt"
	"time"
)

// newGatewayHealthTask creates the scheduled task that probes the Bot API with
// GetMe and records the outcome for readiness checks.
func newGatewayHealthTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "gateway_health")

	return func(ctx context.Context) error {
		startTime := time.Now()

		ctx, cancel := context.WithTimeout(ctx, deps.Config.Telegram.RequestTimeout)
		defer cancel()

		me, err := deps.Bot.GetMe(ctx)
		latency := time.Since(startTime)
		if deps.Health != nil {
			deps.Health.Record(startTime, latency, err)
		}

		if err != nil {
			log.WarnContext(ctx, "Gateway health probe failed", "error", err, "latency", latency)
			return fmt.Errorf("gateway health probe failed: %w", err)
		}

		log.DebugContext(ctx, "Gateway health probe succeeded", "bot_id", me.ID, "latency", latency)
		return nil
	}
}
