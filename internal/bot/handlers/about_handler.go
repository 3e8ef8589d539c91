package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/fkusi/internal/republish"
)

// NewAboutHandler returns a handler for the /about command.
func NewAboutHandler(deps HandlerDeps) bot.HandlerFunc {
	return aboutHandler{deps}.Handle
}

type aboutHandler struct {
	deps HandlerDeps
}

func (h aboutHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "about")

	if update.Message == nil {
		log.WarnContext(ctx, "About handler received update with nil message", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	err := h.deps.NewGateway(b).SendMessage(ctx, chatID, h.deps.Config.Messages.About, republish.SendOptions{})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send about message", "error", err, "chat_id", chatID)
	}
}
