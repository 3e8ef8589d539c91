package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/fkusi/internal/republish"
)

// NewHelpHandler returns a handler for the /help command.
func NewHelpHandler(deps HandlerDeps) bot.HandlerFunc {
	return helpHandler{deps}.Handle
}

// helpHandler processes the /help command using injected dependencies.
type helpHandler struct {
	deps HandlerDeps
}

func (h helpHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "help")

	if update.Message == nil {
		log.WarnContext(ctx, "Help handler received update with nil message", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	log.InfoContext(ctx, "Handling /help command", "chat_id", chatID)

	err := h.deps.NewGateway(b).SendMessage(ctx, chatID, h.helpText(), republish.SendOptions{})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send help message", "error", err, "chat_id", chatID)
	} else {
		log.DebugContext(ctx, "Successfully sent help message", "chat_id", chatID)
	}
}

// helpText lists the commands followed by the help body.
func (h helpHandler) helpText() string {
	var sb strings.Builder
	for _, cmd := range Commands(h.deps.Config) {
		fmt.Fprintf(&sb, "/%s - %s\n", cmd.Command, cmd.Description)
	}
	sb.WriteString("\n")
	sb.WriteString(h.deps.Config.Messages.HelpBody)
	return sb.String()
}
