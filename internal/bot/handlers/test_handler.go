package handlers

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/fkusi/internal/republish"
)

// NewTestHandler returns a handler for the /test command, which shows the
// cleaned form of the URL given as argument.
func NewTestHandler(deps HandlerDeps) bot.HandlerFunc {
	return testHandler{deps}.Handle
}

type testHandler struct {
	deps HandlerDeps
}

func (h testHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "test")

	if update.Message == nil {
		log.WarnContext(ctx, "Test handler received update with nil message", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID
	msgs := h.deps.Config.Messages

	var reply string
	rawURL := commandArgs(update.Message.Text)
	switch cleaned := h.deps.Extractor.Clean(rawURL); {
	case rawURL == "":
		reply = msgs.TestUsage
	case cleaned == rawURL:
		reply = fmt.Sprintf(msgs.TestNoChange, rawURL)
	default:
		reply = fmt.Sprintf(msgs.TestCleaned, rawURL, cleaned)
	}

	log.InfoContext(ctx, "Handling /test command", "chat_id", chatID, "url", rawURL)

	if err := h.deps.NewGateway(b).SendMessage(ctx, chatID, reply, republish.SendOptions{}); err != nil {
		log.ErrorContext(ctx, "Failed to send test result", "error", err, "chat_id", chatID)
	}
}

// commandArgs returns the text following the command token, trimmed.
func commandArgs(text string) string {
	text = strings.TrimSpace(text)
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(text[i:])
}
