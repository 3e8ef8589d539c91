package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/fkusi/internal/republish"
)

// NewLinkHandler returns the default message handler. It republishes messages
// containing supported links that carry tracking parameters.
func NewLinkHandler(deps HandlerDeps) bot.HandlerFunc {
	return linkHandler{deps}.Handle
}

type linkHandler struct {
	deps HandlerDeps
}

func (h linkHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}
	if !h.deps.Extractor.Detect(msg.Text) {
		return
	}

	log := h.deps.Logger.With("handler", "link", "chat_id", msg.Chat.ID, "message_id", msg.ID)

	links := h.deps.Extractor.Extract(msg.Text)
	if len(links) == 0 {
		log.DebugContext(ctx, "Supported links are already clean")
		return
	}

	texts := republish.Texts{
		ReplyHeader:     h.deps.Config.Messages.ReplyHeader,
		ButtonLabel:     h.deps.Config.Messages.ButtonLabel,
		AnonymousAuthor: h.deps.Config.Messages.AnonymousAuthor,
	}
	r := republish.New(h.deps.NewGateway(b), texts, h.deps.Logger)

	if err := r.Handle(ctx, toRepublishMessage(msg), links); err != nil {
		log.ErrorContext(ctx, "Failed to republish cleaned links", "error", err)
	}
}

func toRepublishMessage(msg *models.Message) republish.Message {
	out := republish.Message{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      msg.Text,
	}
	if msg.From != nil {
		out.Author = &republish.Author{
			Username:  msg.From.Username,
			FirstName: msg.From.FirstName,
		}
	}
	return out
}
