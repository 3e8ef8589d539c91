// Package gateway adapts the Telegram Bot API client to the republish.Gateway
// capability interface.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/fkusi/internal/republish"
)

// ErrNotDeleted is returned when Telegram reports a delete as unsuccessful without an error.
var ErrNotDeleted = errors.New("message was not deleted")

// Telegram implements republish.Gateway on top of a go-telegram/bot client.
type Telegram struct {
	bot     *tgbot.Bot
	selfID  int64
	timeout time.Duration
}

var _ republish.Gateway = (*Telegram)(nil)

// NewTelegram returns a gateway acting as the bot user selfID. A positive
// timeout bounds every API call.
func NewTelegram(b *tgbot.Bot, selfID int64, timeout time.Duration) *Telegram {
	return &Telegram{bot: b, selfID: selfID, timeout: timeout}
}

// OwnMembership reports whether the bot administers or owns chatID.
func (t *Telegram) OwnMembership(ctx context.Context, chatID int64) (republish.PermissionLevel, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	member, err := t.bot.GetChatMember(ctx, &tgbot.GetChatMemberParams{
		ChatID: chatID,
		UserID: t.selfID,
	})
	if err != nil {
		return republish.Unprivileged, fmt.Errorf("get chat member: %w", err)
	}
	return PermissionOf(member), nil
}

// DeleteMessage deletes messageID from chatID.
func (t *Telegram) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	ok, err := t.bot.DeleteMessage(ctx, &tgbot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	})
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if !ok {
		return fmt.Errorf("delete message: %w", ErrNotDeleted)
	}
	return nil
}

// SendMessage sends text to chatID, optionally as a reply carrying an inline
// keyboard with one URL button per row.
func (t *Telegram) SendMessage(ctx context.Context, chatID int64, text string, opts republish.SendOptions) error {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	params := &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if opts.ReplyToMessageID != 0 {
		params.ReplyParameters = &models.ReplyParameters{MessageID: opts.ReplyToMessageID}
	}
	if len(opts.Buttons) > 0 {
		params.ReplyMarkup = InlineKeyboard(opts.Buttons)
	}

	if _, err := t.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// PermissionOf maps a chat member record to a permission level.
func PermissionOf(member *models.ChatMember) republish.PermissionLevel {
	if member == nil {
		return republish.Unprivileged
	}
	switch member.Type {
	case models.ChatMemberTypeOwner, models.ChatMemberTypeAdministrator:
		return republish.Privileged
	default:
		return republish.Unprivileged
	}
}

// InlineKeyboard renders buttons as an inline keyboard, one button per row.
func InlineKeyboard(buttons []republish.LinkButton) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, []models.InlineKeyboardButton{{Text: b.Label, URL: b.URL}})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (t *Telegram) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, t.timeout)
}
