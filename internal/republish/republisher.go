package republish

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/edgard/fkusi/internal/linkclean"
)

// Author identifies the sender of a message.
type Author struct {
	Username  string
	FirstName string
}

// Message is the inbound message being handled. Author is nil for anonymous senders.
type Message struct {
	ChatID    int64
	MessageID int
	Author    *Author
	Text      string
}

// Texts are the user-visible strings produced by the Republisher.
type Texts struct {
	// ReplyHeader is the text of the reply carrying the link buttons.
	ReplyHeader string
	// ButtonLabel is a format string receiving the 1-based link number.
	ButtonLabel string
	// AnonymousAuthor replaces the author name when none is known.
	AnonymousAuthor string
}

// DefaultTexts are used for any empty field of the Texts passed to New.
var DefaultTexts = Texts{
	ReplyHeader:     "Links with tracking parameters removed:",
	ButtonLabel:     "Cleaned link #%d",
	AnonymousAuthor: "Unknown",
}

// Republisher republishes cleaned links, either by reposting the message when
// the bot is privileged or by replying with link buttons otherwise. It keeps no
// state between calls.
type Republisher struct {
	gateway Gateway
	texts   Texts
	logger  *slog.Logger
}

// New creates a Republisher that talks to the chat platform through gw.
func New(gw Gateway, texts Texts, logger *slog.Logger) *Republisher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if texts.ReplyHeader == "" {
		texts.ReplyHeader = DefaultTexts.ReplyHeader
	}
	if texts.ButtonLabel == "" {
		texts.ButtonLabel = DefaultTexts.ButtonLabel
	}
	if texts.AnonymousAuthor == "" {
		texts.AnonymousAuthor = DefaultTexts.AnonymousAuthor
	}
	return &Republisher{
		gateway: gw,
		texts:   texts,
		logger:  logger.With("component", "republisher"),
	}
}

// Handle republishes links for msg. It does nothing when links is empty. The
// returned error is the failure of the final send, the only unrecovered step.
func (r *Republisher) Handle(ctx context.Context, msg Message, links []linkclean.ExtractedLink) error {
	if len(links) == 0 {
		return nil
	}
	log := r.logger.With("chat_id", msg.ChatID, "message_id", msg.MessageID, "links", len(links))

	switch r.permission(ctx, log, msg.ChatID) {
	case Privileged:
		if err := r.gateway.DeleteMessage(ctx, msg.ChatID, msg.MessageID); err != nil {
			log.WarnContext(ctx, "Failed to delete original message, replying instead", "operation", "delete_message", "error", err)
			return r.replyWithButtons(ctx, log, msg, links)
		}
		return r.repost(ctx, log, msg, links)
	default:
		return r.replyWithButtons(ctx, log, msg, links)
	}
}

// permission queries the bot's membership. Any failure yields Unprivileged.
func (r *Republisher) permission(ctx context.Context, log *slog.Logger, chatID int64) PermissionLevel {
	level, err := r.gateway.OwnMembership(ctx, chatID)
	if err != nil {
		log.WarnContext(ctx, "Failed to query bot membership, assuming unprivileged", "operation", "get_membership", "error", err)
		return Unprivileged
	}
	log.DebugContext(ctx, "Resolved bot permission level", "level", level.String())
	return level
}

func (r *Republisher) repost(ctx context.Context, log *slog.Logger, msg Message, links []linkclean.ExtractedLink) error {
	text := fmt.Sprintf("%s: %s", r.displayName(msg.Author), linkclean.Rewrite(msg.Text, links))
	if err := r.gateway.SendMessage(ctx, msg.ChatID, text, SendOptions{}); err != nil {
		return fmt.Errorf("failed to repost cleaned message: %w", err)
	}
	log.InfoContext(ctx, "Reposted message with cleaned links", "path", "privileged")
	return nil
}

func (r *Republisher) replyWithButtons(ctx context.Context, log *slog.Logger, msg Message, links []linkclean.ExtractedLink) error {
	buttons := make([]LinkButton, 0, len(links))
	for _, l := range links {
		if !validLinkTarget(l.Cleaned) {
			log.WarnContext(ctx, "Skipping cleaned link that is not a valid URL", "operation", "build_button", "url", l.Cleaned)
			continue
		}
		buttons = append(buttons, LinkButton{
			Label: fmt.Sprintf(r.texts.ButtonLabel, len(buttons)+1),
			URL:   l.Cleaned,
		})
	}
	if len(buttons) == 0 {
		log.InfoContext(ctx, "No valid cleaned links to offer, skipping reply", "path", "unprivileged")
		return nil
	}

	err := r.gateway.SendMessage(ctx, msg.ChatID, r.texts.ReplyHeader, SendOptions{
		ReplyToMessageID: msg.MessageID,
		Buttons:          buttons,
	})
	if err != nil {
		return fmt.Errorf("failed to reply with cleaned links: %w", err)
	}
	log.InfoContext(ctx, "Replied with cleaned link buttons", "path", "unprivileged", "buttons", len(buttons))
	return nil
}

func (r *Republisher) displayName(a *Author) string {
	switch {
	case a == nil:
		return r.texts.AnonymousAuthor
	case a.Username != "":
		return a.Username
	case a.FirstName != "":
		return a.FirstName
	default:
		return r.texts.AnonymousAuthor
	}
}

// validLinkTarget reports whether s can be used as a button URL.
func validLinkTarget(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
