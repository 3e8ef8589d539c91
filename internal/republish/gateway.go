// Package republish decides how a message carrying tracked links is
// republished, based on the bot's live permission level in the chat.
package republish

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks . Gateway

import "context"

// PermissionLevel is the bot's role in a chat at the time a message is handled.
type PermissionLevel int

const (
	// Unprivileged is the default and the fallback for any failure.
	Unprivileged PermissionLevel = iota
	// Privileged means the bot is an administrator or the owner of the chat.
	Privileged
)

func (p PermissionLevel) String() string {
	if p == Privileged {
		return "privileged"
	}
	return "unprivileged"
}

// LinkButton is a clickable button that opens URL.
type LinkButton struct {
	Label string
	URL   string
}

// SendOptions holds the optional parts of an outgoing message.
type SendOptions struct {
	// ReplyToMessageID is zero when the message is not a reply.
	ReplyToMessageID int
	// Buttons are rendered one per row.
	Buttons []LinkButton
}

// Gateway is the chat platform capability used by the Republisher. Calls are
// independent round trips and safe to issue concurrently.
type Gateway interface {
	OwnMembership(ctx context.Context, chatID int64) (PermissionLevel, error)
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	SendMessage(ctx context.Context, chatID int64, text string, opts SendOptions) error
}
