package handlers

import (
	"log/slog"

	tgbot "github.com/go-telegram/bot"

	"github.com/edgard/fkusi/internal/config"
	"github.com/edgard/fkusi/internal/linkclean"
	"github.com/edgard/fkusi/internal/republish"
)

// GatewayFactory binds the bot client passed to a handler to a chat gateway.
type GatewayFactory func(b *tgbot.Bot) republish.Gateway

// HandlerDeps provides dependencies for Telegram command and message handlers.
type HandlerDeps struct {
	Logger     *slog.Logger
	Config     *config.Config
	Extractor  *linkclean.Extractor
	NewGateway GatewayFactory
}
