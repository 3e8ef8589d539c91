package handlers

import (
	"strings"
	"unicode"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/fkusi/internal/config"
)

// RegisteredHandler represents a command handler with its description and middleware.
// It encapsulates all information needed to register and document a command.
// When Match is set it replaces the HandlerType/Pattern/MatchType matching.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
	Match       tgbot.MatchFunc
	Description string
}

// Command names, in menu order.
const (
	CmdStart = "start"
	CmdHelp  = "help"
	CmdAbout = "about"
	CmdTest  = "test"
)

var commandOrder = []string{CmdStart, CmdHelp, CmdAbout, CmdTest}

// RegisterAllCommands initializes and returns a map of all available bot commands.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	descriptions := commandDescriptions(deps.Config)
	factories := map[string]func(HandlerDeps) tgbot.HandlerFunc{
		CmdStart: NewStartHandler,
		CmdHelp:  NewHelpHandler,
		CmdAbout: NewAboutHandler,
		CmdTest:  NewTestHandler,
	}

	handlers := make(map[string]RegisteredHandler, len(commandOrder))
	for _, name := range commandOrder {
		handlers["/"+name] = RegisteredHandler{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     name,
			Handler:     factories[name](deps),
			MatchType:   tgbot.MatchTypeCommandStartOnly,
			Match:       CommandMatch(name, deps.Config),
			Description: descriptions[name],
		}
	}
	return handlers
}

// Commands returns the bot command menu in display order.
func Commands(cfg *config.Config) []models.BotCommand {
	descriptions := commandDescriptions(cfg)
	commands := make([]models.BotCommand, 0, len(commandOrder))
	for _, name := range commandOrder {
		commands = append(commands, models.BotCommand{Command: name, Description: descriptions[name]})
	}
	return commands
}

func commandDescriptions(cfg *config.Config) map[string]string {
	return map[string]string{
		CmdStart: cfg.Messages.CmdStart,
		CmdHelp:  cfg.Messages.CmdHelp,
		CmdAbout: cfg.Messages.CmdAbout,
		CmdTest:  cfg.Messages.CmdTest,
	}
}

// CommandMatch matches messages starting with /name or /name@bot, where bot is
// the username in cfg.Telegram.BotInfo. The username is read at match time
// since it is only known once GetMe has returned.
func CommandMatch(name string, cfg *config.Config) tgbot.MatchFunc {
	return func(update *models.Update) bool {
		if update.Message == nil {
			return false
		}
		text := update.Message.Text
		if !strings.HasPrefix(text, "/") {
			return false
		}
		token := text[1:]
		if i := strings.IndexFunc(token, unicode.IsSpace); i >= 0 {
			token = token[:i]
		}

		cmd, target, addressed := strings.Cut(token, "@")
		if cmd != name {
			return false
		}
		if !addressed {
			return true
		}
		if cfg == nil || cfg.Telegram.BotInfo == nil {
			return false
		}
		return strings.EqualFold(target, cfg.Telegram.BotInfo.Username)
	}
}
