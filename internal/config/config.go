// Package config provides configuration loading, validation, and management
// for the bot. It reads an optional YAML file, a .env file and BOT_* environment
// variables on top of built-in defaults.
package config

import (
	"time"

	"github.com/go-telegram/bot/models"
)

// Config defines the application configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LoggerConfig controls log output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the Bot API connection settings.
type TelegramConfig struct {
	Token              string        `mapstructure:"token"                validate:"required"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"      validate:"min=1s,max=2m"`
	PollTimeout        time.Duration `mapstructure:"poll_timeout"         validate:"min=1s,max=5m"`
	DropPendingUpdates bool          `mapstructure:"drop_pending_updates"`

	// BotInfo is filled at startup from GetMe.
	BotInfo *models.User `mapstructure:"-" validate:"-"`
}

// SchedulerConfig lists scheduled tasks by name.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a task and sets its cron schedule (seconds field included).
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

// HTTPConfig controls the optional HTTP surface.
type HTTPConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr" validate:"required_if=Enabled true"`
}

// MessagesConfig holds every user-visible string. Fields tagged format=<verbs>
// are fmt format strings that must use exactly those verbs, in order.
type MessagesConfig struct {
	Welcome         string `mapstructure:"welcome"          validate:"required"`
	HelpBody        string `mapstructure:"help_body"        validate:"required"`
	About           string `mapstructure:"about"            validate:"required"`
	TestUsage       string `mapstructure:"test_usage"       validate:"required"`
	TestNoChange    string `mapstructure:"test_no_change"   validate:"required,format=s"`
	TestCleaned     string `mapstructure:"test_cleaned"     validate:"required,format=ss"`
	ReplyHeader     string `mapstructure:"reply_header"     validate:"required"`
	ButtonLabel     string `mapstructure:"button_label"     validate:"required,format=d"`
	AnonymousAuthor string `mapstructure:"anonymous_author" validate:"required"`

	CmdStart string `mapstructure:"cmd_start" validate:"required"`
	CmdHelp  string `mapstructure:"cmd_help"  validate:"required"`
	CmdAbout string `mapstructure:"cmd_about" validate:"required"`
	CmdTest  string `mapstructure:"cmd_test"  validate:"required"`
}
