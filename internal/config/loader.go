package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrConfiguration wraps every error returned by Load.
var ErrConfiguration = errors.New("configuration error")

// Load loads and validates configuration from, in increasing priority:
//  1. Default values
//  2. The YAML file at path (optional)
//  3. A .env file in the working directory (optional)
//  4. BOT_* environment variables, plus TELOXIDE_TOKEN for the token
func Load(path string) (*Config, error) {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: failed to load .env file: %v", ErrConfiguration, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("telegram.token", DefaultEnvPrefix+"_TELEGRAM_TOKEN", LegacyTokenEnv); err != nil {
		return nil, fmt.Errorf("%w: failed to bind token variables: %v", ErrConfiguration, err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("%w: failed to read config file %s: %v", ErrConfiguration, path, err)
			}
			slog.Debug("Configuration file loaded", "path", path)
		} else if errors.Is(err, fs.ErrNotExist) {
			slog.Info("Configuration file not found, using defaults and environment", "path", path)
		} else {
			return nil, fmt.Errorf("%w: failed to stat config file %s: %v", ErrConfiguration, path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	slog.Debug("Configuration loaded",
		"log_level", cfg.Logger.Level,
		"request_timeout", cfg.Telegram.RequestTimeout,
		"http_enabled", cfg.HTTP.Enabled,
		"tasks", len(cfg.Scheduler.Tasks),
		"duration_ms", time.Since(startTime).Milliseconds())

	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	v := validator.New()
	if err := v.RegisterValidation("format", validateFormat); err != nil {
		return fmt.Errorf("failed to register format validation: %w", err)
	}
	return v.Struct(cfg)
}

// validateFormat checks that a format string uses exactly the verbs listed in
// the tag parameter, e.g. format=ss for two %s verbs.
func validateFormat(fl validator.FieldLevel) bool {
	return formatVerbs(fl.Field().String()) == fl.Param()
}

// formatVerbs returns the verb letters of a fmt format string in order. %% is
// a literal and contributes nothing.
func formatVerbs(format string) string {
	var verbs strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) && strings.IndexByte("+-# 0123456789.", format[i]) >= 0 {
			i++
		}
		if i >= len(format) {
			verbs.WriteByte('!')
			break
		}
		if format[i] != '%' {
			verbs.WriteByte(format[i])
		}
	}
	return verbs.String()
}

// setDefaults registers every key so environment overrides apply to it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", DefaultLogJSON)

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.request_timeout", DefaultRequestTimeout)
	v.SetDefault("telegram.poll_timeout", DefaultPollTimeout)
	v.SetDefault("telegram.drop_pending_updates", DefaultDropPendingUpdates)

	for name, task := range DefaultTasks {
		v.SetDefault("scheduler.tasks."+name+".enabled", task.Enabled)
		v.SetDefault("scheduler.tasks."+name+".schedule", task.Schedule)
	}

	v.SetDefault("http.enabled", DefaultHTTPEnabled)
	v.SetDefault("http.addr", DefaultHTTPAddr)

	m := DefaultMessages
	v.SetDefault("messages.welcome", m.Welcome)
	v.SetDefault("messages.help_body", m.HelpBody)
	v.SetDefault("messages.about", m.About)
	v.SetDefault("messages.test_usage", m.TestUsage)
	v.SetDefault("messages.test_no_change", m.TestNoChange)
	v.SetDefault("messages.test_cleaned", m.TestCleaned)
	v.SetDefault("messages.reply_header", m.ReplyHeader)
	v.SetDefault("messages.button_label", m.ButtonLabel)
	v.SetDefault("messages.anonymous_author", m.AnonymousAuthor)
	v.SetDefault("messages.cmd_start", m.CmdStart)
	v.SetDefault("messages.cmd_help", m.CmdHelp)
	v.SetDefault("messages.cmd_about", m.CmdAbout)
	v.SetDefault("messages.cmd_test", m.CmdTest)
}
