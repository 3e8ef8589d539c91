package logger

import (
	"log/slog"

	"github.com/go-co-op/gocron/v2"
)

// gocronLogger routes gocron's internal logging through slog.
type gocronLogger struct {
	log *slog.Logger
}

// NewGocronLogger returns a gocron.Logger writing to log.
//
//nolint:ireturn // gocron.WithLogger takes the interface
func NewGocronLogger(log *slog.Logger) gocron.Logger {
	if log == nil {
		log = slog.Default()
	}
	return &gocronLogger{log: log.With("source", "gocron")}
}

func (l *gocronLogger) Debug(msg string, args ...any) { l.log.Debug(msg, pairArgs(args)...) }
func (l *gocronLogger) Info(msg string, args ...any) { l.log.Info(msg, pairArgs(args)...) }
func (l *gocronLogger) Warn(msg string, args ...any) { l.log.Warn(msg, pairArgs(args)...) }
func (l *gocronLogger) Error(msg string, args ...any) { l.log.Error(msg, pairArgs(args)...) }

// pairArgs keeps a dangling trailing value from being logged under !BADKEY.
func pairArgs(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}
	out := make([]any, 0, len(args)+1)
	out = append(out, args[:len(args)-1]...)
	return append(out, "extra", args[len(args)-1])
}
