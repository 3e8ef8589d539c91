package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/fkusi/internal/bot/handlers"
	"github.com/edgard/fkusi/internal/config"
)

type fakePublisher struct {
	ok     bool
	err    error
	params *bot.SetMyCommandsParams
}

func (f *fakePublisher) SetMyCommands(_ context.Context, params *bot.SetMyCommandsParams) (bool, error) {
	f.params = params
	return f.ok, f.err
}

func TestPublishCommands(t *testing.T) {
	t.Parallel()

	commands := []models.BotCommand{{Command: "help", Description: "Show this help"}}

	tests := []struct {
		name     string
		client   *fakePublisher
		commands []models.BotCommand
		wantErr  bool
	}{
		{name: "published", client: &fakePublisher{ok: true}, commands: commands},
		{name: "api error", client: &fakePublisher{err: errors.New("flood")}, commands: commands, wantErr: true},
		{name: "rejected", client: &fakePublisher{ok: false}, commands: commands, wantErr: true},
		{name: "empty list", client: &fakePublisher{ok: true}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := PublishCommands(context.Background(), tc.client, tc.commands)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, commands, tc.client.params.Commands)
		})
	}
}

func TestApplyMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	tag := func(name string) bot.Middleware {
		return func(next bot.HandlerFunc) bot.HandlerFunc {
			return func(ctx context.Context, b *bot.Bot, update *models.Update) {
				calls = append(calls, name)
				next(ctx, b, update)
			}
		}
	}

	h := applyMiddleware(func(context.Context, *bot.Bot, *models.Update) {
		calls = append(calls, "handler")
	}, []bot.Middleware{tag("outer"), tag("inner")})

	h(context.Background(), nil, &models.Update{})
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestNewTelegramBotRequiresToken(t *testing.T) {
	t.Parallel()

	_, err := NewTelegramBot("", 0, nil)
	assert.Error(t, err)
}

func TestRegisterHandlersRequiresBot(t *testing.T) {
	t.Parallel()

	assert.Error(t, RegisterHandlers(nil, nil, nil))
}

func TestRegisterHandlersRoutesAddressedCommands(t *testing.T) {
	t.Parallel()

	var routed string
	record := func(name string) bot.HandlerFunc {
		return func(context.Context, *bot.Bot, *models.Update) { routed = name }
	}

	b, err := bot.New("123456:TEST",
		bot.WithSkipGetMe(),
		bot.WithNotAsyncHandlers(),
		bot.WithDefaultHandler(record("default")),
	)
	require.NoError(t, err)

	cfg := &config.Config{Telegram: config.TelegramConfig{BotInfo: &models.User{ID: 7, Username: "fkusibot"}}}
	require.NoError(t, RegisterHandlers(b, nil, map[string]handlers.RegisteredHandler{
		"/test": {Match: handlers.CommandMatch(handlers.CmdTest, cfg), Handler: record("test")},
	}))

	tests := []struct {
		text string
		want string
	}{
		{text: "/test https://youtu.be/a?si=1", want: "test"},
		{text: "/test@fkusibot https://youtu.be/a?si=1", want: "test"},
		{text: "/test@otherbot https://youtu.be/a?si=1", want: "default"},
		{text: "https://youtu.be/a?si=1", want: "default"},
	}

	for _, tc := range tests {
		routed = ""
		b.ProcessUpdate(context.Background(), &models.Update{
			ID:      1,
			Message: &models.Message{ID: 2, Chat: models.Chat{ID: 3}, Text: tc.text},
		})
		assert.Equal(t, tc.want, routed, tc.text)
	}
}
