package bot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"go-psi-bot/internal/config"
	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/metrics"
	"go-psi-bot/internal/proof"
	"go-psi-bot/internal/stats"
	"go-psi-bot/internal/telegram"
)

// Ensure telegram.Client implements interfaces.BotAPI
var _ interfaces.BotAPI = (*telegram.Client)(nil)

// Update types reported to metrics
const (
	updateMessage       = "message"
	updateCallback      = "callback_query"
	updateInline        = "inline_query"
	updateMyChatMember  = "my_chat_member"
	updateUnsupported   = "unsupported"
	defaultBotUsername  = "bot"
	defaultRetryBackoff = 3 * time.Second
)

// Bot long-polls the Bot API and answers commands, button presses and inline queries
type Bot struct {
	api    interfaces.BotAPI
	stats  *stats.Service
	proof  *proof.Service
	config *config.TelegramConfig
	logger *zap.Logger

	pick         func(n int) int
	retryBackoff time.Duration

	mu sync.Mutex
	me *telegram.User
	wg sync.WaitGroup
}

// Option configures a Bot
type Option func(*Bot)

// WithPicker replaces the random choice used by duels
func WithPicker(pick func(n int) int) Option {
	return func(b *Bot) { b.pick = pick }
}

// WithRetryBackoff sets the pause after a failed getUpdates call
func WithRetryBackoff(d time.Duration) Option {
	return func(b *Bot) { b.retryBackoff = d }
}

// New creates a bot
func New(
	api interfaces.BotAPI,
	statsService *stats.Service,
	proofService *proof.Service,
	cfg *config.TelegramConfig,
	logger *zap.Logger,
	opts ...Option,
) *Bot {
	b := &Bot{
		api:          api,
		stats:        statsService,
		proof:        proofService,
		config:       cfg,
		logger:       logger,
		pick:         rand.IntN,
		retryBackoff: defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Setup resolves the bot identity, registers the command menu and drops any
// pending webhook updates. Only a failing getMe is fatal.
func (b *Bot) Setup(ctx context.Context) error {
	me, err := b.api.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("getMe: %w", err)
	}
	b.setMe(me)
	b.logger.Info("Bot identity resolved", zap.Int64("id", me.ID), zap.String("username", me.Username))

	if err := b.api.SetMyCommands(ctx, commandMenu); err != nil {
		b.logger.Warn("Failed to set bot commands", zap.Error(err))
	}
	if err := b.api.DeleteWebhook(ctx, true); err != nil {
		b.logger.Warn("Failed to delete webhook", zap.Error(err))
	}
	return nil
}

// Run polls for updates until ctx is canceled. Each update is handled in its
// own goroutine; handlers outlive ctx and are awaited by Shutdown.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting update polling")
	handlerCtx := context.WithoutCancel(ctx)

	var offset int64
	for {
		if ctx.Err() != nil {
			b.logger.Info("Update polling stopped")
			return nil
		}

		updates, err := b.api.GetUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			b.logger.Warn("Failed to get updates", zap.Error(err), zap.Duration("retry_in", b.retryBackoff))
			select {
			case <-ctx.Done():
			case <-time.After(b.retryBackoff):
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				b.HandleUpdate(handlerCtx, update)
			}()
		}
	}
}

// Shutdown waits for in-flight handlers or ctx expiry
func (b *Bot) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for update handlers: %w", ctx.Err())
	}
}

// HandleUpdate dispatches one update. A panicking handler is logged and swallowed.
func (b *Bot) HandleUpdate(ctx context.Context, update telegram.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Update handler panicked",
				zap.Int64("update_id", update.UpdateID),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()

	switch {
	case update.Message != nil:
		metrics.RecordBotUpdate(updateMessage)
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		metrics.RecordBotUpdate(updateCallback)
		b.handleCallback(ctx, update.CallbackQuery)
	case update.InlineQuery != nil:
		metrics.RecordBotUpdate(updateInline)
		b.handleInline(ctx, update.InlineQuery)
	case update.MyChatMember != nil:
		metrics.RecordBotUpdate(updateMyChatMember)
		b.handleMyChatMember(ctx, update.MyChatMember)
	default:
		metrics.RecordBotUpdate(updateUnsupported)
	}
}

// handleMyChatMember greets a chat the bot was just added to
func (b *Bot) handleMyChatMember(ctx context.Context, ev *telegram.ChatMemberUpdated) {
	me := b.identity()
	if me != nil && ev.NewChatMember.User.ID != me.ID {
		return
	}
	if !isPresent(ev.NewChatMember.Status) || isPresent(ev.OldChatMember.Status) {
		return
	}

	b.logger.Info("Bot added to chat", zap.Int64("chat_id", ev.Chat.ID))
	b.send(ctx, telegram.SendMessageParams{
		ChatID:      ev.Chat.ID,
		Text:        textGreeting,
		ReplyMarkup: menuKeyboard(),
	})
}

func isPresent(status string) bool {
	return status == telegram.MemberStatusMember || status == telegram.MemberStatusAdministrator
}

// username returns the bot username, resolving it lazily when Setup did not run
func (b *Bot) username(ctx context.Context) string {
	if me := b.identity(); me != nil && me.Username != "" {
		return me.Username
	}

	me, err := b.api.GetMe(ctx)
	if err != nil {
		b.logger.Error("Failed to resolve bot username", zap.Error(err))
		return defaultBotUsername
	}
	b.setMe(me)
	if me.Username == "" {
		return defaultBotUsername
	}
	return me.Username
}

func (b *Bot) identity() *telegram.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.me
}

func (b *Bot) setMe(me *telegram.User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.me = me
}

// send posts a message and logs failures; the sent message is nil on error
func (b *Bot) send(ctx context.Context, params telegram.SendMessageParams) *telegram.Message {
	msg, err := b.api.SendMessage(ctx, params)
	if err != nil {
		b.logger.Error("Failed to send message", zap.Int64("chat_id", params.ChatID), zap.Error(err))
		return nil
	}
	return msg
}

// reply answers msg in its chat
func (b *Bot) reply(ctx context.Context, msg *telegram.Message, text string) *telegram.Message {
	return b.send(ctx, telegram.SendMessageParams{
		ChatID:          msg.Chat.ID,
		Text:            text,
		ReplyParameters: &telegram.ReplyParameters{MessageID: msg.MessageID},
	})
}

func subjectOf(u *telegram.User) string {
	return strconv.FormatInt(u.ID, 10)
}
