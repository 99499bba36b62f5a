package interfaces

import (
	"context"

	"go-psi-bot/internal/telegram"
)

//go:generate mockgen -package=mock -source=bot.go -destination=mock/bot.go

// BotAPI is the subset of the messaging platform API used by the bot
type BotAPI interface {
	GetMe(ctx context.Context) (*telegram.User, error)
	DeleteWebhook(ctx context.Context, dropPending bool) error
	SetMyCommands(ctx context.Context, commands []telegram.BotCommand) error
	GetUpdates(ctx context.Context, offset int64) ([]telegram.Update, error)
	SendMessage(ctx context.Context, params telegram.SendMessageParams) (*telegram.Message, error)
	EditMessageText(ctx context.Context, chatID, messageID int64, text string) error
	DeleteMessage(ctx context.Context, chatID, messageID int64) error
	SendPhoto(ctx context.Context, chatID int64, photo []byte, filename, caption string) error
	AnswerCallbackQuery(ctx context.Context, callbackQueryID, text string) error
	AnswerInlineQuery(ctx context.Context, params telegram.AnswerInlineQueryParams) error
}
