package bot

import (
	"context"

	"go.uber.org/zap"

	"go-psi-bot/internal/models"
	"go-psi-bot/internal/stats"
	"go-psi-bot/internal/telegram"
)

// Callback data of the menu buttons besides the kinds
const (
	callbackWhoAmI    = "whoami"
	callbackProofHelp = "proof_help"
	whoAmIFilename    = "whoami.png"
	textWhoAmIFailed  = "Could not create the image, try again later."
)

var kindButtonText = map[models.Kind]string{
	models.KindWeight: "Weight",
	models.KindLength: "Length",
	models.KindIQ:     "IQ",
	models.KindHeight: "Height",
}

func menuKeyboard() *telegram.InlineKeyboardMarkup {
	button := func(kind models.Kind) telegram.InlineKeyboardButton {
		return telegram.InlineKeyboardButton{Text: kindButtonText[kind], CallbackData: string(kind)}
	}

	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{button(models.KindWeight), button(models.KindLength)},
			{button(models.KindIQ), button(models.KindHeight)},
			{{Text: "Who am I?", CallbackData: callbackWhoAmI}},
			{{Text: "Proof?", CallbackData: callbackProofHelp}},
		},
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) {
	defer func() {
		if err := b.api.AnswerCallbackQuery(ctx, cb.ID, ""); err != nil {
			b.logger.Warn("Failed to answer callback query", zap.String("id", cb.ID), zap.Error(err))
		}
	}()

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	subject := subjectOf(&cb.From)
	name := cb.From.DisplayName()

	switch cb.Data {
	case callbackProofHelp:
		b.send(ctx, telegram.SendMessageParams{ChatID: chatID, Text: textProofHelp})

	case callbackWhoAmI:
		image, caption, err := b.stats.WhoAmI(ctx, subject, name)
		if err != nil {
			b.logger.Error("Failed to build whoami image", zap.String("subject", subject), zap.Error(err))
			b.send(ctx, telegram.SendMessageParams{ChatID: chatID, Text: textWhoAmIFailed})
			return
		}
		if err := b.api.SendPhoto(ctx, chatID, image, whoAmIFilename, caption); err != nil {
			b.logger.Error("Failed to send whoami image", zap.Int64("chat_id", chatID), zap.Error(err))
		}

	default:
		kind, err := models.ParseKind(cb.Data)
		if err != nil {
			b.logger.Debug("Ignoring unknown callback", zap.String("data", cb.Data))
			return
		}
		reading := b.stats.Reading(subject, kind)
		b.send(ctx, telegram.SendMessageParams{ChatID: chatID, Text: stats.FormatGreeting(name, reading)})
	}
}
