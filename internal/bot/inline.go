package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-psi-bot/internal/stats"
	"go-psi-bot/internal/telegram"
)

const (
	inlineQueryPreview = 40
	inlineCacheTime    = 1
)

// articleID derives a stable result ID from the subject, the slot and the text,
// so a result changes identity only when its content does
func articleID(subject, slot, text string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(subject+"_"+slot+"_"+text)).String()
}

func article(subject, slot, title, text, description string) telegram.InlineQueryResultArticle {
	return telegram.InlineQueryResultArticle{
		Type:                "article",
		ID:                  articleID(subject, slot, text),
		Title:               title,
		InputMessageContent: telegram.InputTextMessageContent{MessageText: text},
		Description:         description,
	}
}

func (b *Bot) handleInline(ctx context.Context, q *telegram.InlineQuery) {
	subject := subjectOf(&q.From)
	profile := b.stats.Profile(subject, q.From.DisplayName())

	results := make([]telegram.InlineQueryResultArticle, 0, 6)
	for _, r := range profile.Readings() {
		results = append(results, article(subject, string(r.Kind), kindButtonText[r.Kind], stats.FormatReading(r), ""))
	}
	results = append(results, article(subject, "all", "Who am I?", stats.FormatCaption(profile), "Stats summary"))
	results = append(results, b.proofSuggestion(ctx, subject, strings.TrimSpace(q.Query)))

	err := b.api.AnswerInlineQuery(ctx, telegram.AnswerInlineQueryParams{
		InlineQueryID: q.ID,
		Results:       results,
		CacheTime:     inlineCacheTime,
		IsPersonal:    true,
	})
	if err != nil {
		b.logger.Error("Failed to answer inline query", zap.String("id", q.ID), zap.Error(err))
	}
}

// proofSuggestion offers to send the typed query as /proof, or explains the command
func (b *Bot) proofSuggestion(ctx context.Context, subject, query string) telegram.InlineQueryResultArticle {
	if query == "" {
		return article(subject, "proof_help", "Proof? (how to use)",
			fmt.Sprintf("Use /proof in a chat with @%s", b.username(ctx)), "Instructions")
	}

	preview := query
	if runes := []rune(query); len(runes) > inlineQueryPreview {
		preview = string(runes[:inlineQueryPreview]) + "..."
	}
	return article(subject, "proof_query", fmt.Sprintf("Search: %q", preview), "/proof "+query, "Send the query to the bot")
}
