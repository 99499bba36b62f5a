package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"go-psi-bot/internal/models"
	"go-psi-bot/internal/proof"
	"go-psi-bot/internal/telegram"
)

const (
	textWelcome     = "Welcome!"
	textMenu        = "Choose an action:"
	textGreeting    = "Hi! I'm a bot."
	textDuelWin     = "%s and %s fought behind the garages until first blood\nWinner: %s 🏆🏆🏆"
	textDuelUsage   = "To duel, reply to a message or name an opponent:\n/duel @username\n/duel text"
	textProofHelp   = "To have me look something up:\n- /proof your text\n- or reply to a message with /proof"
	textProofNoText = "Specify the text (argument, quote, or reply to a message)."
	textProofShort  = "Text is too short (minimum %d characters)."
	textUnavailable = "Feature unavailable: the text generation key is not configured."
	textProofFailed = "An error occurred while processing the request."
	textNoAnswer    = "Could not get an answer."
)

var commandMenu = []telegram.BotCommand{
	{Command: "start", Description: "Start"},
	{Command: "menu", Description: "Menu"},
	{Command: "duel", Description: "Duel"},
	{Command: "proof", Description: "Check a claim"},
}

var progressText = map[proof.Stage]string{
	proof.StageQuery:     "Building the search query...",
	proof.StageSearching: "Searching: %q...",
	proof.StageAnalyzing: "Analyzing pages...",
	proof.StageAnswering: "Preparing the answer...",
}

// parseCommand splits "/name@bot args" into name and args. ok is false for
// plain text and for commands addressed to another bot.
func parseCommand(text, username string) (name, args string, ok bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}

	head, args, _ := strings.Cut(text[1:], " ")
	if i := strings.IndexAny(head, "\n\t"); i >= 0 {
		args = head[i+1:] + " " + args
		head = head[:i]
	}
	name, target, addressed := strings.Cut(head, "@")
	if addressed && username != "" && !strings.EqualFold(target, username) {
		return "", "", false
	}
	if name == "" {
		return "", "", false
	}
	return strings.ToLower(name), strings.TrimSpace(args), true
}

func (b *Bot) handleMessage(ctx context.Context, msg *telegram.Message) {
	if msg.From == nil {
		return
	}

	username := ""
	if me := b.identity(); me != nil {
		username = me.Username
	}
	name, args, ok := parseCommand(msg.Text, username)
	if !ok {
		return
	}

	b.logger.Debug("Command received",
		zap.String("command", name),
		zap.Int64("chat_id", msg.Chat.ID),
		zap.Int64("user_id", msg.From.ID))

	switch name {
	case "start":
		b.send(ctx, telegram.SendMessageParams{ChatID: msg.Chat.ID, Text: textWelcome, ReplyMarkup: menuKeyboard()})
	case "menu":
		b.send(ctx, telegram.SendMessageParams{ChatID: msg.Chat.ID, Text: textMenu, ReplyMarkup: menuKeyboard()})
	case "duel":
		b.handleDuel(ctx, msg, args)
	case "proof":
		b.handleProof(ctx, msg, args)
	}
}

func (b *Bot) handleDuel(ctx context.Context, msg *telegram.Message, args string) {
	challenger := msg.From.Mention()

	var opponent string
	switch {
	case msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil:
		opponent = msg.ReplyToMessage.From.Mention()
	case args != "":
		opponent = args
	}

	if opponent == "" {
		b.reply(ctx, msg, textDuelUsage)
		return
	}

	fighters := []string{challenger, opponent}
	winner := strings.TrimPrefix(fighters[b.pick(len(fighters))], "@")
	b.reply(ctx, msg, fmt.Sprintf(textDuelWin, challenger, opponent, winner))
}

// proofText picks the text to check: the argument, then the quoted fragment,
// then the text or caption of the replied message
func proofText(msg *telegram.Message, args string) string {
	if args != "" {
		return args
	}
	if msg.Quote != nil && strings.TrimSpace(msg.Quote.Text) != "" {
		return strings.TrimSpace(msg.Quote.Text)
	}
	if replied := msg.ReplyToMessage; replied != nil {
		if text := strings.TrimSpace(replied.Text); text != "" {
			return text
		}
		return strings.TrimSpace(replied.Caption)
	}
	return ""
}

func (b *Bot) handleProof(ctx context.Context, msg *telegram.Message, args string) {
	if !b.proof.Available() {
		b.reply(ctx, msg, textUnavailable)
		return
	}

	text := proofText(msg, args)
	if text == "" {
		b.reply(ctx, msg, textProofNoText)
		return
	}
	if utf8.RuneCountInString(text) < b.proof.MinLength() {
		b.reply(ctx, msg, fmt.Sprintf(textProofShort, b.proof.MinLength()))
		return
	}

	b.logger.Info("Proof requested",
		zap.Int64("chat_id", msg.Chat.ID),
		zap.Int64("message_id", msg.MessageID),
		zap.Int("length", utf8.RuneCountInString(text)))

	progress := &progressMessage{bot: b, ctx: ctx, origin: msg}
	answer, err := b.proof.Check(ctx, text, progress.report)
	progress.remove()

	var quotaErr *models.QuotaExceededError
	switch {
	case errors.As(err, &quotaErr):
		b.reply(ctx, msg, quotaErr.Reason)
		return
	case errors.Is(err, models.ErrTextTooShort):
		b.reply(ctx, msg, fmt.Sprintf(textProofShort, b.proof.MinLength()))
		return
	case errors.Is(err, models.ErrFeatureUnavailable):
		b.reply(ctx, msg, textUnavailable)
		return
	case err != nil:
		b.logger.Error("Proof check failed", zap.Error(err))
		b.reply(ctx, msg, textProofFailed)
		return
	}

	if answer == "" {
		b.send(ctx, telegram.SendMessageParams{ChatID: msg.Chat.ID, Text: textNoAnswer})
		return
	}
	b.sendLong(ctx, msg.Chat.ID, answer)
}

// sendLong sends text as HTML in chunks of at most MessageLimit characters.
// When the API rejects a chunk, it and the rest are resent as plain text.
func (b *Bot) sendLong(ctx context.Context, chatID int64, text string) {
	chunks := splitMessage(text, b.config.MessageLimit)

	for i, chunk := range chunks {
		_, err := b.api.SendMessage(ctx, telegram.SendMessageParams{
			ChatID:    chatID,
			Text:      chunk,
			ParseMode: telegram.ParseModeHTML,
		})
		if err == nil {
			continue
		}
		if !telegram.IsBadRequest(err) {
			b.logger.Error("Failed to send answer", zap.Int64("chat_id", chatID), zap.Error(err))
			return
		}

		b.logger.Warn("HTML answer rejected, resending as plain text", zap.Error(err))
		for _, rest := range chunks[i:] {
			if b.send(ctx, telegram.SendMessageParams{ChatID: chatID, Text: rest}) == nil {
				return
			}
		}
		return
	}
}

// splitMessage cuts text into pieces of at most limit runes
func splitMessage(text string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for start := 0; start < len(runes); start += limit {
		end := min(start+limit, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// progressMessage is the status reply edited as a proof check advances
type progressMessage struct {
	bot    *Bot
	ctx    context.Context
	origin *telegram.Message
	sent   *telegram.Message
}

func (p *progressMessage) report(stage proof.Stage, detail string) {
	text := progressText[stage]
	if stage == proof.StageSearching {
		text = fmt.Sprintf(text, detail)
	}

	if p.sent == nil {
		p.sent = p.bot.reply(p.ctx, p.origin, text)
		return
	}
	if err := p.bot.api.EditMessageText(p.ctx, p.sent.Chat.ID, p.sent.MessageID, text); err != nil {
		p.bot.logger.Warn("Failed to update progress message", zap.Error(err))
	}
}

func (p *progressMessage) remove() {
	if p.sent == nil {
		return
	}
	if err := p.bot.api.DeleteMessage(p.ctx, p.sent.Chat.ID, p.sent.MessageID); err != nil {
		p.bot.logger.Warn("Failed to delete progress message", zap.Error(err))
	}
}
