package telegram

import (
	"encoding/json"
	"strings"
)

// Parse modes
const (
	ParseModeHTML = "HTML"
)

// Chat member statuses
const (
	MemberStatusMember        = "member"
	MemberStatusAdministrator = "administrator"
	MemberStatusLeft          = "left"
	MemberStatusKicked        = "kicked"
)

type response struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
}

// User is a Telegram user or bot
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// FullName joins first and last name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// DisplayName prefers the full name, then the username, then the numeric ID
func (u *User) DisplayName() string {
	if name := u.FullName(); name != "" {
		return name
	}
	if u.Username != "" {
		return u.Username
	}
	return formatID(u.ID)
}

// Mention returns "@username" when set, otherwise the full name
func (u *User) Mention() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return u.DisplayName()
}

// Chat is a conversation
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// TextQuote is the quoted part of a replied message
type TextQuote struct {
	Text string `json:"text"`
}

// Message is an incoming or sent message
type Message struct {
	MessageID      int64      `json:"message_id"`
	From           *User      `json:"from,omitempty"`
	Chat           Chat       `json:"chat"`
	Text           string     `json:"text,omitempty"`
	Caption        string     `json:"caption,omitempty"`
	ReplyToMessage *Message   `json:"reply_to_message,omitempty"`
	Quote          *TextQuote `json:"quote,omitempty"`
}

// CallbackQuery is a press on an inline keyboard button
type CallbackQuery struct {
	ID      string   `json:"id"`
	From    User     `json:"from"`
	Message *Message `json:"message,omitempty"`
	Data    string   `json:"data,omitempty"`
}

// InlineQuery is a query typed after the bot's username
type InlineQuery struct {
	ID    string `json:"id"`
	From  User   `json:"from"`
	Query string `json:"query"`
}

// ChatMember is the state of a user in a chat
type ChatMember struct {
	User   User   `json:"user"`
	Status string `json:"status"`
}

// ChatMemberUpdated reports a membership change
type ChatMemberUpdated struct {
	Chat          Chat       `json:"chat"`
	From          User       `json:"from"`
	OldChatMember ChatMember `json:"old_chat_member"`
	NewChatMember ChatMember `json:"new_chat_member"`
}

// Update is one item of getUpdates
type Update struct {
	UpdateID      int64              `json:"update_id"`
	Message       *Message           `json:"message,omitempty"`
	CallbackQuery *CallbackQuery     `json:"callback_query,omitempty"`
	InlineQuery   *InlineQuery       `json:"inline_query,omitempty"`
	MyChatMember  *ChatMemberUpdated `json:"my_chat_member,omitempty"`
}

// InlineKeyboardButton is a button with callback data
type InlineKeyboardButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
}

// InlineKeyboardMarkup is a grid of inline buttons
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// ReplyParameters points a message at the one it answers
type ReplyParameters struct {
	MessageID int64 `json:"message_id"`
}

// SendMessageParams are the arguments of sendMessage
type SendMessageParams struct {
	ChatID          int64                 `json:"chat_id"`
	Text            string                `json:"text"`
	ParseMode       string                `json:"parse_mode,omitempty"`
	ReplyMarkup     *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	ReplyParameters *ReplyParameters      `json:"reply_parameters,omitempty"`
}

// BotCommand is an entry of the command menu
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// InputTextMessageContent is the message sent when an inline result is chosen
type InputTextMessageContent struct {
	MessageText string `json:"message_text"`
}

// InlineQueryResultArticle is a text inline result
type InlineQueryResultArticle struct {
	Type                string                  `json:"type"`
	ID                  string                  `json:"id"`
	Title               string                  `json:"title"`
	InputMessageContent InputTextMessageContent `json:"input_message_content"`
	Description         string                  `json:"description,omitempty"`
}

// AnswerInlineQueryParams are the arguments of answerInlineQuery
type AnswerInlineQueryParams struct {
	InlineQueryID string                     `json:"inline_query_id"`
	Results       []InlineQueryResultArticle `json:"results"`
	CacheTime     int                        `json:"cache_time"`
	IsPersonal    bool                       `json:"is_personal"`
}
