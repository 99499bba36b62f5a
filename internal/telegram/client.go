package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-psi-bot/internal/config"
	"go-psi-bot/internal/httpclient"
	"go-psi-bot/internal/metrics"
)

// pollGrace is added to the long-poll timeout for the HTTP deadline
const pollGrace = 10 * time.Second

// Client is a Bot API client. Outgoing calls share a rate limiter;
// getUpdates is not throttled.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	config  *config.TelegramConfig
	logger  *zap.Logger
}

// NewClient creates a Bot API client for token
func NewClient(cfg *config.TelegramConfig, token string, logger *zap.Logger) *Client {
	burst := int(cfg.RatePerSecond)
	if burst < 1 {
		burst = 1
	}

	return &Client{
		http: httpclient.New(httpclient.Options{
			BaseURL: fmt.Sprintf("%s/bot%s", cfg.BaseURL, token),
			Timeout: cfg.PollTimeout + pollGrace,
		}, logger),
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst),
		config:  cfg,
		logger:  logger,
	}
}

// GetMe returns the bot's own user
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var me User
	if err := c.call(ctx, "getMe", nil, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// DeleteWebhook switches the bot to long polling
func (c *Client) DeleteWebhook(ctx context.Context, dropPending bool) error {
	return c.call(ctx, "deleteWebhook", map[string]interface{}{"drop_pending_updates": dropPending}, nil)
}

// SetMyCommands publishes the command menu
func (c *Client) SetMyCommands(ctx context.Context, commands []BotCommand) error {
	return c.call(ctx, "setMyCommands", map[string]interface{}{"commands": commands}, nil)
}

// GetUpdates long-polls for updates after offset
func (c *Client) GetUpdates(ctx context.Context, offset int64) ([]Update, error) {
	body := map[string]interface{}{
		"offset":          offset,
		"timeout":         int(c.config.PollTimeout / time.Second),
		"allowed_updates": []string{"message", "callback_query", "inline_query", "my_chat_member"},
	}

	var updates []Update
	if err := c.do(ctx, "getUpdates", c.http.R().SetBody(body), &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SendMessage sends a text message
func (c *Client) SendMessage(ctx context.Context, params SendMessageParams) (*Message, error) {
	var msg Message
	if err := c.call(ctx, "sendMessage", params, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// EditMessageText replaces the text of a sent message
func (c *Client) EditMessageText(ctx context.Context, chatID, messageID int64, text string) error {
	return c.call(ctx, "editMessageText", map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
	}, nil)
}

// DeleteMessage removes a message
func (c *Client) DeleteMessage(ctx context.Context, chatID, messageID int64) error {
	return c.call(ctx, "deleteMessage", map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
	}, nil)
}

// SendPhoto uploads a PNG with a caption
func (c *Client) SendPhoto(ctx context.Context, chatID int64, photo []byte, filename, caption string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req := c.http.R().
		SetMultipartFormData(map[string]string{
			"chat_id": strconv.FormatInt(chatID, 10),
			"caption": caption,
		}).
		SetFileReader("photo", filename, bytes.NewReader(photo))

	return c.do(ctx, "sendPhoto", req, nil)
}

// AnswerCallbackQuery acknowledges a button press
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackQueryID, text string) error {
	body := map[string]interface{}{"callback_query_id": callbackQueryID}
	if text != "" {
		body["text"] = text
	}
	return c.call(ctx, "answerCallbackQuery", body, nil)
}

// AnswerInlineQuery returns inline results
func (c *Client) AnswerInlineQuery(ctx context.Context, params AnswerInlineQueryParams) error {
	return c.call(ctx, "answerInlineQuery", params, nil)
}

// call throttles and posts a JSON body
func (c *Client) call(ctx context.Context, method string, body interface{}, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req := c.http.R()
	if body != nil {
		req.SetBody(body)
	}
	return c.do(ctx, method, req, result)
}

func (c *Client) do(ctx context.Context, method string, req *resty.Request, result interface{}) error {
	done := metrics.TimeRemoteCall("telegram", method)
	defer done()

	var envelope response
	resp, err := req.
		SetContext(ctx).
		SetResult(&envelope).
		SetError(&envelope).
		Post("/" + method)
	if err != nil {
		// the request URL embeds the bot token
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = "/" + method
		}
		metrics.RecordRemoteError("telegram", method, err, 0)
		return fmt.Errorf("telegram %s: %w", method, err)
	}

	if !envelope.OK {
		apiErr := &APIError{Method: method, Code: envelope.ErrorCode, Description: envelope.Description}
		if apiErr.Code == 0 {
			apiErr.Code = resp.StatusCode()
		}
		metrics.RecordRemoteError("telegram", method, apiErr, resp.StatusCode())
		return apiErr
	}

	if result != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("telegram %s: decode result: %w", method, err)
		}
	}
	return nil
}
