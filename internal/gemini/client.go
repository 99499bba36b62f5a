package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"go-psi-bot/internal/config"
	"go-psi-bot/internal/httpclient"
	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/metrics"
	"go-psi-bot/internal/models"
)

var (
	_ interfaces.ImageGenerator = (*Client)(nil)
	_ interfaces.TextGenerator  = (*Client)(nil)
)

const generatePath = "/models/{model}:generateContent"

// Client talks to the generateContent endpoint of the generative language API
type Client struct {
	http   *resty.Client
	apiKey string
	config *config.GenerationConfig
	logger *zap.Logger
}

// NewClient creates a client. Deadlines come from the caller's context; the
// summary timeout is only a backstop.
func NewClient(cfg *config.GenerationConfig, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		http: httpclient.New(httpclient.Options{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.SummaryTimeout,
		}, logger),
		apiKey: apiKey,
		config: cfg,
		logger: logger,
	}
}

// GenerateImage asks the image model for a picture. A refusal is returned
// wrapping models.ErrContentPolicy.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	resp, err := c.generate(ctx, "image", c.config.ImageModel, req)
	if err != nil {
		return nil, err
	}
	if err := refusal(resp); err != nil {
		return nil, err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && len(p.InlineData.Data) > 0 {
				return p.InlineData.Data, nil
			}
		}
	}
	return nil, errors.New("no image in response")
}

// GenerateText returns the first text part of the text model's answer
func (c *Client) GenerateText(ctx context.Context, tr models.TextRequest) (string, error) {
	temperature := tr.Temperature
	req := generateRequest{
		Contents:         []content{{Parts: []part{{Text: tr.Prompt}}}},
		GenerationConfig: &generationConfig{Temperature: &temperature},
	}
	if tr.RelaxSafety {
		req.SafetySettings = relaxedSafety
	}

	resp, err := c.generate(ctx, "text", c.config.TextModel, req)
	if err != nil {
		return "", err
	}
	if err := refusal(resp); err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, p := range cand.Content.Parts {
			if text := strings.TrimSpace(p.Text); text != "" {
				return text, nil
			}
		}
	}
	return "", errors.New("no text in response")
}

func (c *Client) generate(ctx context.Context, operation, model string, body generateRequest) (*generateResponse, error) {
	done := metrics.TimeRemoteCall("gemini", operation)
	defer done()

	var out generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("model", model).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&out).
		Post(generatePath)
	if err := httpclient.Check(resp, err); err != nil {
		status := httpclient.StatusCode(err)
		metrics.RecordRemoteError("gemini", operation, err, status)
		c.logger.Warn("Gemini request failed",
			zap.String("operation", operation),
			zap.String("model", model),
			zap.Int("status", status),
			zap.Error(err))
		return nil, fmt.Errorf("gemini %s: %w", operation, err)
	}

	return &out, nil
}

// refusal reports a content-policy block in the response
func refusal(resp *generateResponse) error {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		metrics.RecordRemoteError("gemini", "policy", models.ErrContentPolicy, 0)
		return fmt.Errorf("prompt blocked (%s): %w", resp.PromptFeedback.BlockReason, models.ErrContentPolicy)
	}
	for _, cand := range resp.Candidates {
		if policyFinishReasons[cand.FinishReason] {
			metrics.RecordRemoteError("gemini", "policy", models.ErrContentPolicy, 0)
			return fmt.Errorf("finish reason %s: %w", cand.FinishReason, models.ErrContentPolicy)
		}
	}
	return nil
}
