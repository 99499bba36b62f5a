package httpclient

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultUserAgent is sent when Options.UserAgent is empty
const DefaultUserAgent = "psi-bot/1.0"

// Options configures a resty client
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// New creates a resty client that logs through zap
func New(opts Options, logger *zap.Logger) *resty.Client {
	rc := resty.New()
	rc.SetLogger(NewZapLogger(logger))

	if opts.BaseURL != "" {
		rc.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	rc.SetHeader("User-Agent", userAgent)

	if len(opts.Headers) > 0 {
		rc.SetHeaders(opts.Headers)
	}

	return rc
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// maxErrorBody bounds the response text kept in a StatusError
const maxErrorBody = 512

// Check converts a transport error or a non-2xx response into an error
func Check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		body := strings.TrimSpace(resp.String())
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return &StatusError{StatusCode: resp.StatusCode(), Body: body}
	}
	return nil
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}
