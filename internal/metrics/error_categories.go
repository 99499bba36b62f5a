package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"go-psi-bot/internal/models"
)

// ErrorCategory is a low-cardinality label for failed remote calls
type ErrorCategory string

const (
	// NoError indicates a successful call
	NoError ErrorCategory = "none"

	// NetworkError indicates timeouts, resets and unreachable hosts
	NetworkError ErrorCategory = "network_error"

	// HTTPError indicates a non-2xx response
	HTTPError ErrorCategory = "http_error"

	// ContentPolicyError indicates the remote generator refused the prompt
	ContentPolicyError ErrorCategory = "content_policy"

	// UnknownError indicates unclassified errors
	UnknownError ErrorCategory = "unknown_error"
)

var networkMessages = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"i/o timeout",
	"broken pipe",
	"EOF",
}

// CategorizeError maps a remote call error and its HTTP status (0 if none was received)
// to an ErrorCategory
func CategorizeError(err error, httpStatus int) ErrorCategory {
	if err == nil {
		return NoError
	}

	if errors.Is(err, models.ErrContentPolicy) {
		return ContentPolicyError
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NetworkError
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return NetworkError
	}

	errStr := err.Error()
	for _, msg := range networkMessages {
		if strings.Contains(errStr, msg) {
			return NetworkError
		}
	}

	if httpStatus != 0 && (httpStatus < http.StatusOK || httpStatus >= http.StatusMultipleChoices) {
		return HTTPError
	}

	return UnknownError
}
