package httpclient

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Ensure ZapLogger implements resty.Logger
var _ resty.Logger = (*ZapLogger)(nil)

// ZapLogger adapts zap.Logger to the resty.Logger interface
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger creates a new ZapLogger adapter
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger.With(zap.String("component", "resty"))}
}

// Errorf logs an error message
func (z *ZapLogger) Errorf(format string, v ...interface{}) {
	z.logger.Error(message(format, v))
}

// Warnf logs a warning message
func (z *ZapLogger) Warnf(format string, v ...interface{}) {
	z.logger.Warn(message(format, v))
}

// Debugf logs a debug message
func (z *ZapLogger) Debugf(format string, v ...interface{}) {
	z.logger.Debug(message(format, v))
}

func message(format string, v []interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
