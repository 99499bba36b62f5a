package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	SecretBotToken     = "psi_chat_bot"
	SecretGeminiAPIKey = "GEMINI_API_KEY"
	SecretGoogleAPIKey = "GOOGLE_API_KEY"
	SecretGoogleCSEID  = "GOOGLE_CSE_ID"

	defaultSecretsDir = "/run/secrets"
)

// ErrMissingBotToken is returned when the mandatory bot credential is absent
var ErrMissingBotToken = errors.New("bot token not found in secrets or environment")

// Secrets holds the service credentials
type Secrets struct {
	BotToken     string
	GeminiAPIKey string
	GoogleAPIKey string
	GoogleCSEID  string
}

// HasGeneration reports whether the generative-AI endpoint can be used
func (s Secrets) HasGeneration() bool {
	return s.GeminiAPIKey != ""
}

// HasSearch reports whether the web-search endpoint can be used
func (s Secrets) HasSearch() bool {
	return s.GoogleAPIKey != "" && s.GoogleCSEID != ""
}

// LoadSecrets resolves all credentials. Only the bot token is mandatory;
// a missing optional credential is logged once as a warning.
func LoadSecrets(logger *zap.Logger) (Secrets, error) {
	secrets := Secrets{
		BotToken:     GetSecret(SecretBotToken, logger),
		GeminiAPIKey: GetSecret(SecretGeminiAPIKey, logger),
		GoogleAPIKey: GetSecret(SecretGoogleAPIKey, logger),
		GoogleCSEID:  GetSecret(SecretGoogleCSEID, logger),
	}

	if secrets.BotToken == "" {
		return Secrets{}, ErrMissingBotToken
	}
	if !secrets.HasGeneration() {
		logger.Warn("GEMINI_API_KEY not set, image and text generation disabled")
	}
	if !secrets.HasSearch() {
		logger.Warn("GOOGLE_API_KEY or GOOGLE_CSE_ID not set, web search disabled")
	}

	return secrets, nil
}

// GetSecret returns a secret with the following priority:
// 1. Docker secret file in SECRETS_DIR (default /run/secrets)
// 2. Environment variable
func GetSecret(name string, logger *zap.Logger) string {
	dir := os.Getenv("SECRETS_DIR")
	if dir == "" {
		dir = defaultSecretsDir
	}

	path := filepath.Join(dir, name)
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if value := strings.TrimSpace(string(content)); value != "" {
			logger.Debug("Using secret from file", zap.String("name", name))
			return value
		}
	case !errors.Is(err, os.ErrNotExist):
		logger.Warn("Failed to read secret file", zap.String("name", name), zap.Error(err))
	}

	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		logger.Debug("Using secret from environment variable", zap.String("name", name))
		return value
	}

	return ""
}
