package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func createTestConfigFile(t *testing.T, content string) string {
	tmpFile, err := os.CreateTemp("", "bot_config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}

	if err := tmpFile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	return tmpFile.Name()
}

func TestLoadConfig(t *testing.T) {
	logger := zaptest.NewLogger(t)

	validConfig := `
cache:
  ttl: 3h
  sweep_interval: 5m

artifacts:
  disabled: true
  size_mb: 16
  dedupe: true

quota:
  daily_limit: 25

storage:
  backend: keydb
  data_dir: /var/lib/psi-bot
  keydb:
    key_prefix: "test:"
    connection:
      connect_timeout: 2s
    keepalive:
      pool_size: 20

search:
  results: 5

server:
  listen_addr: ":9090"
`

	configFile := createTestConfigFile(t, validConfig)
	defer os.Remove(configFile)

	config, err := LoadConfig(configFile, logger)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.Cache.TTL != 3*time.Hour {
		t.Errorf("LoadConfig() Cache.TTL = %v, want 3h", config.Cache.TTL)
	}
	if config.Cache.SweepInterval != 5*time.Minute {
		t.Errorf("LoadConfig() Cache.SweepInterval = %v, want 5m", config.Cache.SweepInterval)
	}
	if !config.Artifacts.Disabled || !config.Artifacts.Dedupe {
		t.Errorf("LoadConfig() Artifacts = %+v, want disabled and dedupe", config.Artifacts)
	}
	if config.Artifacts.SizeMB != 16 {
		t.Errorf("LoadConfig() Artifacts.SizeMB = %v, want 16", config.Artifacts.SizeMB)
	}
	if config.Quota.DailyLimit != 25 {
		t.Errorf("LoadConfig() Quota.DailyLimit = %v, want 25", config.Quota.DailyLimit)
	}
	if config.Storage.Backend != StorageBackendKeyDB {
		t.Errorf("LoadConfig() Storage.Backend = %v, want keydb", config.Storage.Backend)
	}
	if config.Storage.KeyDB.Connection.ConnectTimeout != 2*time.Second {
		t.Errorf("LoadConfig() KeyDB.Connection.ConnectTimeout = %v, want 2s", config.Storage.KeyDB.Connection.ConnectTimeout)
	}
	if config.Storage.KeyDB.Keepalive.PoolSize != 20 {
		t.Errorf("LoadConfig() KeyDB.Keepalive.PoolSize = %v, want 20", config.Storage.KeyDB.Keepalive.PoolSize)
	}
	if config.Search.Results != 5 {
		t.Errorf("LoadConfig() Search.Results = %v, want 5", config.Search.Results)
	}
	if config.Server.ListenAddr != ":9090" {
		t.Errorf("LoadConfig() Server.ListenAddr = %v, want :9090", config.Server.ListenAddr)
	}
	if got, want := config.ValueCachePath(), filepath.Join("/var/lib/psi-bot", "cache.json"); got != want {
		t.Errorf("ValueCachePath() = %v, want %v", got, want)
	}
	if got, want := config.QuotaPath(), filepath.Join("/var/lib/psi-bot", "api_usage.json"); got != want {
		t.Errorf("QuotaPath() = %v, want %v", got, want)
	}
}

func TestLoadConfig_WithDefaults(t *testing.T) {
	logger := zaptest.NewLogger(t)

	minimalConfig := `
quota:
  daily_limit: 100
`

	configFile := createTestConfigFile(t, minimalConfig)
	defer os.Remove(configFile)

	config, err := LoadConfig(configFile, logger)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.Cache.TTL != 6*time.Hour {
		t.Errorf("LoadConfig() Cache.TTL = %v, want 6h (default)", config.Cache.TTL)
	}
	if config.Artifacts.Disabled {
		t.Errorf("LoadConfig() Artifacts.Disabled = true, want false (default)")
	}
	if config.Artifacts.MaxEntrySizeKB != 4096 {
		t.Errorf("LoadConfig() Artifacts.MaxEntrySizeKB = %v, want 4096 (default)", config.Artifacts.MaxEntrySizeKB)
	}
	if config.Storage.Backend != StorageBackendFile {
		t.Errorf("LoadConfig() Storage.Backend = %v, want file (default)", config.Storage.Backend)
	}
	if config.Storage.KeyDB.Keepalive.PoolSize != 10 {
		t.Errorf("LoadConfig() KeyDB.Keepalive.PoolSize = %v, want 10 (default)", config.Storage.KeyDB.Keepalive.PoolSize)
	}
	if config.Generation.ImageTimeout != 30*time.Second {
		t.Errorf("LoadConfig() Generation.ImageTimeout = %v, want 30s (default)", config.Generation.ImageTimeout)
	}
	if config.Proof.MinLength != 10 {
		t.Errorf("LoadConfig() Proof.MinLength = %v, want 10 (default)", config.Proof.MinLength)
	}
	if config.Telegram.MessageLimit != 4096 {
		t.Errorf("LoadConfig() Telegram.MessageLimit = %v, want 4096 (default)", config.Telegram.MessageLimit)
	}
}

func TestLoadConfig_FileNotFoundUsesDefaults(t *testing.T) {
	logger := zaptest.NewLogger(t)

	config, err := LoadConfig("/nonexistent/bot_config.yaml", logger)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Quota.DailyLimit != 100 {
		t.Errorf("LoadConfig() Quota.DailyLimit = %v, want 100 (default)", config.Quota.DailyLimit)
	}
}

func TestLoadConfig_ZeroDailyLimitIsKept(t *testing.T) {
	logger := zaptest.NewLogger(t)

	configFile := createTestConfigFile(t, "quota:\n  daily_limit: 0\n")
	defer os.Remove(configFile)

	config, err := LoadConfig(configFile, logger)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Quota.DailyLimit != 0 {
		t.Errorf("LoadConfig() Quota.DailyLimit = %v, want 0 (explicit)", config.Quota.DailyLimit)
	}
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	logger := zaptest.NewLogger(t)

	configFile := createTestConfigFile(t, "")
	defer os.Remove(configFile)

	config, err := LoadConfig(configFile, logger)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Cache.TTL != 6*time.Hour {
		t.Errorf("LoadConfig() Cache.TTL = %v, want 6h (default)", config.Cache.TTL)
	}
	if config.Quota.DailyLimit != 100 {
		t.Errorf("LoadConfig() Quota.DailyLimit = %v, want 100 (default)", config.Quota.DailyLimit)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	logger := zaptest.NewLogger(t)

	configFile := createTestConfigFile(t, "cache:\n  ttl: [not a duration\n")
	defer os.Remove(configFile)

	if _, err := LoadConfig(configFile, logger); err == nil {
		t.Fatal("LoadConfig() should return error for invalid YAML")
	}
}

func TestLoadConfig_ValidationFails(t *testing.T) {
	logger := zaptest.NewLogger(t)

	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown storage backend",
			content: `
storage:
  backend: s3
`,
		},
		{
			name: "negative daily limit",
			content: `
quota:
  daily_limit: -1
`,
		},
		{
			name: "too many search results",
			content: `
search:
  results: 50
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := createTestConfigFile(t, tt.content)
			defer os.Remove(configFile)

			if _, err := LoadConfig(configFile, logger); err == nil {
				t.Errorf("LoadConfig() should fail validation for %s", tt.name)
			}
		})
	}
}
