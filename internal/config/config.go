package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultDailyLimit = 100

	StorageBackendFile  = "file"
	StorageBackendKeyDB = "keydb"
)

// Config represents the main configuration structure
type Config struct {
	Cache      CacheConfig      `yaml:"cache"`
	Artifacts  ArtifactsConfig  `yaml:"artifacts"`
	Quota      QuotaConfig      `yaml:"quota"`
	Storage    StorageConfig    `yaml:"storage"`
	Generation GenerationConfig `yaml:"generation"`
	Search     SearchConfig     `yaml:"search"`
	Proof      ProofConfig      `yaml:"proof"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Server     ServerConfig     `yaml:"server"`
}

// CacheConfig configures the value cache
type CacheConfig struct {
	TTL            time.Duration `yaml:"ttl" validate:"gt=0"`
	SweepInterval  time.Duration `yaml:"sweep_interval" validate:"gt=0"`
	PersistTimeout time.Duration `yaml:"persist_timeout" validate:"gt=0"`
}

// ArtifactsConfig configures the in-memory image cache
type ArtifactsConfig struct {
	Disabled       bool   `yaml:"disabled"`
	SizeMB         int    `yaml:"size_mb" validate:"gte=0"`
	MaxEntrySizeKB int    `yaml:"max_entry_size_kb" validate:"gt=0"`
	Dedupe         bool   `yaml:"dedupe"`
	FontPath       string `yaml:"font_path"`
}

// QuotaConfig configures the daily search quota
type QuotaConfig struct {
	DailyLimit int `yaml:"daily_limit" validate:"gte=0"`
}

// StorageConfig selects where snapshots are persisted
type StorageConfig struct {
	Backend        string      `yaml:"backend" validate:"oneof=file keydb"`
	DataDir        string      `yaml:"data_dir" validate:"required"`
	ValueCacheFile string      `yaml:"value_cache_file" validate:"required"`
	QuotaFile      string      `yaml:"quota_file" validate:"required"`
	KeyDB          KeyDBConfig `yaml:"keydb"`
}

// KeyDBConfig configures the optional KeyDB snapshot backend
type KeyDBConfig struct {
	KeyPrefix  string           `yaml:"key_prefix"`
	Connection ConnectionConfig `yaml:"connection"`
	Keepalive  KeepaliveConfig  `yaml:"keepalive"`
}

// ConnectionConfig holds KeyDB timeouts
type ConnectionConfig struct {
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	SendTimeout    time.Duration `yaml:"send_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
}

// KeepaliveConfig holds KeyDB pool settings
type KeepaliveConfig struct {
	PoolSize       int           `yaml:"pool_size"`
	MaxIdleTimeout time.Duration `yaml:"max_idle_timeout"`
}

// GenerationConfig configures the generative-AI endpoint
type GenerationConfig struct {
	BaseURL        string        `yaml:"base_url" validate:"url"`
	ImageModel     string        `yaml:"image_model" validate:"required"`
	TextModel      string        `yaml:"text_model" validate:"required"`
	ImageTimeout   time.Duration `yaml:"image_timeout" validate:"gt=0"`
	TextTimeout    time.Duration `yaml:"text_timeout" validate:"gt=0"`
	SummaryTimeout time.Duration `yaml:"summary_timeout" validate:"gt=0"`
}

// SearchConfig configures the web-search endpoint and page fetching
type SearchConfig struct {
	BaseURL      string        `yaml:"base_url" validate:"url"`
	Results      int           `yaml:"results" validate:"gt=0,lte=10"`
	DateRestrict string        `yaml:"date_restrict"`
	Timeout      time.Duration `yaml:"timeout" validate:"gt=0"`
	PageTimeout  time.Duration `yaml:"page_timeout" validate:"gt=0"`
	PageExcerpt  int           `yaml:"page_excerpt" validate:"gt=0"`
}

// ProofConfig configures the search-backed summary feature
type ProofConfig struct {
	MinLength int `yaml:"min_length" validate:"gte=0"`
}

// TelegramConfig configures the messaging platform transport
type TelegramConfig struct {
	BaseURL       string        `yaml:"base_url" validate:"url"`
	PollTimeout   time.Duration `yaml:"poll_timeout" validate:"gt=0"`
	RatePerSecond float64       `yaml:"rate_per_second" validate:"gt=0"`
	MessageLimit  int           `yaml:"message_limit" validate:"gt=0"`
}

// ServerConfig configures the HTTP API / metrics server
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr" validate:"required"`
}

// LoadConfig loads configuration from file path.
// A missing file yields the default configuration.
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	// seeded before decoding so an explicit daily_limit of 0 survives
	config := Config{Quota: QuotaConfig{DailyLimit: defaultDailyLimit}}

	file, err := os.Open(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("Configuration file not found, using defaults", zap.String("path", configPath))
	case err != nil:
		return nil, fmt.Errorf("failed to open config file: %w", err)
	default:
		defer func() { _ = file.Close() }()

		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML config: %w", err)
		}
	}

	// Apply defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ValueCachePath returns the value cache snapshot file path
func (c *Config) ValueCachePath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.ValueCacheFile)
}

// QuotaPath returns the quota counter snapshot file path
func (c *Config) QuotaPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.QuotaFile)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 6 * time.Hour
	}
	if c.Cache.SweepInterval == 0 {
		c.Cache.SweepInterval = 10 * time.Minute
	}
	if c.Cache.PersistTimeout == 0 {
		c.Cache.PersistTimeout = 5 * time.Second
	}

	if c.Artifacts.SizeMB == 0 {
		c.Artifacts.SizeMB = 64
	}
	if c.Artifacts.MaxEntrySizeKB == 0 {
		c.Artifacts.MaxEntrySizeKB = 4096
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = StorageBackendFile
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = defaultDataDir()
	}
	if c.Storage.ValueCacheFile == "" {
		c.Storage.ValueCacheFile = "cache.json"
	}
	if c.Storage.QuotaFile == "" {
		c.Storage.QuotaFile = "api_usage.json"
	}
	c.Storage.KeyDB.applyDefaults()

	if c.Generation.BaseURL == "" {
		c.Generation.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if c.Generation.ImageModel == "" {
		c.Generation.ImageModel = "gemini-2.0-flash-preview-image-generation"
	}
	if c.Generation.TextModel == "" {
		c.Generation.TextModel = "gemini-1.5-flash-latest"
	}
	if c.Generation.ImageTimeout == 0 {
		c.Generation.ImageTimeout = 30 * time.Second
	}
	if c.Generation.TextTimeout == 0 {
		c.Generation.TextTimeout = 10 * time.Second
	}
	if c.Generation.SummaryTimeout == 0 {
		c.Generation.SummaryTimeout = 90 * time.Second
	}

	if c.Search.BaseURL == "" {
		c.Search.BaseURL = "https://www.googleapis.com/customsearch/v1"
	}
	if c.Search.Results == 0 {
		c.Search.Results = 3
	}
	if c.Search.DateRestrict == "" {
		c.Search.DateRestrict = "d1"
	}
	if c.Search.Timeout == 0 {
		c.Search.Timeout = 10 * time.Second
	}
	if c.Search.PageTimeout == 0 {
		c.Search.PageTimeout = 10 * time.Second
	}
	if c.Search.PageExcerpt == 0 {
		c.Search.PageExcerpt = 1500
	}

	if c.Proof.MinLength == 0 {
		c.Proof.MinLength = 10
	}

	if c.Telegram.BaseURL == "" {
		c.Telegram.BaseURL = "https://api.telegram.org"
	}
	if c.Telegram.PollTimeout == 0 {
		c.Telegram.PollTimeout = 30 * time.Second
	}
	if c.Telegram.RatePerSecond == 0 {
		c.Telegram.RatePerSecond = 25
	}
	if c.Telegram.MessageLimit == 0 {
		c.Telegram.MessageLimit = 4096
	}

	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8080"
	}
}

func (k *KeyDBConfig) applyDefaults() {
	if k.KeyPrefix == "" {
		k.KeyPrefix = "psi-bot:"
	}
	if k.Connection.ConnectTimeout == 0 {
		k.Connection.ConnectTimeout = time.Second
	}
	if k.Connection.SendTimeout == 0 {
		k.Connection.SendTimeout = time.Second
	}
	if k.Connection.ReadTimeout == 0 {
		k.Connection.ReadTimeout = time.Second
	}
	if k.Keepalive.PoolSize == 0 {
		k.Keepalive.PoolSize = 10
	}
	if k.Keepalive.MaxIdleTimeout == 0 {
		k.Keepalive.MaxIdleTimeout = 10 * time.Second
	}
}

func defaultDataDir() string {
	if _, err := os.Stat("/app"); err == nil {
		return "/app/data"
	}
	return "./data"
}
