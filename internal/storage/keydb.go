package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"go-psi-bot/internal/config"
	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/models"
)

// Ensure KeyDBStore implements interfaces.SnapshotStore
var _ interfaces.SnapshotStore = (*KeyDBStore)(nil)

// KeyDBStore keeps a snapshot under a single KeyDB key, so several bot
// replicas can share persisted state across restarts
type KeyDBStore struct {
	client interfaces.KeyDbClient
	key    string
	config *config.KeyDBConfig
	logger *zap.Logger
}

// NewKeyDBStore creates a snapshot store for name, prefixed with the configured key prefix
func NewKeyDBStore(cfg *config.KeyDBConfig, client interfaces.KeyDbClient, name string, logger *zap.Logger) *KeyDBStore {
	return &KeyDBStore{
		client: client,
		key:    cfg.KeyPrefix + name,
		config: cfg,
		logger: logger,
	}
}

// Load reads the snapshot
func (ks *KeyDBStore) Load(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, ks.config.Connection.ReadTimeout)
	defer cancel()

	data, err := ks.client.Get(ctx, ks.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, models.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("keydb get %s: %w", ks.key, err)
	}

	return data, nil
}

// Save replaces the snapshot without expiration
func (ks *KeyDBStore) Save(ctx context.Context, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, ks.config.Connection.SendTimeout)
	defer cancel()

	if err := ks.client.Set(ctx, ks.key, data, 0).Err(); err != nil {
		return fmt.Errorf("keydb set %s: %w", ks.key, err)
	}

	ks.logger.Debug("Snapshot saved to KeyDB", zap.String("key", ks.key), zap.Int("bytes", len(data)))
	return nil
}

// Key returns the KeyDB key holding the snapshot
func (ks *KeyDBStore) Key() string {
	return ks.key
}

// Close closes the KeyDB connection
func (ks *KeyDBStore) Close() error {
	return ks.client.Close()
}
