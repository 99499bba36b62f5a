package artifacts

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"go-psi-bot/internal/config"
	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/metrics"
	"go-psi-bot/internal/scheduler"
)

// Ensure Store implements interfaces.ArtifactStore
var _ interfaces.ArtifactStore = (*Store)(nil)

const (
	// headerSize is the length of the creation timestamp prefixed to every payload
	headerSize = 8
	// entryOverhead covers BigCache's per-entry header and the key
	entryOverhead = 1024
	maxShards     = 16
)

// Store keeps generated images in memory using BigCache. Each entry is the
// creation time in unix nanoseconds (big-endian) followed by the payload.
// Freshness is decided against the injected clock, BigCache's own life window
// only reclaims memory.
type Store struct {
	cache            *bigcache.BigCache
	ttl              time.Duration
	clock            clock.Clock
	logger           *zap.Logger
	maxPayload       int
	metricsScheduler *scheduler.Scheduler
}

// NewStore creates a BigCache-backed artifact store
func NewStore(cfg *config.ArtifactsConfig, ttl time.Duration, clk clock.Clock, logger *zap.Logger) (*Store, error) {
	maxEntry := cfg.MaxEntrySizeKB * 1024
	shards := shardCount(cfg.SizeMB, maxEntry)

	bcConfig := bigcache.DefaultConfig(ttl)
	// a shard is bounded by SizeMB/Shards, so it must hold the largest entry
	bcConfig.Shards = shards
	bcConfig.MaxEntriesInWindow = 1024
	bcConfig.CleanWindow = ttl / 2
	bcConfig.HardMaxCacheSize = cfg.SizeMB // Size in MB
	bcConfig.MaxEntrySize = cfg.MaxEntrySizeKB * 1024
	bcConfig.Verbose = false

	cache, err := bigcache.New(context.Background(), bcConfig)
	if err != nil {
		return nil, err
	}

	maxPayload := maxEntry
	if cfg.SizeMB > 0 {
		maxPayload = min(maxPayload, cfg.SizeMB*1024*1024/shards-entryOverhead-headerSize)
	}

	s := &Store{
		cache:      cache,
		ttl:        ttl,
		clock:      clk,
		logger:     logger,
		maxPayload: maxPayload,
	}

	s.startMetricsCollection()

	return s, nil
}

// Get returns the payload for subject if it exists and is within the TTL
func (s *Store) Get(subject string) ([]byte, bool) {
	data, err := s.cache.Get(subject)
	if err != nil {
		if !errors.Is(err, bigcache.ErrEntryNotFound) {
			metrics.RecordCacheError(metrics.CacheArtifacts, "get")
		}
		return nil, false
	}

	if len(data) < headerSize {
		s.logger.Warn("Dropping malformed artifact entry", zap.String("subject", subject))
		metrics.RecordCacheError(metrics.CacheArtifacts, "decode")
		_ = s.cache.Delete(subject)
		return nil, false
	}

	// stale entries are left for the life window to reclaim; deleting here
	// could drop a fresh Set racing with this read
	createdAt := time.Unix(0, int64(binary.BigEndian.Uint64(data[:headerSize])))
	if s.clock.Now().Sub(createdAt) > s.ttl {
		return nil, false
	}

	payload := make([]byte, len(data)-headerSize)
	copy(payload, data[headerSize:])
	return payload, true
}

// Set stores payload for subject with the current time as creation time
func (s *Store) Set(subject string, payload []byte) {
	if len(payload) > s.maxPayload {
		s.logger.Warn("Artifact too large to cache",
			zap.String("subject", subject),
			zap.Int("bytes", len(payload)),
			zap.Int("max_bytes", s.maxPayload))
		metrics.RecordCacheError(metrics.CacheArtifacts, "oversize")
		return
	}

	entry := make([]byte, headerSize+len(payload))
	binary.BigEndian.PutUint64(entry[:headerSize], uint64(s.clock.Now().UnixNano()))
	copy(entry[headerSize:], payload)

	if err := s.cache.Set(subject, entry); err != nil {
		s.logger.Error("Failed to store artifact", zap.String("subject", subject), zap.Int("bytes", len(payload)), zap.Error(err))
		metrics.RecordCacheError(metrics.CacheArtifacts, "set")
	}
}

// Len returns the number of stored entries, including ones past the TTL not yet reclaimed
func (s *Store) Len() int {
	return s.cache.Len()
}

// Close stops metrics collection and releases the cache
func (s *Store) Close() error {
	s.stopMetricsCollection()

	return s.cache.Close()
}

// startMetricsCollection starts periodic metrics collection
func (s *Store) startMetricsCollection() {
	s.metricsScheduler = scheduler.New(30*time.Second, s.updateMetrics)
	s.metricsScheduler.Start()

	s.updateMetrics()
}

// stopMetricsCollection stops periodic metrics collection
func (s *Store) stopMetricsCollection() {
	if s.metricsScheduler != nil {
		s.metricsScheduler.Stop()
	}
}

func (s *Store) updateMetrics() {
	metrics.UpdateCacheEntries(metrics.CacheArtifacts, s.cache.Len())
}

// shardCount halves the shard count until one shard can hold maxEntry.
// BigCache needs a power of two.
func shardCount(sizeMB, maxEntry int) int {
	if sizeMB <= 0 {
		return maxShards
	}

	shards := maxShards
	for shards > 1 && sizeMB*1024*1024/shards < maxEntry+entryOverhead+headerSize {
		shards /= 2
	}
	return shards
}
