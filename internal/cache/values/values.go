package values

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/metrics"
	"go-psi-bot/internal/models"
)

// Ensure Cache implements interfaces.ValueCache
var _ interfaces.ValueCache = (*Cache)(nil)

// DrawFunc returns an integer in [lo, hi]
type DrawFunc func(lo, hi int) int

// UniformDraw draws uniformly from [lo, hi]
func UniformDraw(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

// Cache maps (kind, subject) to a generated value that stays fixed for the TTL.
// Every regeneration schedules a background write of the whole snapshot.
type Cache struct {
	mu      sync.Mutex
	entries map[models.ValueKey]models.ValueEntry

	ttl            time.Duration
	persistTimeout time.Duration
	store          interfaces.SnapshotStore
	clock          clock.Clock
	draw           DrawFunc
	logger         *zap.Logger

	// persistMu serializes snapshot writes; wg tracks background writers
	persistMu sync.Mutex
	wg        sync.WaitGroup
}

// Option customizes a Cache
type Option func(*Cache)

// WithClock replaces the wall clock
func WithClock(clk clock.Clock) Option {
	return func(c *Cache) { c.clock = clk }
}

// WithDraw replaces the uniform random draw
func WithDraw(draw DrawFunc) Option {
	return func(c *Cache) { c.draw = draw }
}

// WithPersistTimeout bounds each background snapshot write
func WithPersistTimeout(d time.Duration) Option {
	return func(c *Cache) { c.persistTimeout = d }
}

// NewCache creates an empty value cache persisted to store
func NewCache(ttl time.Duration, store interfaces.SnapshotStore, logger *zap.Logger, opts ...Option) *Cache {
	c := &Cache{
		entries:        make(map[models.ValueKey]models.ValueEntry),
		ttl:            ttl,
		persistTimeout: 5 * time.Second,
		store:          store,
		clock:          clock.New(),
		draw:           UniformDraw,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrGenerate returns the stored value while it is fresh, otherwise draws a new
// one, stores it and schedules persistence. An unknown kind panics.
func (c *Cache) GetOrGenerate(kind models.Kind, subject string) (int, string) {
	key := models.ValueKey{Kind: kind, Subject: subject}

	c.mu.Lock()
	now := c.clock.Now()
	if entry, ok := c.entries[key]; ok && entry.IsFresh(now, c.ttl) {
		c.mu.Unlock()
		metrics.RecordCacheHit(metrics.CacheValues)
		return entry.Value, entry.Tag
	}

	rng := kind.Range()
	value := c.draw(rng.Min, rng.Max)
	entry := models.ValueEntry{
		Value:     value,
		Tag:       rng.TagFor(value),
		CreatedAt: now,
	}
	c.entries[key] = entry
	size := len(c.entries)
	c.mu.Unlock()

	metrics.RecordCacheMiss(metrics.CacheValues)
	metrics.UpdateCacheEntries(metrics.CacheValues, size)

	c.logger.Debug("Generated value",
		zap.String("key", key.String()),
		zap.Int("value", entry.Value),
		zap.String("tag", entry.Tag))

	c.persistAsync()
	return entry.Value, entry.Tag
}

// Load replaces the in-memory state with the persisted snapshot, dropping entries
// older than the TTL and keys that cannot be decoded. A missing or corrupt
// snapshot leaves the cache empty.
func (c *Cache) Load(ctx context.Context) error {
	data, err := c.store.Load(ctx)
	if errors.Is(err, models.ErrSnapshotNotFound) {
		c.logger.Info("No value cache snapshot found, starting empty")
		return nil
	}
	if err != nil {
		metrics.RecordPersistError(metrics.CacheValues, "load")
		return fmt.Errorf("load value cache: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		metrics.RecordPersistError(metrics.CacheValues, "decode")
		c.logger.Warn("Value cache snapshot is corrupt, starting empty", zap.Error(err))
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	loaded := make(map[models.ValueKey]models.ValueEntry, len(raw))
	var stale, invalid int
	for k, v := range raw {
		key, err := models.ParseValueKey(k)
		if err != nil {
			invalid++
			continue
		}
		var entry models.ValueEntry
		if err := json.Unmarshal(v, &entry); err != nil {
			invalid++
			continue
		}
		if !entry.IsFresh(now, c.ttl) {
			stale++
			continue
		}
		loaded[key] = entry
	}
	c.entries = loaded

	metrics.UpdateCacheEntries(metrics.CacheValues, len(loaded))
	c.logger.Info("Value cache loaded",
		zap.Int("entries", len(loaded)),
		zap.Int("stale_dropped", stale),
		zap.Int("invalid_dropped", invalid))

	return nil
}

// Sweep removes stale entries and schedules persistence if anything was dropped
func (c *Cache) Sweep() int {
	c.mu.Lock()
	now := c.clock.Now()
	removed := 0
	for key, entry := range c.entries {
		if !entry.IsFresh(now, c.ttl) {
			delete(c.entries, key)
			removed++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	metrics.UpdateCacheEntries(metrics.CacheValues, size)

	if removed > 0 {
		c.logger.Debug("Swept stale values", zap.Int("removed", removed), zap.Int("remaining", size))
		c.persistAsync()
	}
	return removed
}

// Flush waits for background writes and then writes the current snapshot
func (c *Cache) Flush(ctx context.Context) error {
	c.wg.Wait()
	return c.persist(ctx)
}

// Wait blocks until all scheduled background writes have finished
func (c *Cache) Wait() {
	c.wg.Wait()
}

// Len returns the number of entries, fresh or not
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) persistAsync() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), c.persistTimeout)
		defer cancel()

		if err := c.persist(ctx); err != nil {
			c.logger.Error("Failed to persist value cache", zap.Error(err))
		}
	}()
}

// persist writes the latest state. Writers are serialized and each one
// snapshots under mu, so the newest data always lands last.
func (c *Cache) persist(ctx context.Context) error {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	data, err := c.snapshot()
	if err != nil {
		metrics.RecordPersistError(metrics.CacheValues, "encode")
		return fmt.Errorf("encode value cache: %w", err)
	}

	if err := c.store.Save(ctx, data); err != nil {
		metrics.RecordPersistError(metrics.CacheValues, "save")
		return fmt.Errorf("save value cache: %w", err)
	}
	return nil
}

func (c *Cache) snapshot() ([]byte, error) {
	c.mu.Lock()
	out := make(map[string]models.ValueEntry, len(c.entries))
	for key, entry := range c.entries {
		out[key.String()] = entry
	}
	c.mu.Unlock()

	return json.Marshal(out)
}
