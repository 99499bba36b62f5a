package quota

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/metrics"
	"go-psi-bot/internal/models"
)

// Ensure Guard implements interfaces.QuotaGuard
var _ interfaces.QuotaGuard = (*Guard)(nil)

// Guard caps quota-limited external calls per UTC day. The counter is loaded
// once per process; afterwards memory is authoritative and every increment is
// written through synchronously.
type Guard struct {
	mu      sync.Mutex
	loaded  bool
	counter models.QuotaCounter

	limit  int
	store  interfaces.SnapshotStore
	clock  clock.Clock
	logger *zap.Logger
}

// NewGuard creates a guard allowing limit calls per UTC day
func NewGuard(limit int, store interfaces.SnapshotStore, clk clock.Clock, logger *zap.Logger) *Guard {
	return &Guard{
		limit:  limit,
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// TryConsume takes one unit of today's quota. When the limit is reached it
// returns false with a human-readable reason and does not increment.
func (g *Guard) TryConsume(ctx context.Context) (bool, string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.refresh(ctx) {
		metrics.RecordQuota(false, 0)
		return false, "quota state is unavailable, try again later"
	}

	if g.counter.Count >= g.limit {
		metrics.RecordQuota(false, 0)
		g.logger.Warn("Daily quota exhausted", zap.Int("limit", g.limit), zap.String("date", g.counter.Date))
		return false, fmt.Sprintf("daily limit (%d) reached, try again tomorrow", g.limit)
	}

	g.counter.Count++
	g.save(ctx)

	metrics.RecordQuota(true, g.limit-g.counter.Count)
	g.logger.Info("Quota consumed", zap.Int("count", g.counter.Count), zap.Int("limit", g.limit))
	return true, ""
}

// Usage returns today's counter without consuming quota
func (g *Guard) Usage(ctx context.Context) models.QuotaCounter {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.refresh(ctx)
	return g.counter
}

// Limit returns the configured daily limit
func (g *Guard) Limit() int {
	return g.limit
}

// refresh loads the counter on first use and rolls it over at the UTC day boundary.
// It reports false while the stored counter could not be read; nothing may be
// granted then, or the next save would overwrite the real count.
// Must be called with mu held.
func (g *Guard) refresh(ctx context.Context) bool {
	today := models.Day(g.clock.Now())

	if !g.loaded {
		counter, ok := g.load(ctx)
		if !ok {
			g.counter = models.QuotaCounter{}.ForDay(today)
			return false
		}
		g.counter = counter
		g.loaded = true
	}

	if g.counter.Date != "" && g.counter.Date != today {
		g.logger.Info("New quota day, resetting counter", zap.String("previous", g.counter.Date), zap.String("today", today))
	}
	g.counter = g.counter.ForDay(today)
	return true
}

// load treats a missing or corrupt counter as empty. A failed read is not
// final and reports false so the next call retries it.
func (g *Guard) load(ctx context.Context) (models.QuotaCounter, bool) {
	data, err := g.store.Load(context.WithoutCancel(ctx))
	if errors.Is(err, models.ErrSnapshotNotFound) {
		return models.QuotaCounter{}, true
	}
	if err != nil {
		metrics.RecordPersistError("quota", "load")
		g.logger.Warn("Failed to load quota counter", zap.Error(err))
		return models.QuotaCounter{}, false
	}

	var counter models.QuotaCounter
	if err := json.Unmarshal(data, &counter); err != nil {
		metrics.RecordPersistError("quota", "decode")
		g.logger.Warn("Quota counter is corrupt, starting from zero", zap.Error(err))
		return models.QuotaCounter{}, true
	}
	return counter, true
}

func (g *Guard) save(ctx context.Context) {
	data, err := json.Marshal(g.counter)
	if err == nil {
		// the unit is already granted, so the write must not be cut short by the caller
		err = g.store.Save(context.WithoutCancel(ctx), data)
	}
	if err != nil {
		metrics.RecordPersistError("quota", "save")
		g.logger.Error("Failed to persist quota counter", zap.Error(err))
	}
}
