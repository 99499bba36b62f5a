package artifacts

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/metrics"
	"go-psi-bot/internal/models"
)

// Ensure Cache implements interfaces.ArtifactCache
var _ interfaces.ArtifactCache = (*Cache)(nil)

// Cache serves images from the store and runs the generation policy on a miss.
// Generation happens outside the store; only the final Set touches it again.
type Cache struct {
	store     interfaces.ArtifactStore
	generator interfaces.ArtifactGenerator
	logger    *zap.Logger

	// group is nil unless dedupe is enabled
	group *singleflight.Group
}

// NewCache creates an artifact cache. With dedupe set, concurrent misses for one
// subject share a single generation.
func NewCache(store interfaces.ArtifactStore, generator interfaces.ArtifactGenerator, dedupe bool, logger *zap.Logger) *Cache {
	c := &Cache{
		store:     store,
		generator: generator,
		logger:    logger,
	}
	if dedupe {
		c.group = &singleflight.Group{}
	}
	return c
}

// GetOrRender returns the cached image for subject or generates and stores a new one
func (c *Cache) GetOrRender(ctx context.Context, subject string, profile models.Profile) ([]byte, error) {
	if payload, ok := c.store.Get(subject); ok {
		metrics.RecordCacheHit(metrics.CacheArtifacts)
		return payload, nil
	}
	metrics.RecordCacheMiss(metrics.CacheArtifacts)

	if c.group == nil {
		return c.render(ctx, subject, profile)
	}

	v, err, shared := c.group.Do(subject, func() (interface{}, error) {
		return c.render(ctx, subject, profile)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("Shared in-flight artifact generation", zap.String("subject", subject))
	}
	return v.([]byte), nil
}

func (c *Cache) render(ctx context.Context, subject string, profile models.Profile) ([]byte, error) {
	payload, tier, err := c.generator.Generate(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("generate artifact for %s: %w", subject, err)
	}

	c.store.Set(subject, payload)

	c.logger.Info("Artifact generated",
		zap.String("subject", subject),
		zap.String("tier", string(tier)),
		zap.Int("bytes", len(payload)))

	return payload, nil
}
