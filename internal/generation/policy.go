package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/metrics"
	"go-psi-bot/internal/models"
)

// Ensure Policy implements interfaces.ArtifactGenerator
var _ interfaces.ArtifactGenerator = (*Policy)(nil)

// Policy produces an image through an ordered chain of tiers:
// the primary prompt, one sanitized retry after a content-policy refusal,
// and finally the local renderer.
type Policy struct {
	primary interfaces.ImageGenerator // nil when no remote generator is configured
	local   interfaces.LocalRenderer
	timeout time.Duration
	logger  *zap.Logger
}

// NewPolicy creates a generation policy. primary may be nil.
func NewPolicy(primary interfaces.ImageGenerator, local interfaces.LocalRenderer, timeout time.Duration, logger *zap.Logger) *Policy {
	return &Policy{
		primary: primary,
		local:   local,
		timeout: timeout,
		logger:  logger,
	}
}

// Generate runs the tiers and returns the first successful image with its tier.
// Only a local rendering failure is returned as an error.
func (p *Policy) Generate(ctx context.Context, profile models.Profile) ([]byte, models.GenerationTier, error) {
	if p.primary != nil {
		payload, tier, err := p.generateRemote(ctx, profile)
		if err == nil {
			return payload, tier, nil
		}
		p.logger.Warn("Remote image generation failed, rendering locally",
			zap.String("name", profile.Name),
			zap.String("tier", string(tier)),
			zap.Error(err))
	}

	payload, err := p.local.Render(profile)
	metrics.RecordGeneration(string(models.TierLocal), err)
	if err != nil {
		return nil, models.TierLocal, fmt.Errorf("local render: %w", err)
	}
	return payload, models.TierLocal, nil
}

// generateRemote returns the last tier attempted together with its error
func (p *Policy) generateRemote(ctx context.Context, profile models.Profile) ([]byte, models.GenerationTier, error) {
	payload, err := p.attempt(ctx, models.TierPrimary, PrimaryPrompt(profile))
	if err == nil {
		return payload, models.TierPrimary, nil
	}
	if !errors.Is(err, models.ErrContentPolicy) {
		return nil, models.TierPrimary, err
	}

	p.logger.Info("Primary prompt refused by content policy, retrying sanitized", zap.String("name", profile.Name))

	payload, err = p.attempt(ctx, models.TierSanitized, SanitizedPrompt(profile))
	if err != nil {
		return nil, models.TierSanitized, err
	}
	return payload, models.TierSanitized, nil
}

func (p *Policy) attempt(ctx context.Context, tier models.GenerationTier, prompt string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	payload, err := p.primary.GenerateImage(ctx, prompt)
	if err == nil && len(payload) == 0 {
		err = errors.New("empty image payload")
	}
	metrics.RecordGeneration(string(tier), err)
	return payload, err
}
