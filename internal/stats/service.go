package stats

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/models"
)

// Service combines the value cache and the artifact cache into user-facing stats
type Service struct {
	values    interfaces.ValueCache
	artifacts interfaces.ArtifactCache
	logger    *zap.Logger
}

// NewService creates a stats service
func NewService(values interfaces.ValueCache, artifacts interfaces.ArtifactCache, logger *zap.Logger) *Service {
	return &Service{
		values:    values,
		artifacts: artifacts,
		logger:    logger,
	}
}

// Reading returns the cached or newly generated reading of one kind
func (s *Service) Reading(subject string, kind models.Kind) models.Reading {
	value, tag := s.values.GetOrGenerate(kind, subject)
	return models.Reading{Kind: kind, Value: value, Tag: tag}
}

// Profile returns all readings of subject under the display name
func (s *Service) Profile(subject, name string) models.Profile {
	return models.Profile{
		Name:   name,
		Weight: s.Reading(subject, models.KindWeight),
		Length: s.Reading(subject, models.KindLength),
		IQ:     s.Reading(subject, models.KindIQ),
		Height: s.Reading(subject, models.KindHeight),
	}
}

// WhoAmI returns the subject's image and its caption
func (s *Service) WhoAmI(ctx context.Context, subject, name string) ([]byte, string, error) {
	profile := s.Profile(subject, name)

	image, err := s.artifacts.GetOrRender(ctx, subject, profile)
	if err != nil {
		return nil, "", fmt.Errorf("whoami %s: %w", subject, err)
	}

	s.logger.Debug("WhoAmI served", zap.String("subject", subject), zap.Int("bytes", len(image)))
	return image, FormatCaption(profile), nil
}
