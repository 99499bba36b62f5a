package interfaces

import (
	"context"

	"go-psi-bot/internal/models"
)

//go:generate mockgen -package=mock -source=cache.go -destination=mock/cache.go

// ValueCache returns per-subject generated values that stay fixed for the TTL
type ValueCache interface {
	GetOrGenerate(kind models.Kind, subject string) (value int, tag string)
}

// ArtifactStore keeps generated images in memory
type ArtifactStore interface {
	Get(subject string) ([]byte, bool) // returns payload and fresh-hit flag
	Set(subject string, payload []byte)
	Len() int
}

// ArtifactCache returns a cached image or renders a new one
type ArtifactCache interface {
	GetOrRender(ctx context.Context, subject string, profile models.Profile) ([]byte, error)
}
