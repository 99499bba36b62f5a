package interfaces

import (
	"context"

	"go-psi-bot/internal/models"
)

//go:generate mockgen -package=mock -source=generation.go -destination=mock/generation.go

// ImageGenerator produces an image from a prompt. A refusal by the remote
// content policy is reported as an error wrapping models.ErrContentPolicy.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// LocalRenderer draws an image without any external dependency
type LocalRenderer interface {
	Render(profile models.Profile) ([]byte, error)
}

// ArtifactGenerator runs the multi-tier generation policy
type ArtifactGenerator interface {
	Generate(ctx context.Context, profile models.Profile) ([]byte, models.GenerationTier, error)
}

// TextGenerator answers a text prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, req models.TextRequest) (string, error)
}
