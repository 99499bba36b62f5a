package interfaces

import (
	"context"

	"go-psi-bot/internal/models"
)

//go:generate mockgen -package=mock -source=quota.go -destination=mock/quota.go

// QuotaGuard bounds quota-limited external calls per UTC day
type QuotaGuard interface {
	TryConsume(ctx context.Context) (allowed bool, reason string)
	Usage(ctx context.Context) models.QuotaCounter
}
