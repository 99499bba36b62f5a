package interfaces

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

//go:generate mockgen -source=keydb_client.go -destination=mock/keydb_client.go -package=mock

// KeyDbClient is the subset of the KeyDB/Redis client used by snapshot storage
type KeyDbClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd

	// Set stores a value; zero expiration keeps it forever
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd

	Ping(ctx context.Context) *redis.StatusCmd

	Close() error
}
