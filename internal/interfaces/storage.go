package interfaces

import "context"

//go:generate mockgen -package=mock -source=storage.go -destination=mock/storage.go

// SnapshotStore persists a whole serialized snapshot under a single name.
// Load returns models.ErrSnapshotNotFound when nothing was saved yet.
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
