package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned when a kind name is not one of AllKinds
	ErrUnknownKind = errors.New("unknown kind")

	// ErrContentPolicy marks a generation refused by the remote content policy
	ErrContentPolicy = errors.New("content policy refusal")

	// ErrSnapshotNotFound is returned by snapshot stores that hold no data yet
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrFeatureUnavailable is returned when an optional credential is missing
	ErrFeatureUnavailable = errors.New("feature unavailable")

	// ErrTextTooShort is returned when a proof request is below the minimum length
	ErrTextTooShort = errors.New("text too short")
)

// QuotaExceededError is the normal refusal of the daily quota guard
type QuotaExceededError struct {
	Reason string
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: %s", e.Reason)
}
