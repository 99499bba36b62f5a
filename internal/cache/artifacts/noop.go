package artifacts

import "go-psi-bot/internal/interfaces"

// Ensure NoOpStore implements interfaces.ArtifactStore
var _ interfaces.ArtifactStore = (*NoOpStore)(nil)

// NoOpStore is used when the artifact cache is disabled; every request regenerates
type NoOpStore struct{}

// NewNoOpStore creates a store that never holds anything
func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

// Get always misses
func (n *NoOpStore) Get(subject string) ([]byte, bool) {
	return nil, false
}

// Set does nothing
func (n *NoOpStore) Set(subject string, payload []byte) {}

// Len is always zero
func (n *NoOpStore) Len() int {
	return 0
}
