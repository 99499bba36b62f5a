package quota

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-psi-bot/internal/interfaces/mock"
	"go-psi-bot/internal/models"
)

type memStore struct {
	mu      sync.Mutex
	data    []byte
	loads   int
	err     error
	loadErr error
}

func (m *memStore) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.data == nil {
		return nil, models.ErrSnapshotNotFound
	}
	return m.data, nil
}

func (m *memStore) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.err != nil {
		return m.err
	}
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *memStore) counter(t *testing.T) models.QuotaCounter {
	m.mu.Lock()
	defer m.mu.Unlock()
	var c models.QuotaCounter
	require.NoError(t, json.Unmarshal(m.data, &c))
	return c
}

type GuardTestSuite struct {
	suite.Suite
	clock *clock.Mock
	store *memStore
	ctx   context.Context
}

func (s *GuardTestSuite) SetupTest() {
	s.clock = clock.NewMock()
	s.clock.Set(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.store = &memStore{}
	s.ctx = context.Background()
}

func (s *GuardTestSuite) TestDailyLimitScenario() {
	guard := NewGuard(100, s.store, s.clock, zap.NewNop())

	for i := 0; i < 100; i++ {
		allowed, reason := guard.TryConsume(s.ctx)
		s.Require().True(allowed, "call %d", i+1)
		s.Empty(reason)
	}

	allowed, reason := guard.TryConsume(s.ctx)
	s.False(allowed)
	s.Contains(reason, "100")
	s.Equal(100, guard.Usage(s.ctx).Count)
	s.Equal(models.QuotaCounter{Date: "2025-06-01", Count: 100}, s.store.counter(s.T()))

	// next UTC day
	s.clock.Set(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	allowed, _ = guard.TryConsume(s.ctx)
	s.True(allowed)
	s.Equal(models.QuotaCounter{Date: "2025-06-02", Count: 1}, s.store.counter(s.T()))
}

func (s *GuardTestSuite) TestRefusalDoesNotIncrement() {
	guard := NewGuard(1, s.store, s.clock, zap.NewNop())

	allowed, _ := guard.TryConsume(s.ctx)
	s.True(allowed)
	for i := 0; i < 3; i++ {
		allowed, _ = guard.TryConsume(s.ctx)
		s.False(allowed)
	}
	s.Equal(1, s.store.counter(s.T()).Count)
}

func (s *GuardTestSuite) TestResumesPersistedCounter() {
	s.store.data = []byte(`{"date":"2025-06-01","count":99}`)
	guard := NewGuard(100, s.store, s.clock, zap.NewNop())

	allowed, _ := guard.TryConsume(s.ctx)
	s.True(allowed)
	allowed, _ = guard.TryConsume(s.ctx)
	s.False(allowed)
}

func (s *GuardTestSuite) TestStaleDateResets() {
	s.store.data = []byte(`{"date":"2025-05-31","count":100}`)
	guard := NewGuard(100, s.store, s.clock, zap.NewNop())

	s.Equal(models.QuotaCounter{Date: "2025-06-01", Count: 0}, guard.Usage(s.ctx))
	allowed, _ := guard.TryConsume(s.ctx)
	s.True(allowed)
}

func (s *GuardTestSuite) TestCorruptCounterStartsFromZero() {
	s.store.data = []byte(`not json`)
	guard := NewGuard(2, s.store, s.clock, zap.NewNop())

	allowed, _ := guard.TryConsume(s.ctx)
	s.True(allowed)
	s.Equal(1, guard.Usage(s.ctx).Count)
}

func (s *GuardTestSuite) TestLoadsOnlyOnce() {
	guard := NewGuard(10, s.store, s.clock, zap.NewNop())

	guard.TryConsume(s.ctx)
	guard.TryConsume(s.ctx)
	guard.Usage(s.ctx)

	s.Equal(1, s.store.loads)
}

func (s *GuardTestSuite) TestPersistFailureStillAllows() {
	s.store.err = errors.New("read-only filesystem")
	guard := NewGuard(2, s.store, s.clock, zap.NewNop())

	allowed, _ := guard.TryConsume(s.ctx)
	s.True(allowed)
	allowed, _ = guard.TryConsume(s.ctx)
	s.True(allowed)
	allowed, _ = guard.TryConsume(s.ctx)
	s.False(allowed, "memory stays authoritative")
}

func (s *GuardTestSuite) TestCanceledFirstCallKeepsExhaustedCounter() {
	s.store.data = []byte(`{"date":"2025-06-01","count":3}`)
	guard := NewGuard(3, s.store, s.clock, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	allowed, _ := guard.TryConsume(ctx)
	s.False(allowed)
	allowed, _ = guard.TryConsume(s.ctx)
	s.False(allowed)
	s.Equal(models.QuotaCounter{Date: "2025-06-01", Count: 3}, s.store.counter(s.T()))
}

func (s *GuardTestSuite) TestFailedLoadRefusesAndRetries() {
	s.store.data = []byte(`{"date":"2025-06-01","count":1}`)
	s.store.loadErr = errors.New("i/o timeout")
	guard := NewGuard(3, s.store, s.clock, zap.NewNop())

	allowed, reason := guard.TryConsume(s.ctx)
	s.False(allowed)
	s.Contains(reason, "unavailable")
	s.Equal(`{"date":"2025-06-01","count":1}`, string(s.store.data), "nothing written over the stored count")

	s.store.loadErr = nil
	allowed, _ = guard.TryConsume(s.ctx)
	s.True(allowed)
	s.Equal(models.QuotaCounter{Date: "2025-06-01", Count: 2}, s.store.counter(s.T()))
	s.Equal(2, s.store.loads)
}

func (s *GuardTestSuite) TestZeroLimitRefusesEverything() {
	guard := NewGuard(0, s.store, s.clock, zap.NewNop())

	allowed, reason := guard.TryConsume(s.ctx)
	s.False(allowed)
	s.NotEmpty(reason)
}

func TestGuardTestSuite(t *testing.T) {
	suite.Run(t, new(GuardTestSuite))
}

func TestGuard_ConcurrentCallersNeverExceedLimit(t *testing.T) {
	store := &memStore{}
	guard := NewGuard(25, store, clock.NewMock(), zap.NewNop())

	var granted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := guard.TryConsume(context.Background()); ok {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(25), granted.Load())
	assert.Equal(t, 25, store.counter(t).Count)
}

func TestGuard_SavesAfterEveryIncrement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockSnapshotStore(ctrl)
	mockClock := clock.NewMock()
	mockClock.Set(time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC))

	store.EXPECT().Load(gomock.Any()).Return(nil, models.ErrSnapshotNotFound)
	gomock.InOrder(
		store.EXPECT().Save(gomock.Any(), []byte(`{"date":"2025-01-01","count":1}`)).Return(nil),
		store.EXPECT().Save(gomock.Any(), []byte(`{"date":"2025-01-01","count":2}`)).Return(nil),
	)

	guard := NewGuard(5, store, mockClock, zap.NewNop())
	guard.TryConsume(context.Background())
	guard.TryConsume(context.Background())
}

func TestGuard_CanceledContextStillPersists(t *testing.T) {
	store := &memStore{data: []byte(`{"date":"1970-01-01","count":0}`)}
	guard := NewGuard(5, store, clock.NewMock(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	allowed, _ := guard.TryConsume(ctx)
	assert.True(t, allowed)
	assert.Equal(t, 1, store.counter(t).Count)
}
