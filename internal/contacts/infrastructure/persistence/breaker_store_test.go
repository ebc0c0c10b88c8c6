package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyStore fails every call while err is set.
type flakyStore struct {
	*MemoryStore
	err   error
	calls int
}

func (s *flakyStore) Load(ctx context.Context) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.MemoryStore.Load(ctx)
}

func (s *flakyStore) Save(ctx context.Context, data []byte) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return s.MemoryStore.Save(ctx, data)
}

func TestBreakerStore_PassesThrough(t *testing.T) {
	store := NewBreakerStore(NewMemoryStore(), DefaultBreakerConfig("memory"), nil)
	exerciseStore(t, store)
	assert.Equal(t, gobreaker.StateClosed, store.State())
}

func TestBreakerStore_MissingSnapshotDoesNotTrip(t *testing.T) {
	cfg := DefaultBreakerConfig("memory")
	cfg.FailureThreshold = 1
	store := NewBreakerStore(NewMemoryStore(), cfg, nil)

	for range 3 {
		_, err := store.Load(context.Background())
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateClosed, store.State())
}

func TestBreakerStore_TripsAfterThreshold(t *testing.T) {
	ctx := context.Background()
	inner := &flakyStore{MemoryStore: NewMemoryStore(), err: errors.New("connection refused")}
	cfg := BreakerConfig{Name: "redis", FailureThreshold: 2, Timeout: time.Hour}
	store := NewBreakerStore(inner, cfg, nil)

	assert.ErrorIs(t, store.Save(ctx, []byte("a")), inner.err)
	assert.ErrorIs(t, store.Save(ctx, []byte("a")), inner.err)
	assert.Equal(t, gobreaker.StateOpen, store.State())

	err := store.Save(ctx, []byte("a"))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Contains(t, err.Error(), "snapshot store redis unavailable")
	assert.Equal(t, 2, inner.calls, "open breaker must not reach the inner store")
}
