package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
)

// BreakerConfig configures the circuit breaker around a remote store.
type BreakerConfig struct {
	Name             string
	FailureThreshold uint32
	Timeout          time.Duration
	MaxRequests      uint32
}

// DefaultBreakerConfig trips after 5 consecutive failures and retries after 30s.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
		MaxRequests:      1,
	}
}

// BreakerStore guards a snapshot store with a circuit breaker. A missing
// snapshot is a normal answer and does not count as a failure.
type BreakerStore struct {
	inner   domain.SnapshotStore
	breaker *gobreaker.CircuitBreaker[[]byte]
}

// NewBreakerStore wraps inner.
func NewBreakerStore(inner domain.SnapshotStore, cfg BreakerConfig, logger *slog.Logger) *BreakerStore {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrSnapshotNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("snapshot store circuit breaker state changed",
				"store", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &BreakerStore{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// State reports the current breaker state.
func (s *BreakerStore) State() gobreaker.State {
	return s.breaker.State()
}

func (s *BreakerStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.breaker.Execute(func() ([]byte, error) {
		return s.inner.Load(ctx)
	})
	return data, s.wrap(err)
}

func (s *BreakerStore) Save(ctx context.Context, data []byte) error {
	_, err := s.breaker.Execute(func() ([]byte, error) {
		return nil, s.inner.Save(ctx, data)
	})
	return s.wrap(err)
}

func (s *BreakerStore) Delete(ctx context.Context) error {
	_, err := s.breaker.Execute(func() ([]byte, error) {
		return nil, s.inner.Delete(ctx)
	})
	return s.wrap(err)
}

func (s *BreakerStore) wrap(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("snapshot store %s unavailable: %w", s.breaker.Name(), err)
	}
	return err
}
