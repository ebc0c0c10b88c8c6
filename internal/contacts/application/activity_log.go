package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/eventbus"
)

// ActivityLog consumes register events from the in-process bus and writes
// them to the log. It keeps a count per routing key.
type ActivityLog struct {
	logger *slog.Logger

	mu     sync.Mutex
	counts map[string]int
}

// NewActivityLog creates an ActivityLog.
func NewActivityLog(logger *slog.Logger) *ActivityLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityLog{
		logger: logger.With("component", "activity_log"),
		counts: make(map[string]int),
	}
}

// EventTypes implements eventbus.EventConsumer.
func (a *ActivityLog) EventTypes() []string {
	return []string{
		domain.RoutingKeyContactAdded,
		domain.RoutingKeyMeetingScheduled,
		domain.RoutingKeyMeetingRecorded,
		domain.RoutingKeyMeetingNotesAdded,
	}
}

// Handle implements eventbus.EventConsumer.
func (a *ActivityLog) Handle(ctx context.Context, event *eventbus.ConsumedEvent) error {
	a.mu.Lock()
	a.counts[event.RoutingKey]++
	a.mu.Unlock()

	a.logger.InfoContext(ctx, "register changed",
		"routing_key", event.RoutingKey,
		"aggregate_type", event.AggregateType,
		"aggregate_id", event.AggregateID,
		"occurred_at", event.OccurredAt,
	)
	return nil
}

// Count returns how many events with routingKey were seen.
func (a *ActivityLog) Count(routingKey string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[routingKey]
}
