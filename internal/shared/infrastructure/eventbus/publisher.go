package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/rolodex/internal/shared/domain"
)

// Publisher defines the interface for publishing events to a message broker.
type Publisher interface {
	// Publish sends a message to the event bus.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close closes the publisher connection.
	Close() error
}

// PublishDomainEvent wraps the event in an envelope and publishes it under its routing key.
func PublishDomainEvent(ctx context.Context, p Publisher, event domain.DomainEvent) error {
	payload, err := json.Marshal(domain.NewEnvelope(event))
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.RoutingKey(), err)
	}
	return p.Publish(ctx, event.RoutingKey(), payload)
}
