package eventbus_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/rolodex/internal/shared/domain"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/eventbus"
)

type testEvent struct {
	domain.BaseEvent
	ContactID int `json:"contact_id"`
}

func newTestEvent(id int) *testEvent {
	return &testEvent{
		BaseEvent: domain.NewBaseEvent(strconv.Itoa(id), "Contact", "contacts.contact.added", time.Now()),
		ContactID: id,
	}
}

func TestInProcessEventBus_PublishDomainEvent(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(testLogger())
	consumer := &mockConsumer{eventTypes: []string{"contacts.contact.added"}}
	bus.RegisterConsumer(consumer)

	event := newTestEvent(42)
	require.NoError(t, eventbus.PublishDomainEvent(context.Background(), bus, event))

	require.Len(t, consumer.events, 1)
	got := consumer.events[0]
	assert.Equal(t, event.EventID(), got.EventID)
	assert.Equal(t, "42", got.AggregateID)
	assert.Equal(t, "Contact", got.AggregateType)
	assert.JSONEq(t, `{"contact_id":42}`, string(got.Payload))
}

func TestInProcessEventBus_InvalidPayloadIsSkipped(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(testLogger())
	consumer := &mockConsumer{eventTypes: []string{"contacts.contact.added"}}
	bus.RegisterConsumer(consumer)

	err := bus.Publish(context.Background(), "contacts.contact.added", []byte("{not json"))

	require.NoError(t, err)
	assert.Empty(t, consumer.events)
}

func TestInProcessEventBus_RoutingKeyFallback(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(testLogger())
	consumer := &mockConsumer{eventTypes: []string{"contacts.meeting.scheduled"}}
	bus.RegisterConsumer(consumer)

	err := bus.Publish(context.Background(), "contacts.meeting.scheduled", []byte(`{"aggregate_id":"1"}`))

	require.NoError(t, err)
	require.Len(t, consumer.events, 1)
	assert.Equal(t, "contacts.meeting.scheduled", consumer.events[0].RoutingKey)
}

func TestInProcessEventBus_ConsumerErrorIsNotReturned(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(testLogger())
	bus.RegisterConsumer(&mockConsumer{
		eventTypes: []string{"contacts.contact.added"},
		err:        errors.New("boom"),
	})

	assert.NoError(t, eventbus.PublishDomainEvent(context.Background(), bus, newTestEvent(1)))
	assert.Equal(t, 1, bus.Registry().Len())
	assert.NoError(t, bus.Close())
}

func TestNoopPublisher(t *testing.T) {
	p := eventbus.NewNoopPublisher(testLogger())

	assert.NoError(t, eventbus.PublishDomainEvent(context.Background(), p, newTestEvent(1)))
	assert.NoError(t, p.Close())
}
