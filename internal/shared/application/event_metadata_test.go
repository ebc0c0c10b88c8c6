package application

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/rolodex/internal/shared/domain"
)

func TestNewEventMetadata(t *testing.T) {
	t.Run("keeps the given correlation id", func(t *testing.T) {
		assert.Equal(t, "abc", NewEventMetadata("abc").CorrelationID)
	})

	t.Run("generates a correlation id when empty", func(t *testing.T) {
		first := NewEventMetadata("")
		second := NewEventMetadata("")

		_, err := uuid.Parse(first.CorrelationID)
		assert.NoError(t, err)
		assert.NotEqual(t, first.CorrelationID, second.CorrelationID)
	})
}

type testEvent struct {
	domain.BaseEvent
}

// plainEvent is passed by value, so it has no metadata setter.
type plainEvent struct {
	domain.BaseEvent
}

func TestApplyEventMetadata(t *testing.T) {
	first := &testEvent{BaseEvent: domain.NewBaseEvent("1", "Contact", "contacts.contact.added", time.Now())}
	second := &testEvent{BaseEvent: domain.NewBaseEvent("2", "Contact", "contacts.contact.added", time.Now())}
	plain := plainEvent{BaseEvent: domain.NewBaseEvent("3", "Contact", "contacts.contact.added", time.Now())}

	metadata := NewEventMetadata("corr-1")
	ApplyEventMetadata([]domain.DomainEvent{first, second, plain}, metadata)

	assert.Equal(t, "corr-1", first.Metadata().CorrelationID)
	assert.Equal(t, "corr-1", second.Metadata().CorrelationID)
	assert.Empty(t, plain.Metadata().CorrelationID)
}

func TestApplyEventMetadata_KeepsExistingCorrelationID(t *testing.T) {
	tagged := &testEvent{BaseEvent: domain.NewBaseEvent("1", "Contact", "contacts.contact.added", time.Now())}
	ApplyEventMetadata([]domain.DomainEvent{tagged}, NewEventMetadata("first"))

	fresh := &testEvent{BaseEvent: domain.NewBaseEvent("2", "Contact", "contacts.contact.added", time.Now())}
	ApplyEventMetadata([]domain.DomainEvent{tagged, fresh}, NewEventMetadata("second"))

	assert.Equal(t, "first", tagged.Metadata().CorrelationID)
	assert.Equal(t, "second", fresh.Metadata().CorrelationID)
}
