package application

import (
	"github.com/google/uuid"

	"github.com/felixgeelhaar/rolodex/internal/shared/domain"
)

type metadataSetter interface {
	SetMetadata(metadata domain.EventMetadata)
}

// NewEventMetadata creates metadata for the events of one operation. An empty
// correlationID gets a fresh one.
func NewEventMetadata(correlationID string) domain.EventMetadata {
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	return domain.EventMetadata{CorrelationID: correlationID}
}

// ApplyEventMetadata sets metadata on the events that support it and do not
// carry a correlation id yet.
func ApplyEventMetadata(events []domain.DomainEvent, metadata domain.EventMetadata) {
	for _, event := range events {
		if event.Metadata().CorrelationID != "" {
			continue
		}
		if setter, ok := event.(metadataSetter); ok {
			setter.SetMetadata(metadata)
		}
	}
}
