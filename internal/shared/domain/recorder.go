package domain

// EventRecorder buffers domain events until they are published. The zero
// value is ready to use.
type EventRecorder struct {
	domainEvents []DomainEvent
}

// Record appends an event.
func (r *EventRecorder) Record(event DomainEvent) {
	r.domainEvents = append(r.domainEvents, event)
}

// DomainEvents returns the unpublished events in recording order.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(r.domainEvents))
	copy(events, r.domainEvents)
	return events
}

// Len returns the number of unpublished events.
func (r *EventRecorder) Len() int {
	return len(r.domainEvents)
}

// MarkPublished drops the first n events.
func (r *EventRecorder) MarkPublished(n int) {
	if n >= len(r.domainEvents) {
		r.ClearDomainEvents()
		return
	}
	if n > 0 {
		r.domainEvents = append([]DomainEvent(nil), r.domainEvents[n:]...)
	}
}

// ClearDomainEvents removes all unpublished events.
func (r *EventRecorder) ClearDomainEvents() {
	r.domainEvents = nil
}
