// Package application holds the contact register: the ContactManager owns all
// contacts and meetings, assigns ids and answers queries.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
	"github.com/felixgeelhaar/rolodex/internal/contacts/infrastructure/snapshot"
	sharedApplication "github.com/felixgeelhaar/rolodex/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/rolodex/internal/shared/domain"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/rolodex/pkg/observability"
)

// ErrNoStore is returned by Flush when the manager was built without a store.
var ErrNoStore = errors.New("no snapshot store configured")

// Option configures a ContactManager.
type Option func(*ContactManager)

// WithClock sets the source of "now". Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(m *ContactManager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *ContactManager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithPublisher sets where domain events go after a successful Flush.
func WithPublisher(p eventbus.Publisher) Option {
	return func(m *ContactManager) {
		if p != nil {
			m.publisher = p
		}
	}
}

// ContactManager is the register engine. It is not safe for concurrent use.
//
// A meeting is future when its date is strictly after the clock reading of the
// current operation, and past otherwise. Nothing about the classification is
// stored.
type ContactManager struct {
	contacts *orderedMap[domain.Contact]
	meetings *orderedMap[*domain.Meeting]

	store     domain.SnapshotStore
	clock     func() time.Time
	logger    *slog.Logger
	publisher eventbus.Publisher

	events sharedDomain.EventRecorder
}

// NewContactManager creates a manager and restores the last flushed snapshot
// from store. A missing or unreadable snapshot leaves the manager empty.
func NewContactManager(ctx context.Context, store domain.SnapshotStore, opts ...Option) *ContactManager {
	m := &ContactManager{
		contacts: newOrderedMap[domain.Contact](),
		meetings: newOrderedMap[*domain.Meeting](),
		store:    store,
		clock:    time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "contact_manager")
	if m.publisher == nil {
		m.publisher = eventbus.NewNoopPublisher(m.logger)
	}

	m.load(ctx)
	return m
}

func (m *ContactManager) load(ctx context.Context) {
	if m.store == nil {
		return
	}
	log := observability.LogOperation(m.logger, "load")

	data, err := m.store.Load(ctx)
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		log.DebugContext(ctx, "no snapshot found, starting empty")
		return
	}
	if err != nil {
		log.WarnContext(ctx, "failed to read snapshot, starting empty", observability.ErrorKey, err)
		return
	}

	snap, err := snapshot.Decode(data)
	if err != nil {
		log.WarnContext(ctx, "failed to decode snapshot, starting empty", observability.ErrorKey, err)
		return
	}
	if err := m.restore(snap); err != nil {
		log.WarnContext(ctx, "snapshot is inconsistent, starting empty", observability.ErrorKey, err)
		return
	}

	log.InfoContext(ctx, "snapshot loaded",
		"contacts", m.contacts.len(),
		"meetings", m.meetings.len(),
	)
}

// restore replaces the collections with snap, or leaves them untouched when a
// meeting participant is not one of the snapshot's contacts.
func (m *ContactManager) restore(snap domain.Snapshot) error {
	contacts := newOrderedMap[domain.Contact]()
	for _, c := range snap.Contacts {
		contacts.put(c.ID(), c)
	}
	meetings := newOrderedMap[*domain.Meeting]()
	for _, mt := range snap.Meetings {
		for _, p := range mt.Participants() {
			if err := matchRegistered(contacts, p); err != nil {
				return fmt.Errorf("meeting %d: %w", mt.ID(), err)
			}
		}
		meetings.put(mt.ID(), mt)
	}

	m.contacts = contacts
	m.meetings = meetings
	return nil
}

// AddNewContact registers a contact and returns its id.
func (m *ContactManager) AddNewContact(name, notes string) (int, error) {
	if name == "" {
		return 0, domain.ErrEmptyName
	}
	if notes == "" {
		return 0, domain.ErrEmptyNotes
	}

	c, err := domain.NewContact(m.contacts.nextID(), name, notes)
	if err != nil {
		return 0, err
	}
	m.contacts.put(c.ID(), c)
	m.record(domain.NewContactAdded(c, m.clock()))
	return c.ID(), nil
}

// AddFutureMeeting schedules a meeting strictly after now and returns its id.
func (m *ContactManager) AddFutureMeeting(contacts []domain.Contact, date time.Time) (int, error) {
	now := m.clock()

	if contacts == nil {
		return 0, domain.ErrContactsRequired
	}
	if date.IsZero() {
		return 0, domain.ErrDateRequired
	}
	if !date.After(now) {
		return 0, domain.ErrDateNotInFuture
	}
	if len(contacts) == 0 {
		return 0, domain.ErrNoParticipants
	}
	participants, err := m.checkRegistered(contacts)
	if err != nil {
		return 0, err
	}

	meeting, err := domain.NewMeeting(m.meetings.nextID(), date, participants)
	if err != nil {
		return 0, err
	}
	m.meetings.put(meeting.ID(), meeting)
	m.record(domain.NewMeetingScheduled(meeting, now))
	return meeting.ID(), nil
}

// AddNewPastMeeting records a meeting that has already happened, with notes,
// and returns its id. The date may equal now but not be after it.
func (m *ContactManager) AddNewPastMeeting(contacts []domain.Contact, date time.Time, notes string) (int, error) {
	now := m.clock()

	if contacts == nil {
		return 0, domain.ErrContactsRequired
	}
	if date.IsZero() {
		return 0, domain.ErrDateRequired
	}
	if len(contacts) == 0 {
		return 0, domain.ErrNoParticipants
	}
	if date.After(now) {
		return 0, domain.ErrDateInFuture
	}
	participants, err := m.checkRegistered(contacts)
	if err != nil {
		return 0, err
	}

	meeting, err := domain.NewPastMeeting(m.meetings.nextID(), date, participants, notes)
	if err != nil {
		return 0, err
	}
	m.meetings.put(meeting.ID(), meeting)
	m.record(domain.NewMeetingRecorded(meeting, now))
	return meeting.ID(), nil
}

// AddMeetingNotes replaces the notes of a past meeting. The record keeps its id,
// date, participants and position.
func (m *ContactManager) AddMeetingNotes(id int, notes string) (*domain.Meeting, error) {
	now := m.clock()

	meeting, ok := m.meetings.get(id)
	if !ok {
		return nil, domain.MeetingNotFoundError(id)
	}
	if meeting.IsFuture(now) {
		return nil, domain.ErrMeetingInFuture
	}

	updated := meeting.WithNotes(notes)
	m.meetings.put(id, updated)
	m.record(domain.NewMeetingNotesAdded(updated, now))
	return updated, nil
}

// GetMeeting returns the meeting with id regardless of classification, or nil.
func (m *ContactManager) GetMeeting(id int) *domain.Meeting {
	meeting, _ := m.meetings.get(id)
	return meeting
}

// GetFutureMeeting returns the meeting with id, or nil when there is none. It
// fails when the meeting has already taken place.
func (m *ContactManager) GetFutureMeeting(id int) (*domain.Meeting, error) {
	meeting, ok := m.meetings.get(id)
	if !ok {
		return nil, nil
	}
	if meeting.IsPast(m.clock()) {
		return nil, domain.ErrMeetingInPast
	}
	return meeting, nil
}

// GetPastMeeting returns the meeting with id, or nil when there is none. It
// fails when the meeting is still in the future.
func (m *ContactManager) GetPastMeeting(id int) (*domain.Meeting, error) {
	meeting, ok := m.meetings.get(id)
	if !ok {
		return nil, nil
	}
	if meeting.IsFuture(m.clock()) {
		return nil, domain.ErrMeetingInFuture
	}
	return meeting, nil
}

// GetFutureMeetingList returns the future meetings of a registered contact,
// earliest first.
func (m *ContactManager) GetFutureMeetingList(contact domain.Contact) ([]*domain.Meeting, error) {
	if contact.IsZero() {
		return nil, domain.ErrContactRequired
	}
	if !m.contacts.has(contact.ID()) {
		return nil, domain.UnknownContactError(contact.ID())
	}

	now := m.clock()
	list := m.meetings.filter(func(mt *domain.Meeting) bool {
		return mt.IsFuture(now) && mt.HasParticipant(contact.ID())
	})
	domain.SortByDate(list)
	return list, nil
}

// GetPastMeetingListFor returns the past meetings of contact in insertion order.
// Use domain.SortByDate for chronological order.
func (m *ContactManager) GetPastMeetingListFor(contact domain.Contact) ([]*domain.Meeting, error) {
	if contact.IsZero() {
		return nil, domain.ErrContactRequired
	}

	now := m.clock()
	return m.meetings.filter(func(mt *domain.Meeting) bool {
		return mt.IsPast(now) && mt.HasParticipant(contact.ID())
	}), nil
}

// GetMeetingListOn returns the meetings on the calendar day of date, evaluated
// in date's location, in insertion order.
func (m *ContactManager) GetMeetingListOn(date time.Time) ([]*domain.Meeting, error) {
	if date.IsZero() {
		return nil, domain.ErrDateRequired
	}
	return m.meetings.filter(func(mt *domain.Meeting) bool {
		return mt.OccursOn(date)
	}), nil
}

// GetContactsByName returns contacts whose name equals name exactly. An empty
// name matches every contact.
func (m *ContactManager) GetContactsByName(name string) []domain.Contact {
	return m.contacts.filter(func(c domain.Contact) bool {
		return name == "" || c.Name() == name
	})
}

// GetContactsByID returns the registered contacts among ids. Unknown ids are
// skipped. Calling it with no ids at all is an error.
func (m *ContactManager) GetContactsByID(ids ...int) ([]domain.Contact, error) {
	if ids == nil {
		return nil, domain.ErrIDsRequired
	}
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	return m.contacts.filter(func(c domain.Contact) bool {
		_, ok := wanted[c.ID()]
		return ok
	}), nil
}

// Contacts returns every contact in insertion order.
func (m *ContactManager) Contacts() []domain.Contact {
	return m.contacts.all()
}

// Meetings returns every meeting in insertion order.
func (m *ContactManager) Meetings() []*domain.Meeting {
	return m.meetings.all()
}

// Now reads the manager's clock.
func (m *ContactManager) Now() time.Time {
	return m.clock()
}

// Snapshot returns the current state of both collections.
func (m *ContactManager) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Contacts: m.contacts.all(),
		Meetings: m.meetings.all(),
	}
}

// Flush writes the whole register to the store, replacing the previous
// snapshot, then publishes the events recorded since the last Flush.
func (m *ContactManager) Flush(ctx context.Context) error {
	log := observability.LogOperation(m.logger, "flush")
	if m.store == nil {
		return ErrNoStore
	}
	start := time.Now()

	data, err := snapshot.Encode(m.Snapshot(), m.clock())
	if err != nil {
		log.ErrorContext(ctx, "failed to encode snapshot", observability.ErrorKey, err)
		return err
	}
	if err := m.store.Delete(ctx); err != nil {
		log.ErrorContext(ctx, "failed to delete previous snapshot", observability.ErrorKey, err)
		return fmt.Errorf("failed to delete previous snapshot: %w", err)
	}
	if err := m.store.Save(ctx, data); err != nil {
		log.ErrorContext(ctx, "failed to save snapshot", observability.ErrorKey, err)
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	log.InfoContext(ctx, "snapshot flushed",
		"contacts", m.contacts.len(),
		"meetings", m.meetings.len(),
		"bytes", len(data),
		observability.DurationKey, time.Since(start).Milliseconds(),
	)

	m.publishPending(ctx)
	return nil
}

// PendingEvents returns how many recorded events have not been published yet.
func (m *ContactManager) PendingEvents() int {
	return m.events.Len()
}

func (m *ContactManager) record(event sharedDomain.DomainEvent) {
	m.events.Record(event)
}

// publishPending publishes buffered events in order. It stops at the first
// failure and keeps that event and the rest for the next Flush.
func (m *ContactManager) publishPending(ctx context.Context) {
	events := m.events.DomainEvents()
	if len(events) == 0 {
		return
	}
	sharedApplication.ApplyEventMetadata(events,
		sharedApplication.NewEventMetadata(observability.CorrelationIDFromContext(ctx)))

	for i, event := range events {
		if err := eventbus.PublishDomainEvent(ctx, m.publisher, event); err != nil {
			m.logger.WarnContext(ctx, "failed to publish event, will retry on next flush",
				"routing_key", event.RoutingKey(),
				"pending", len(events)-i,
				observability.ErrorKey, err,
			)
			m.events.MarkPublished(i)
			return
		}
	}
	m.events.ClearDomainEvents()
}

// checkRegistered returns the registered records of contacts. Every contact
// must be registered and equal to its record.
func (m *ContactManager) checkRegistered(contacts []domain.Contact) ([]domain.Contact, error) {
	registered := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.IsZero() {
			return nil, domain.ErrContactRequired
		}
		if err := matchRegistered(m.contacts, c); err != nil {
			return nil, err
		}
		record, _ := m.contacts.get(c.ID())
		registered = append(registered, record)
	}
	return registered, nil
}

func matchRegistered(contacts *orderedMap[domain.Contact], c domain.Contact) error {
	record, ok := contacts.get(c.ID())
	if !ok {
		return domain.UnknownContactError(c.ID())
	}
	if !record.Equals(c) {
		return domain.ContactMismatchError(c.ID())
	}
	return nil
}
