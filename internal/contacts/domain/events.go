package domain

import (
	"strconv"
	"time"

	sharedDomain "github.com/felixgeelhaar/rolodex/internal/shared/domain"
)

const (
	contactAggregateType = "Contact"
	meetingAggregateType = "Meeting"
)

// Routing keys of the register events.
const (
	RoutingKeyContactAdded      = "contacts.contact.added"
	RoutingKeyMeetingScheduled  = "contacts.meeting.scheduled"
	RoutingKeyMeetingRecorded   = "contacts.meeting.recorded"
	RoutingKeyMeetingNotesAdded = "contacts.meeting.notes_added"
)

// ContactAdded is emitted when a contact is registered.
type ContactAdded struct {
	sharedDomain.BaseEvent
	ContactID int    `json:"contact_id"`
	Name      string `json:"name"`
}

// NewContactAdded creates a ContactAdded event.
func NewContactAdded(c Contact, at time.Time) *ContactAdded {
	return &ContactAdded{
		BaseEvent: sharedDomain.NewBaseEvent(strconv.Itoa(c.ID()), contactAggregateType, RoutingKeyContactAdded, at),
		ContactID: c.ID(),
		Name:      c.Name(),
	}
}

// MeetingScheduled is emitted when a future meeting is added.
type MeetingScheduled struct {
	sharedDomain.BaseEvent
	MeetingID  int       `json:"meeting_id"`
	Date       time.Time `json:"date"`
	ContactIDs []int     `json:"contact_ids"`
}

// NewMeetingScheduled creates a MeetingScheduled event.
func NewMeetingScheduled(m *Meeting, at time.Time) *MeetingScheduled {
	return &MeetingScheduled{
		BaseEvent:  sharedDomain.NewBaseEvent(strconv.Itoa(m.ID()), meetingAggregateType, RoutingKeyMeetingScheduled, at),
		MeetingID:  m.ID(),
		Date:       m.Date(),
		ContactIDs: participantIDs(m),
	}
}

// MeetingRecorded is emitted when a meeting that already happened is added.
type MeetingRecorded struct {
	sharedDomain.BaseEvent
	MeetingID  int       `json:"meeting_id"`
	Date       time.Time `json:"date"`
	ContactIDs []int     `json:"contact_ids"`
}

// NewMeetingRecorded creates a MeetingRecorded event.
func NewMeetingRecorded(m *Meeting, at time.Time) *MeetingRecorded {
	return &MeetingRecorded{
		BaseEvent:  sharedDomain.NewBaseEvent(strconv.Itoa(m.ID()), meetingAggregateType, RoutingKeyMeetingRecorded, at),
		MeetingID:  m.ID(),
		Date:       m.Date(),
		ContactIDs: participantIDs(m),
	}
}

// MeetingNotesAdded is emitted when the notes of a past meeting are replaced.
type MeetingNotesAdded struct {
	sharedDomain.BaseEvent
	MeetingID int `json:"meeting_id"`
}

// NewMeetingNotesAdded creates a MeetingNotesAdded event.
func NewMeetingNotesAdded(m *Meeting, at time.Time) *MeetingNotesAdded {
	return &MeetingNotesAdded{
		BaseEvent: sharedDomain.NewBaseEvent(strconv.Itoa(m.ID()), meetingAggregateType, RoutingKeyMeetingNotesAdded, at),
		MeetingID: m.ID(),
	}
}

func participantIDs(m *Meeting) []int {
	ids := make([]int, 0, len(m.participants))
	for _, p := range m.participants {
		ids = append(ids, p.ID())
	}
	return ids
}
