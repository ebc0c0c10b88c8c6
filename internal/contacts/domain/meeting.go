package domain

import (
	"slices"
	"time"
)

// Meeting is a dated get-together with one or more contacts. Whether it is a
// future or a past meeting is never stored; it is decided against a clock
// reading with IsFuture and IsPast.
type Meeting struct {
	id           int
	date         time.Time
	participants []Contact
	notes        *string
}

// NewMeeting creates a meeting without notes. It validates shape only and does
// not check that participants are registered; the ContactManager does that.
func NewMeeting(id int, date time.Time, participants []Contact) (*Meeting, error) {
	if id < 1 {
		return nil, ErrInvalidMeetingID
	}
	if date.IsZero() {
		return nil, ErrDateRequired
	}
	if participants == nil {
		return nil, ErrContactsRequired
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	for _, p := range participants {
		if p.IsZero() {
			return nil, ErrContactRequired
		}
	}

	return &Meeting{
		id:           id,
		date:         date,
		participants: uniqueContacts(participants),
	}, nil
}

// NewPastMeeting creates a meeting that carries notes.
func NewPastMeeting(id int, date time.Time, participants []Contact, notes string) (*Meeting, error) {
	m, err := NewMeeting(id, date, participants)
	if err != nil {
		return nil, err
	}
	m.notes = &notes
	return m, nil
}

// RehydrateMeeting recreates a meeting from persisted state.
func RehydrateMeeting(id int, date time.Time, participants []Contact, notes *string) (*Meeting, error) {
	if notes == nil {
		return NewMeeting(id, date, participants)
	}
	return NewPastMeeting(id, date, participants, *notes)
}

// Getters
func (m *Meeting) ID() int         { return m.id }
func (m *Meeting) Date() time.Time { return m.date }

// Participants returns a copy of the participant set.
func (m *Meeting) Participants() []Contact { return slices.Clone(m.participants) }

// Notes returns the meeting notes, or an empty string when none were recorded.
func (m *Meeting) Notes() string {
	if m.notes == nil {
		return ""
	}
	return *m.notes
}

// HasNotes reports whether the record was created or rewritten through the past-meeting path.
func (m *Meeting) HasNotes() bool { return m.notes != nil }

// IsFuture reports whether the meeting is strictly after now.
func (m *Meeting) IsFuture(now time.Time) bool { return m.date.After(now) }

// IsPast reports whether the meeting is at or before now.
func (m *Meeting) IsPast(now time.Time) bool { return !m.IsFuture(now) }

// HasParticipant reports whether the contact with the given id takes part.
func (m *Meeting) HasParticipant(contactID int) bool {
	for _, p := range m.participants {
		if p.ID() == contactID {
			return true
		}
	}
	return false
}

// OccursOn reports whether the meeting falls on the same calendar day as day,
// evaluated in day's location.
func (m *Meeting) OccursOn(day time.Time) bool {
	return startOfDay(m.date.In(day.Location())).Equal(startOfDay(day))
}

// WithNotes returns a copy of the meeting carrying the given notes.
func (m *Meeting) WithNotes(notes string) *Meeting {
	return &Meeting{
		id:           m.id,
		date:         m.date,
		participants: slices.Clone(m.participants),
		notes:        &notes,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func uniqueContacts(contacts []Contact) []Contact {
	seen := make(map[int]struct{}, len(contacts))
	out := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if _, ok := seen[c.ID()]; ok {
			continue
		}
		seen[c.ID()] = struct{}{}
		out = append(out, c)
	}
	return out
}
