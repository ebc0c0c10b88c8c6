// Package calendar exports meetings as iCalendar documents.
package calendar

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
)

const (
	// PropXClass carries the past/future classification at export time.
	PropXClass = "X-ROLODEX-CLASS"

	productID = "-//Rolodex//Contact Manager//EN"
)

// ErrNoMeetings is returned when there is nothing to export.
var ErrNoMeetings = errors.New("no meetings to export")

// Build converts meetings into a calendar with one VEVENT each. now decides the
// classification written to PropXClass and is used as DTSTAMP.
func Build(meetings []*domain.Meeting, now time.Time) (*ical.Calendar, error) {
	if len(meetings) == 0 {
		return nil, ErrNoMeetings
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, m := range meetings {
		cal.Children = append(cal.Children, toEvent(m, now).Component)
	}
	return cal, nil
}

// Export writes meetings to w as an .ics document.
func Export(w io.Writer, meetings []*domain.Meeting, now time.Time) error {
	cal, err := Build(meetings, now)
	if err != nil {
		return err
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

// UID returns the stable iCalendar UID of a meeting.
func UID(meetingID int) string {
	return "meeting-" + strconv.Itoa(meetingID) + "@rolodex"
}

func toEvent(m *domain.Meeting, now time.Time) *ical.Event {
	participants := m.Participants()

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, UID(m.ID()))
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, m.Date().UTC())
	event.Props.SetText(ical.PropSummary, summary(participants))
	if m.HasNotes() {
		event.Props.SetText(ical.PropDescription, m.Notes())
	}

	for _, c := range participants {
		attendee := ical.NewProp(ical.PropAttendee)
		attendee.Value = "urn:rolodex:contact:" + strconv.Itoa(c.ID())
		attendee.Params.Set(ical.ParamCommonName, c.Name())
		event.Props.Add(attendee)
	}

	class := ical.NewProp(PropXClass)
	class.Value = "past"
	if m.IsFuture(now) {
		class.Value = "future"
	}
	event.Props[PropXClass] = []ical.Prop{*class}

	return event
}

func summary(participants []domain.Contact) string {
	names := make([]string, 0, len(participants))
	for _, c := range participants {
		names = append(names, c.Name())
	}
	return "Meeting with " + strings.Join(names, ", ")
}
