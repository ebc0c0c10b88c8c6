package meeting

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
)

// resolveContacts looks up every id. An unknown id fails the same way the
// register does, so the message tells the user to add the contact first.
func resolveContacts(app *cli.App, ids []int) ([]domain.Contact, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one --contact is required")
	}
	found, err := app.Manager.GetContactsByID(ids...)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]domain.Contact, len(found))
	for _, c := range found {
		byID[c.ID()] = c
	}

	contacts := make([]domain.Contact, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, domain.UnknownContactError(id)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func class(m *domain.Meeting, now time.Time) string {
	if m.IsFuture(now) {
		return "future"
	}
	return "past"
}

func participantNames(m *domain.Meeting) string {
	parts := m.Participants()
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, fmt.Sprintf("%s (#%d)", p.Name(), p.ID()))
	}
	return strings.Join(names, ", ")
}

func printMeeting(w io.Writer, m *domain.Meeting, now time.Time) {
	fmt.Fprintf(w, "  Meeting #%d [%s]\n", m.ID(), class(m, now))
	fmt.Fprintf(w, "    When: %s\n", m.Date().Local().Format(time.RFC1123))
	fmt.Fprintf(w, "    With: %s\n", participantNames(m))
	if m.HasNotes() {
		fmt.Fprintf(w, "    Notes: %s\n", m.Notes())
	}
}

func printMeetings(w io.Writer, title string, meetings []*domain.Meeting, now time.Time) {
	if len(meetings) == 0 {
		fmt.Fprintf(w, "No %s.\n", strings.ToLower(title))
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", title, len(meetings))
	for _, m := range meetings {
		printMeeting(w, m, now)
	}
}
