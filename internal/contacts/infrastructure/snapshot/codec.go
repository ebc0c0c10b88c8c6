// Package snapshot encodes and decodes whole-register snapshots as versioned JSON.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
)

const (
	// Format identifies rolodex snapshot documents.
	Format = "rolodex.snapshot"
	// Version is the current encoding version.
	Version = 1
)

var (
	ErrUnknownFormat      = errors.New("snapshot: unknown format")
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	ErrDuplicateID        = errors.New("snapshot: duplicate id")
)

type document struct {
	Format   string       `json:"format"`
	Version  int          `json:"version"`
	SavedAt  time.Time    `json:"saved_at"`
	Contacts []contactDTO `json:"contacts"`
	Meetings []meetingDTO `json:"meetings"`
}

type contactDTO struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Notes *string `json:"notes"`
}

type meetingDTO struct {
	ID           int          `json:"id"`
	Date         time.Time    `json:"date"`
	Participants []contactDTO `json:"participants"`
	Notes        *string      `json:"notes"`
}

// Encode serializes a snapshot. Collection order is kept as given.
func Encode(s domain.Snapshot, savedAt time.Time) ([]byte, error) {
	doc := document{
		Format:   Format,
		Version:  Version,
		SavedAt:  savedAt.UTC(),
		Contacts: make([]contactDTO, 0, len(s.Contacts)),
		Meetings: make([]meetingDTO, 0, len(s.Meetings)),
	}
	for _, c := range s.Contacts {
		doc.Contacts = append(doc.Contacts, toContactDTO(c))
	}
	for _, m := range s.Meetings {
		participants := m.Participants()
		dto := meetingDTO{
			ID:           m.ID(),
			Date:         m.Date(),
			Participants: make([]contactDTO, 0, len(participants)),
		}
		for _, p := range participants {
			dto.Participants = append(dto.Participants, toContactDTO(p))
		}
		if m.HasNotes() {
			notes := m.Notes()
			dto.Notes = &notes
		}
		doc.Meetings = append(doc.Meetings, dto)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot and validates every record.
func Decode(data []byte) (domain.Snapshot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if doc.Format != Format {
		return domain.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownFormat, doc.Format)
	}
	if doc.Version != Version {
		return domain.Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	s := domain.Snapshot{
		Contacts: make([]domain.Contact, 0, len(doc.Contacts)),
		Meetings: make([]*domain.Meeting, 0, len(doc.Meetings)),
	}

	seen := make(map[int]struct{}, len(doc.Contacts))
	for _, dto := range doc.Contacts {
		if _, dup := seen[dto.ID]; dup {
			return domain.Snapshot{}, fmt.Errorf("%w: contact %d", ErrDuplicateID, dto.ID)
		}
		seen[dto.ID] = struct{}{}
		c, err := fromContactDTO(dto)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("contact %d: %w", dto.ID, err)
		}
		s.Contacts = append(s.Contacts, c)
	}

	seen = make(map[int]struct{}, len(doc.Meetings))
	for _, dto := range doc.Meetings {
		if _, dup := seen[dto.ID]; dup {
			return domain.Snapshot{}, fmt.Errorf("%w: meeting %d", ErrDuplicateID, dto.ID)
		}
		seen[dto.ID] = struct{}{}

		participants := make([]domain.Contact, 0, len(dto.Participants))
		for _, p := range dto.Participants {
			c, err := fromContactDTO(p)
			if err != nil {
				return domain.Snapshot{}, fmt.Errorf("meeting %d participant %d: %w", dto.ID, p.ID, err)
			}
			participants = append(participants, c)
		}
		m, err := domain.RehydrateMeeting(dto.ID, dto.Date, participants, dto.Notes)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("meeting %d: %w", dto.ID, err)
		}
		s.Meetings = append(s.Meetings, m)
	}

	return s, nil
}

func toContactDTO(c domain.Contact) contactDTO {
	dto := contactDTO{ID: c.ID(), Name: c.Name()}
	if c.HasNotes() {
		notes := c.Notes()
		dto.Notes = &notes
	}
	return dto
}

func fromContactDTO(dto contactDTO) (domain.Contact, error) {
	return domain.RehydrateContact(dto.ID, dto.Name, dto.Notes)
}
