package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
)

func sampleSnapshot(t *testing.T) domain.Snapshot {
	t.Helper()
	ada, err := domain.NewContact(4, "Ada", "analytical")
	require.NoError(t, err)
	alan, err := domain.NewContactWithoutNotes(2, "Alan")
	require.NoError(t, err)

	future, err := domain.NewMeeting(7, time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC), []domain.Contact{ada, alan})
	require.NoError(t, err)
	past, err := domain.NewPastMeeting(3, time.Date(2017, 2, 1, 9, 30, 0, 0, time.UTC), []domain.Contact{alan}, "lunch")
	require.NoError(t, err)

	return domain.Snapshot{
		Contacts: []domain.Contact{ada, alan},
		Meetings: []*domain.Meeting{future, past},
	}
}

func TestEncodeDecode_PreservesRecordsAndOrder(t *testing.T) {
	original := sampleSnapshot(t)

	data, err := Encode(original, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	require.Len(t, decoded.Contacts, 2)
	for i := range original.Contacts {
		assert.True(t, original.Contacts[i].Equals(decoded.Contacts[i]), "contact %d", i)
	}

	require.Len(t, decoded.Meetings, 2)
	for i, want := range original.Meetings {
		got := decoded.Meetings[i]
		assert.Equal(t, want.ID(), got.ID())
		assert.True(t, want.Date().Equal(got.Date()))
		assert.Equal(t, want.HasNotes(), got.HasNotes())
		assert.Equal(t, want.Notes(), got.Notes())
		require.Len(t, got.Participants(), len(want.Participants()))
		for j, p := range want.Participants() {
			assert.True(t, p.Equals(got.Participants()[j]))
		}
	}
}

func TestEncode_DocumentShape(t *testing.T) {
	data, err := Encode(sampleSnapshot(t), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, Format, raw["format"])
	assert.EqualValues(t, Version, raw["version"])
	assert.Equal(t, "2024-01-01T00:00:00Z", raw["saved_at"])

	contacts := raw["contacts"].([]any)
	alan := contacts[1].(map[string]any)
	assert.Nil(t, alan["notes"])

	meetings := raw["meetings"].([]any)
	future := meetings[0].(map[string]any)
	assert.Nil(t, future["notes"])
	assert.EqualValues(t, 7, future["id"])
}

func TestEncode_EmptySnapshot(t *testing.T) {
	data, err := Encode(domain.Snapshot{}, time.Now())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"contacts":[]`)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, decoded.Contacts)
	assert.Empty(t, decoded.Meetings)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"unknown format", `{"format":"other","version":1}`, ErrUnknownFormat},
		{"unsupported version", `{"format":"rolodex.snapshot","version":2}`, ErrUnsupportedVersion},
		{
			"duplicate contact",
			`{"format":"rolodex.snapshot","version":1,"contacts":[{"id":1,"name":"a"},{"id":1,"name":"b"}],"meetings":[]}`,
			ErrDuplicateID,
		},
		{
			"duplicate meeting",
			`{"format":"rolodex.snapshot","version":1,"contacts":[],"meetings":[` +
				`{"id":1,"date":"2017-02-01T00:00:00Z","participants":[{"id":1,"name":"a"}]},` +
				`{"id":1,"date":"2017-02-02T00:00:00Z","participants":[{"id":1,"name":"a"}]}]}`,
			ErrDuplicateID,
		},
		{
			"invalid contact",
			`{"format":"rolodex.snapshot","version":1,"contacts":[{"id":0,"name":"a"}],"meetings":[]}`,
			domain.ErrInvalidContactID,
		},
		{
			"meeting without participants",
			`{"format":"rolodex.snapshot","version":1,"contacts":[],"meetings":[{"id":1,"date":"2017-02-01T00:00:00Z","participants":[]}]}`,
			domain.ErrNoParticipants,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.input))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}
