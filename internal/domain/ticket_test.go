package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketType_Defaults(t *testing.T) {
	tk := Ticket{}
	assert.Equal(t, TicketTypeSupport, tk.Type())

	tk.TicketType = TicketTypeReferral
	assert.Equal(t, TicketTypeReferral, tk.Type())
}

func TestTicketLocked(t *testing.T) {
	cases := []struct {
		status  TicketStatus
		isAdmin bool
		want    bool
	}{
		{TicketStatusOpen, false, false},
		{TicketStatusInProgress, false, false},
		{TicketStatusAwaitingResponse, false, false},
		{TicketStatusResolved, false, true},
		{TicketStatusClosed, false, true},
		{TicketStatusResolved, true, false},
		{TicketStatusClosed, true, false},
	}
	for _, tc := range cases {
		tk := Ticket{Status: tc.status}
		assert.Equal(t, tc.want, tk.Locked(tc.isAdmin), "status=%s admin=%v", tc.status, tc.isAdmin)
	}
}

func TestTicketDisplayName(t *testing.T) {
	tk := Ticket{UserEmail: "a@b.co"}
	assert.Equal(t, "a@b.co", tk.DisplayName())

	tk.UserName = "Ana"
	assert.Equal(t, "Ana", tk.DisplayName())
}

func TestHasNote_EmptyIDNeverMatches(t *testing.T) {
	tk := Ticket{Notes: []Note{{Author: "local echo"}, {ID: "n1"}}}

	assert.True(t, tk.HasNote("n1"))
	assert.False(t, tk.HasNote("n2"))
	// Local echoes without ids must not collide with each other.
	assert.False(t, tk.HasNote(""))
}

func TestFormatTicketNumber(t *testing.T) {
	assert.Equal(t, "123-456", FormatTicketNumber("123456"))
	assert.Equal(t, "123", FormatTicketNumber("123"))
	assert.Equal(t, "123-4", FormatTicketNumber("1234"))
	assert.Equal(t, "123-456", FormatTicketNumber("TKT-123456"))
	assert.Equal(t, "", FormatTicketNumber("no digits"))
}

func TestTicketWireFormat(t *testing.T) {
	raw := `{
		"_id": "t1",
		"ticketNumber": "101",
		"subject": "s",
		"description": "d",
		"status": "in-progress",
		"priority": "high",
		"_createdDate": "2026-01-15T09:30:00Z",
		"userEmail": "a@b.co",
		"opportunityCategoryColour": "#ff8800",
		"internalNotes": "[{\"id\":\"sn1\",\"content\":\"x\"}]"
	}`

	var tk Ticket
	require.NoError(t, json.Unmarshal([]byte(raw), &tk))

	assert.Equal(t, "t1", tk.ID)
	assert.Equal(t, TicketStatusInProgress, tk.Status)
	assert.Equal(t, "#ff8800", tk.OpportunityCategoryHex)
	assert.Equal(t, time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC), tk.CreatedDate)

	notes := DecodeStatusNotes(tk.InternalNotes)
	require.Len(t, notes, 1)
	assert.Equal(t, "sn1", notes[0].ID)
}
