package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRelativeDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"zero", time.Time{}, ""},
		{"seconds ago", now.Add(-30 * time.Second), "Just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
		{"days ago", now.Add(-2 * 24 * time.Hour), "2d ago"},
		{"over a week", now.Add(-10 * 24 * time.Hour), "28/02/2026"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatRelativeDate(tc.at, now))
		})
	}
}

func TestFormatClockTime(t *testing.T) {
	assert.Equal(t, "", FormatClockTime(time.Time{}))
	assert.Equal(t, "09:05", FormatClockTime(time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "In Progress", StatusLabel(TicketStatusInProgress))
	assert.Equal(t, "Awaiting Response", StatusLabel(TicketStatusAwaitingResponse))
	assert.Equal(t, "weird", StatusLabel(TicketStatus("weird")))
}
