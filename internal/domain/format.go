package domain

import (
	"fmt"
	"time"
)

// FormatRelativeDate renders a timestamp the way the list projection shows
// it: "Just now", "5m ago", "3h ago", "2d ago", then a plain date after a
// week. Zero times render empty.
func FormatRelativeDate(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("02/01/2006")
	}
}

// FormatClockTime renders a note timestamp as HH:MM. Zero times render empty.
func FormatClockTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}

// StatusLabel returns the human label for a status.
func StatusLabel(s TicketStatus) string {
	switch s {
	case TicketStatusOpen:
		return "Open"
	case TicketStatusInProgress:
		return "In Progress"
	case TicketStatusAwaitingResponse:
		return "Awaiting Response"
	case TicketStatusResolved:
		return "Resolved"
	case TicketStatusClosed:
		return "Closed"
	default:
		return string(s)
	}
}
