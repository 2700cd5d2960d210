// Package notify derives the unread-notification feed from notes that
// arrive while their ticket is not the active selection.
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-widget/internal/domain"
	"github.com/spec-kit/helpdesk-widget/internal/store"
)

// Messages substituted when a note carries no usable text or author.
const (
	fallbackAuthor  = "Support Team"
	fallbackMessage = "Sent an attachment"
	messageLimit    = 50
)

// PulseFunc signals a transient "new notification" cue. Duration and
// presentation are the projector's concern, not the aggregator's.
type PulseFunc func(ticketID string, totalCount int)

// Aggregator maintains per-ticket unread counters and the notification
// feed. Invariant at every return: badge total == sum of counters ==
// number of feed entries.
type Aggregator struct {
	mu        sync.Mutex
	store     *store.Store
	logger    *zap.Logger
	unread    map[string]int
	feed      []domain.Notification
	pulse     PulseFunc
	lastPulse time.Time
}

// NewAggregator creates the aggregator. pulse may be nil.
func NewAggregator(st *store.Store, logger *zap.Logger, pulse PulseFunc) *Aggregator {
	return &Aggregator{
		store:  st,
		logger: logger,
		unread: make(map[string]int),
		pulse:  pulse,
	}
}

// RecordUnread registers a note that arrived for a non-selected ticket:
// bumps the ticket's counter, unshifts a derived feed entry and fires the
// pulse with the recomputed badge total.
func (a *Aggregator) RecordUnread(ticketID string, note domain.Note) {
	a.mu.Lock()
	a.unread[ticketID]++

	n := domain.Notification{
		TicketID:      ticketID,
		TicketNumber:  "Unknown",
		TicketSubject: "Unknown Ticket",
		Author:        fallbackAuthor,
		Message:       fallbackMessage,
		Date:          time.Now().UTC(),
	}
	if t, ok := a.store.Ticket(ticketID); ok {
		n.TicketNumber = t.TicketNumber
		n.TicketSubject = t.Subject
	}
	if note.Author != "" {
		n.Author = note.Author
	}
	if note.Content != "" {
		n.Message = truncate(note.Content, messageLimit)
	}
	a.feed = append([]domain.Notification{n}, a.feed...)
	a.lastPulse = time.Now().UTC()

	total := a.totalLocked()
	pulse := a.pulse
	a.mu.Unlock()

	a.logger.Debug("unread note recorded",
		zap.String("ticket_id", ticketID),
		zap.Int("badge", total))
	if pulse != nil {
		pulse(ticketID, total)
	}
}

// ClearForTicket drops the counter and every feed entry for a ticket;
// called when that ticket becomes the active selection.
func (a *Aggregator) ClearForTicket(ticketID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.unread[ticketID]; !ok {
		return
	}
	delete(a.unread, ticketID)
	kept := a.feed[:0]
	for _, n := range a.feed {
		if n.TicketID != ticketID {
			kept = append(kept, n)
		}
	}
	a.feed = kept
}

// ClearAll resets counters and feed.
func (a *Aggregator) ClearAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.unread = make(map[string]int)
	a.feed = nil
}

// Badge returns the total unread count across all tickets.
func (a *Aggregator) Badge() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.totalLocked()
}

// UnreadFor returns the unread count for one ticket.
func (a *Aggregator) UnreadFor(ticketID string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.unread[ticketID]
}

// Feed returns a copy of the notification feed, newest first.
func (a *Aggregator) Feed() []domain.Notification {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Notification(nil), a.feed...)
}

// LastPulse returns when the pulse last fired; zero when it never has.
func (a *Aggregator) LastPulse() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastPulse
}

func (a *Aggregator) totalLocked() int {
	total := 0
	for _, c := range a.unread {
		total += c
	}
	return total
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
