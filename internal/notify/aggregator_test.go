package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-widget/internal/domain"
	"github.com/spec-kit/helpdesk-widget/internal/store"
)

func newTestAggregator(t *testing.T, pulse PulseFunc) (*Aggregator, *store.Store) {
	t.Helper()
	st := store.New()
	st.InsertTicket(domain.Ticket{ID: "t1", TicketNumber: "101", Subject: "Login broken"})
	st.InsertTicket(domain.Ticket{ID: "t2", TicketNumber: "102", Subject: "Invoice question"})
	return NewAggregator(st, zap.NewNop(), pulse), st
}

// The badge total, the per-ticket counters and the feed length must agree
// after every mutation.
func checkInvariant(t *testing.T, a *Aggregator, tickets ...string) {
	t.Helper()
	sum := 0
	for _, id := range tickets {
		sum += a.UnreadFor(id)
	}
	assert.Equal(t, sum, a.Badge())
	assert.Equal(t, a.Badge(), len(a.Feed()))
}

func TestRecordUnread_CountersAndFeed(t *testing.T) {
	a, _ := newTestAggregator(t, nil)

	a.RecordUnread("t1", domain.Note{Author: "Sam", Content: "first"})
	a.RecordUnread("t1", domain.Note{Author: "Sam", Content: "second"})
	a.RecordUnread("t2", domain.Note{Author: "Kim", Content: "third"})

	assert.Equal(t, 2, a.UnreadFor("t1"))
	assert.Equal(t, 1, a.UnreadFor("t2"))
	assert.Equal(t, 3, a.Badge())
	checkInvariant(t, a, "t1", "t2")

	// Newest first.
	feed := a.Feed()
	require.Len(t, feed, 3)
	assert.Equal(t, "third", feed[0].Message)
	assert.Equal(t, "Invoice question", feed[0].TicketSubject)
	assert.Equal(t, "first", feed[2].Message)
}

func TestRecordUnread_PulseCarriesBadgeTotal(t *testing.T) {
	var gotTicket string
	var gotTotal int
	calls := 0
	a, _ := newTestAggregator(t, func(ticketID string, totalCount int) {
		calls++
		gotTicket = ticketID
		gotTotal = totalCount
	})

	a.RecordUnread("t1", domain.Note{Author: "Sam", Content: "one"})
	a.RecordUnread("t2", domain.Note{Author: "Sam", Content: "two"})

	assert.Equal(t, 2, calls)
	assert.Equal(t, "t2", gotTicket)
	assert.Equal(t, 2, gotTotal)
	assert.False(t, a.LastPulse().IsZero())
}

func TestRecordUnread_Truncation(t *testing.T) {
	a, _ := newTestAggregator(t, nil)
	long := strings.Repeat("x", 80)

	a.RecordUnread("t1", domain.Note{Author: "Sam", Content: long})

	feed := a.Feed()
	require.Len(t, feed, 1)
	assert.Equal(t, strings.Repeat("x", 50)+"...", feed[0].Message)
}

func TestRecordUnread_Fallbacks(t *testing.T) {
	a, _ := newTestAggregator(t, nil)

	// No author, no content: attachment-only note from the host.
	a.RecordUnread("t1", domain.Note{})
	// Unknown ticket id: feed entry still produced.
	a.RecordUnread("ghost", domain.Note{Author: "Sam", Content: "hello"})

	feed := a.Feed()
	require.Len(t, feed, 2)
	assert.Equal(t, "Sent an attachment", feed[1].Message)
	assert.Equal(t, "Support Team", feed[1].Author)
	assert.Equal(t, "Unknown", feed[0].TicketNumber)
	assert.Equal(t, "Unknown Ticket", feed[0].TicketSubject)
	checkInvariant(t, a, "t1", "ghost")
}

func TestClearForTicket(t *testing.T) {
	a, _ := newTestAggregator(t, nil)
	a.RecordUnread("t1", domain.Note{Author: "Sam", Content: "a"})
	a.RecordUnread("t2", domain.Note{Author: "Sam", Content: "b"})
	a.RecordUnread("t1", domain.Note{Author: "Sam", Content: "c"})

	a.ClearForTicket("t1")

	assert.Equal(t, 0, a.UnreadFor("t1"))
	assert.Equal(t, 1, a.Badge())
	feed := a.Feed()
	require.Len(t, feed, 1)
	assert.Equal(t, "t2", feed[0].TicketID)
	checkInvariant(t, a, "t1", "t2")

	// Clearing a ticket with no unread is a no-op.
	a.ClearForTicket("t1")
	a.ClearForTicket("never-seen")
	assert.Equal(t, 1, a.Badge())
}

func TestClearAll(t *testing.T) {
	a, _ := newTestAggregator(t, nil)
	a.RecordUnread("t1", domain.Note{Author: "Sam", Content: "a"})
	a.RecordUnread("t2", domain.Note{Author: "Sam", Content: "b"})

	a.ClearAll()

	assert.Equal(t, 0, a.Badge())
	assert.Empty(t, a.Feed())
	checkInvariant(t, a, "t1", "t2")
}
