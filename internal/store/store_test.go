package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-widget/internal/domain"
)

func TestNew_DefaultFilterMatchesEverything(t *testing.T) {
	s := New()
	f := s.Filter()
	assert.Equal(t, domain.FilterAll, f.Status)
	assert.Equal(t, domain.FilterAll, f.Type)
}

func TestInsertTicket_NewestFirstAndIdempotent(t *testing.T) {
	s := New()
	require.True(t, s.InsertTicket(domain.Ticket{ID: "t1", Subject: "first"}))
	require.True(t, s.InsertTicket(domain.Ticket{ID: "t2", Subject: "second"}))

	// Same id again must not double-insert.
	assert.False(t, s.InsertTicket(domain.Ticket{ID: "t2", Subject: "duplicate"}))

	tickets := s.Tickets()
	require.Len(t, tickets, 2)
	assert.Equal(t, "t2", tickets[0].ID)
	assert.Equal(t, "second", tickets[0].Subject)
	assert.Equal(t, "t1", tickets[1].ID)
}

func TestReplaceTickets_Wholesale(t *testing.T) {
	s := New()
	s.InsertTicket(domain.Ticket{ID: "old"})

	s.ReplaceTickets(
		[]domain.Ticket{{ID: "a"}, {ID: "b"}},
		[]domain.DirectoryUser{{Email: "u@x.co", TicketCount: 2}},
		[]domain.DirectoryCompany{{Domain: "x.co", CompanyName: "X"}},
	)

	tickets := s.Tickets()
	require.Len(t, tickets, 2)
	assert.Equal(t, "a", tickets[0].ID)

	users, companies := s.Directory()
	require.Len(t, users, 1)
	require.Len(t, companies, 1)
	assert.Equal(t, "x.co", companies[0].Domain)
}

func TestUpdateTicket_ReportsFound(t *testing.T) {
	s := New()
	s.InsertTicket(domain.Ticket{ID: "t1", Status: domain.TicketStatusOpen})

	found := s.UpdateTicket("t1", func(tk *domain.Ticket) {
		tk.Status = domain.TicketStatusResolved
	})
	require.True(t, found)

	tk, ok := s.Ticket("t1")
	require.True(t, ok)
	assert.Equal(t, domain.TicketStatusResolved, tk.Status)

	assert.False(t, s.UpdateTicket("missing", func(*domain.Ticket) {}))
}

func TestRemoveTicket_ClearsSelectionOnlyForSelected(t *testing.T) {
	s := New()
	s.InsertTicket(domain.Ticket{ID: "t1"})
	s.InsertTicket(domain.Ticket{ID: "t2"})
	s.Select("t1")

	removed, cleared := s.RemoveTicket("t2")
	assert.True(t, removed)
	assert.False(t, cleared)
	assert.Equal(t, "t1", s.SelectedTicketID())

	removed, cleared = s.RemoveTicket("t1")
	assert.True(t, removed)
	assert.True(t, cleared)
	assert.Empty(t, s.SelectedTicketID())

	removed, cleared = s.RemoveTicket("t1")
	assert.False(t, removed)
	assert.False(t, cleared)
}

func TestTicketsReturnsCopy(t *testing.T) {
	s := New()
	s.InsertTicket(domain.Ticket{ID: "t1", Subject: "original"})

	snapshot := s.Tickets()
	snapshot[0].Subject = "mutated"

	tk, ok := s.Ticket("t1")
	require.True(t, ok)
	assert.Equal(t, "original", tk.Subject)
}

func TestContract_CopyOutSemantics(t *testing.T) {
	s := New()
	assert.Nil(t, s.Contract())

	s.SetContract(&domain.Contract{ContractName: "Gold", AdjustedTasks: 5})
	c := s.Contract()
	require.NotNil(t, c)
	c.AdjustedTasks = 0

	assert.Equal(t, float64(5), s.Contract().AdjustedTasks)

	s.SetContract(nil)
	assert.Nil(t, s.Contract())
}

func TestPendingAttachment_TakeClearsSlot(t *testing.T) {
	s := New()
	assert.Nil(t, s.TakePendingAttachment())

	s.SetPendingAttachment(&domain.Attachment{URL: "u", Filename: "f.png", Type: domain.AttachmentImage})
	require.NotNil(t, s.PendingAttachment())

	taken := s.TakePendingAttachment()
	require.NotNil(t, taken)
	assert.Equal(t, "f.png", taken.Filename)
	assert.Nil(t, s.PendingAttachment())
}

func TestDeny_Latches(t *testing.T) {
	s := New()
	denied, _ := s.Denied()
	require.False(t, denied)

	s.Deny("account suspended")
	denied, msg := s.Denied()
	assert.True(t, denied)
	assert.Equal(t, "account suspended", msg)
}

func TestSetProfile_MarksHasProfile(t *testing.T) {
	s := New()
	s.SetSession(domain.Session{User: domain.User{Email: "a@b.co"}})

	s.SetProfile(domain.Profile{CompanyName: "B Co"})

	sess, ok := s.Session()
	require.True(t, ok)
	assert.True(t, sess.HasProfile)
	require.NotNil(t, sess.Profile)
	assert.Equal(t, "B Co", sess.Profile.CompanyName)
}
