// Package store holds the widget's canonical in-memory state: the single
// mutable root every derived view is computed from. It is owned by whoever
// constructs it and passed explicitly to the reconciler and services; there
// is no package-level state. Nothing here is durable; the full state is
// rebuilt from the host snapshot on every start.
package store

import (
	"sync"

	"github.com/spec-kit/helpdesk-widget/internal/domain"
)

// Store is the canonical widget state. Writers go through the reconciler
// and the widget service; readers take copy-out snapshots. The RWMutex
// exists only because transport and HTTP goroutines touch the same root;
// event application itself is strictly serial.
type Store struct {
	mu sync.RWMutex

	session   domain.Session
	hasUser   bool
	tickets   []domain.Ticket
	users     []domain.DirectoryUser
	companies []domain.DirectoryCompany

	selectedTicketID string
	filter           domain.FilterCriteria

	contract      *domain.Contract
	referrals     []domain.Referral
	referralCount int
	taskHistory   []domain.TaskEntry

	pendingAttachment *domain.Attachment

	denied        bool
	deniedMessage string
	liveIndicator bool
}

// New returns an empty store with the default (match-everything) filter.
func New() *Store {
	return &Store{filter: domain.DefaultFilter()}
}

// SetSession installs the session identity. Set once at startup.
func (s *Store) SetSession(sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = sess
	s.hasUser = true
}

// Session returns the session identity and whether one has been set.
func (s *Store) Session() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.hasUser
}

// SetProfile replaces the session profile wholesale.
func (s *Store) SetProfile(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Profile = &p
	s.session.HasProfile = true
}

// ReplaceTickets installs a full snapshot of tickets and the admin filter
// directory, replacing all three slices wholesale.
func (s *Store) ReplaceTickets(tickets []domain.Ticket, users []domain.DirectoryUser, companies []domain.DirectoryCompany) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = append([]domain.Ticket(nil), tickets...)
	s.users = append([]domain.DirectoryUser(nil), users...)
	s.companies = append([]domain.DirectoryCompany(nil), companies...)
}

// Tickets returns a copy of the ticket list, newest-created-first.
func (s *Store) Tickets() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Ticket(nil), s.tickets...)
}

// Ticket returns a copy of the ticket with the given id.
func (s *Store) Ticket(id string) (domain.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			return s.tickets[i], true
		}
	}
	return domain.Ticket{}, false
}

// InsertTicket puts a ticket at the head of the list (newest first). If a
// ticket with the same id already exists the call is a no-op, so duplicate
// delivery of a creation event is harmless. Reports whether it inserted.
func (s *Store) InsertTicket(t domain.Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == t.ID {
			return false
		}
	}
	s.tickets = append([]domain.Ticket{t}, s.tickets...)
	return true
}

// UpdateTicket applies fn to the ticket with the given id under the write
// lock. Reports whether the ticket was found.
func (s *Store) UpdateTicket(id string, fn func(*domain.Ticket)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			fn(&s.tickets[i])
			return true
		}
	}
	return false
}

// RemoveTicket deletes the ticket by id. Removing an absent id is a no-op.
// When the removed ticket was the active selection the selection is
// cleared; clearedSelection reports that.
func (s *Store) RemoveTicket(id string) (removed, clearedSelection bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tickets[:0]
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			removed = true
			continue
		}
		kept = append(kept, s.tickets[i])
	}
	s.tickets = kept
	if removed && s.selectedTicketID == id {
		s.selectedTicketID = ""
		clearedSelection = true
	}
	return removed, clearedSelection
}

// Directory returns copies of the admin filter sources.
func (s *Store) Directory() ([]domain.DirectoryUser, []domain.DirectoryCompany) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.DirectoryUser(nil), s.users...),
		append([]domain.DirectoryCompany(nil), s.companies...)
}

// Select makes the ticket the active selection.
func (s *Store) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedTicketID = id
}

// ClearSelection drops the active selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedTicketID = ""
}

// SelectedTicketID returns the active selection, empty when none.
func (s *Store) SelectedTicketID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedTicketID
}

// SetFilter replaces the active filter criteria.
func (s *Store) SetFilter(f domain.FilterCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// Filter returns the active filter criteria.
func (s *Store) Filter() domain.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SetContract replaces the contract snapshot wholesale. Nil clears it.
func (s *Store) SetContract(c *domain.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == nil {
		s.contract = nil
		return
	}
	copied := *c
	s.contract = &copied
}

// Contract returns a copy of the contract snapshot, nil when none.
func (s *Store) Contract() *domain.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.contract == nil {
		return nil
	}
	copied := *s.contract
	return &copied
}

// SetReferrals replaces the referral list and count.
func (s *Store) SetReferrals(refs []domain.Referral, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.referrals = append([]domain.Referral(nil), refs...)
	s.referralCount = count
}

// Referrals returns a copy of the referral list and its host-side count.
func (s *Store) Referrals() ([]domain.Referral, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Referral(nil), s.referrals...), s.referralCount
}

// SetTaskHistory replaces the task ledger.
func (s *Store) SetTaskHistory(entries []domain.TaskEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskHistory = append([]domain.TaskEntry(nil), entries...)
}

// TaskHistory returns a copy of the task ledger.
func (s *Store) TaskHistory() []domain.TaskEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.TaskEntry(nil), s.taskHistory...)
}

// SetPendingAttachment fills the single pending-attachment slot, replacing
// any prior occupant. Nil clears the slot.
func (s *Store) SetPendingAttachment(a *domain.Attachment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a == nil {
		s.pendingAttachment = nil
		return
	}
	copied := *a
	s.pendingAttachment = &copied
}

// TakePendingAttachment returns the pending attachment and clears the slot.
func (s *Store) TakePendingAttachment() *domain.Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.pendingAttachment
	s.pendingAttachment = nil
	return a
}

// PendingAttachment returns a copy of the slot, nil when empty.
func (s *Store) PendingAttachment() *domain.Attachment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pendingAttachment == nil {
		return nil
	}
	copied := *s.pendingAttachment
	return &copied
}

// Deny latches the terminal denied mode with the host's message.
func (s *Store) Deny(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.denied = true
	s.deniedMessage = message
}

// Denied reports the denied latch and its message.
func (s *Store) Denied() (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.denied, s.deniedMessage
}

// SetLiveIndicator toggles the realtime-connected flag.
func (s *Store) SetLiveIndicator(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveIndicator = show
}

// LiveIndicator reports the realtime-connected flag.
func (s *Store) LiveIndicator() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.liveIndicator
}
