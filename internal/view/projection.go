// Package view computes derived, read-only projections of the ticket set.
// Everything here is a pure function of its inputs: projections are
// recomputed on demand, never incrementally maintained.
package view

import (
	"strings"

	"github.com/spec-kit/helpdesk-widget/internal/domain"
)

// Project returns the tickets matching every criterion, preserving the
// underlying list order (newest-created-first). Status and type use the
// "all" sentinel; search is a case-insensitive substring match against
// subject OR display ticket number OR description; the remaining criteria
// are exact matches when set.
func Project(tickets []domain.Ticket, criteria domain.FilterCriteria) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tickets))
	for i := range tickets {
		if matches(&tickets[i], criteria) {
			out = append(out, tickets[i])
		}
	}
	return out
}

func matches(t *domain.Ticket, c domain.FilterCriteria) bool {
	if c.Status != "" && c.Status != domain.FilterAll && string(t.Status) != c.Status {
		return false
	}
	if c.Type != "" && c.Type != domain.FilterAll && string(t.Type()) != c.Type {
		return false
	}
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(t.Subject), q) &&
			!strings.Contains(strings.ToLower(t.TicketNumber), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}
	if c.Priority != "" && string(t.Priority) != c.Priority {
		return false
	}
	if c.UserEmail != "" && t.UserEmail != c.UserEmail {
		return false
	}
	if c.CompanyDomain != "" && t.Domain != c.CompanyDomain {
		return false
	}
	return true
}

// Stats summarizes the whole ticket set for the header bar.
type Stats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

// ComputeStats counts tickets per status bucket. Resolved includes closed.
func ComputeStats(tickets []domain.Ticket) Stats {
	s := Stats{Total: len(tickets)}
	for i := range tickets {
		switch tickets[i].Status {
		case domain.TicketStatusOpen:
			s.Open++
		case domain.TicketStatusInProgress:
			s.InProgress++
		case domain.TicketStatusResolved, domain.TicketStatusClosed:
			s.Resolved++
		}
	}
	return s
}

// TypeCounts tallies tickets per effective type for the type tabs.
type TypeCounts struct {
	All      int `json:"all"`
	Support  int `json:"support"`
	Bug      int `json:"bug"`
	Project  int `json:"project"`
	Referral int `json:"referral"`
}

// ComputeTypeCounts counts tickets per effective type, applying the
// default-type rule for untyped tickets.
func ComputeTypeCounts(tickets []domain.Ticket) TypeCounts {
	c := TypeCounts{All: len(tickets)}
	for i := range tickets {
		switch tickets[i].Type() {
		case domain.TicketTypeSupport:
			c.Support++
		case domain.TicketTypeBug:
			c.Bug++
		case domain.TicketTypeProject:
			c.Project++
		case domain.TicketTypeReferral:
			c.Referral++
		}
	}
	return c
}
