package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets. Values mirror the
// host's wire strings verbatim; the host is authoritative over them.
type TicketStatus string

const (
	TicketStatusOpen             TicketStatus = "open"
	TicketStatusInProgress       TicketStatus = "in-progress"
	TicketStatusAwaitingResponse TicketStatus = "awaiting-response"
	TicketStatusResolved         TicketStatus = "resolved"
	TicketStatusClosed           TicketStatus = "closed"
)

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketType categorizes what kind of work a ticket represents.
type TicketType string

const (
	TicketTypeSupport  TicketType = "support"
	TicketTypeBug      TicketType = "bug"
	TicketTypeProject  TicketType = "project"
	TicketTypeReferral TicketType = "referral"
)

// DefaultTicketType applies when a ticket carries no type.
const DefaultTicketType = TicketTypeSupport

// Ticket is the aggregate for support requests as delivered by the host.
// ID is the stable identity; TicketNumber is display-only.
type Ticket struct {
	ID                     string          `json:"_id"`
	TicketNumber           string          `json:"ticketNumber"`
	Subject                string          `json:"subject"`
	Description            string          `json:"description"`
	Status                 TicketStatus    `json:"status"`
	Priority               TicketPriority  `json:"priority"`
	TicketType             TicketType      `json:"ticketType,omitempty"`
	Category               string          `json:"category,omitempty"`
	CustomCategory         string          `json:"customCategory,omitempty"`
	BusinessImpact         string          `json:"businessImpact,omitempty"`
	CreatedDate            time.Time       `json:"_createdDate"`
	UserEmail              string          `json:"userEmail"`
	UserName               string          `json:"userName,omitempty"`
	Domain                 string          `json:"domain,omitempty"`
	Notes                  []Note          `json:"notes,omitempty"`
	InternalNotes          json.RawMessage `json:"internalNotes,omitempty"`
	ProjectValue           float64         `json:"projectValue,omitempty"`
	PurchaseOrderReceived  bool            `json:"purchaseOrderReceived,omitempty"`
	OpportunityCategory    string          `json:"opportunityCategory,omitempty"`
	OpportunityCategoryHex string          `json:"opportunityCategoryColour,omitempty"`
	CompanyReferred        string          `json:"companyReferred,omitempty"`
	ReferralEmail          string          `json:"referralEmail,omitempty"`
}

// Type returns the effective ticket type, defaulting when absent.
func (t *Ticket) Type() TicketType {
	if t.TicketType == "" {
		return DefaultTicketType
	}
	return t.TicketType
}

// Locked reports whether the ticket is read-only for the given role:
// resolved/closed tickets cannot be replied to by end users.
func (t *Ticket) Locked(isAdmin bool) bool {
	if isAdmin {
		return false
	}
	return t.Status == TicketStatusResolved || t.Status == TicketStatusClosed
}

// DisplayName returns the requester's name, falling back to email.
func (t *Ticket) DisplayName() string {
	if t.UserName != "" {
		return t.UserName
	}
	return t.UserEmail
}

// HasNote reports whether a note with the given id is already in the
// ticket's note sequence. Notes without an id never match.
func (t *Ticket) HasNote(noteID string) bool {
	if noteID == "" {
		return false
	}
	for _, n := range t.Notes {
		if n.ID == noteID {
			return true
		}
	}
	return false
}

// FormatTicketNumber renders a ticket number for display: digits only,
// grouped as 123-456 when longer than three digits.
func FormatTicketNumber(num string) string {
	var b strings.Builder
	for _, r := range num {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 3 {
		return digits[:3] + "-" + digits[3:]
	}
	return digits
}
