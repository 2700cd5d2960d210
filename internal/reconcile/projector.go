package reconcile

import "github.com/spec-kit/helpdesk-widget/internal/domain"

// Projector is the rendering side's contract. The reconciler hands it
// plain derived data and never holds any UI state itself. A background
// mutation to a non-selected ticket must never reach RefreshTicketDetail.
type Projector interface {
	// RefreshTicketList signals that the visible list projection is stale.
	RefreshTicketList()
	// RefreshTicketDetail delivers the updated selected ticket.
	RefreshTicketDetail(t domain.Ticket)
	// ClearTicketDetail signals the selection disappeared.
	ClearTicketDetail()
	// ShowNotice surfaces a transient message; error notices also clear
	// any in-flight loading indicator.
	ShowNotice(message string, isError bool)
	// ShowAccessDenied moves the rendering into terminal denied mode.
	ShowAccessDenied(message string)
}

// NopProjector discards every signal. Used when no renderer is attached
// and as an embedding base for partial test doubles.
type NopProjector struct{}

func (NopProjector) RefreshTicketList()                {}
func (NopProjector) RefreshTicketDetail(domain.Ticket) {}
func (NopProjector) ClearTicketDetail()                {}
func (NopProjector) ShowNotice(string, bool)           {}
func (NopProjector) ShowAccessDenied(string)           {}
