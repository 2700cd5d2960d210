package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-widget/internal/domain"
)

// SessionResponse reports who the widget session belongs to and which mode
// the widget is in.
type SessionResponse struct {
	User          domain.User     `json:"user"`
	IsAdmin       bool            `json:"isAdmin"`
	Domain        string          `json:"domain"`
	Profile       *domain.Profile `json:"profile,omitempty"`
	HasProfile    bool            `json:"hasProfile"`
	Ready         bool            `json:"ready"`
	Denied        bool            `json:"denied"`
	DeniedMessage string          `json:"deniedMessage,omitempty"`
	LiveIndicator bool            `json:"liveIndicator"`
}

// TicketSummary is one row of the projected ticket list.
type TicketSummary struct {
	ID                  string                `json:"id"`
	TicketNumber        string                `json:"ticketNumber"`
	DisplayNumber       string                `json:"displayNumber"`
	Subject             string                `json:"subject"`
	Status              domain.TicketStatus   `json:"status"`
	Priority            domain.TicketPriority `json:"priority"`
	TicketType          domain.TicketType     `json:"ticketType"`
	StatusLabel         string                `json:"statusLabel"`
	ProjectValue        float64               `json:"projectValue,omitempty"`
	OpportunityCategory string                `json:"opportunityCategory,omitempty"`
	CreatedDate         time.Time             `json:"createdDate"`
	CreatedAgo          string                `json:"createdAgo"`
	UserDisplayName     string                `json:"userDisplayName"`
	UnreadCount         int                   `json:"unreadCount"`
	Selected            bool                  `json:"selected"`
}

// TicketDetailResponse provides the full projected ticket.
type TicketDetailResponse struct {
	ID                     string                `json:"id"`
	TicketNumber           string                `json:"ticketNumber"`
	DisplayNumber          string                `json:"displayNumber"`
	Subject                string                `json:"subject"`
	Description            string                `json:"description"`
	Status                 domain.TicketStatus   `json:"status"`
	Priority               domain.TicketPriority `json:"priority"`
	TicketType             domain.TicketType     `json:"ticketType"`
	Category               string                `json:"category,omitempty"`
	CustomCategory         string                `json:"customCategory,omitempty"`
	BusinessImpact         string                `json:"businessImpact,omitempty"`
	CreatedDate            time.Time             `json:"createdDate"`
	UserEmail              string                `json:"userEmail"`
	UserDisplayName        string                `json:"userDisplayName"`
	Domain                 string                `json:"domain,omitempty"`
	Notes                  []domain.Note         `json:"notes"`
	StatusNotes            []domain.StatusNote   `json:"statusNotes"`
	ProjectValue           float64               `json:"projectValue,omitempty"`
	PurchaseOrderReceived  bool                  `json:"purchaseOrderReceived"`
	OpportunityCategory    string                `json:"opportunityCategory,omitempty"`
	OpportunityCategoryHex string                `json:"opportunityCategoryColour,omitempty"`
	CompanyReferred        string                `json:"companyReferred,omitempty"`
	ReferralEmail          string                `json:"referralEmail,omitempty"`
	Locked                 bool                  `json:"locked"`
}

// NewTicketSummary projects one ticket row.
func NewTicketSummary(t domain.Ticket, unread int, selected bool) TicketSummary {
	return TicketSummary{
		ID:                  t.ID,
		TicketNumber:        t.TicketNumber,
		DisplayNumber:       domain.FormatTicketNumber(t.TicketNumber),
		Subject:             t.Subject,
		Status:              t.Status,
		Priority:            t.Priority,
		TicketType:          t.Type(),
		StatusLabel:         domain.StatusLabel(t.Status),
		ProjectValue:        t.ProjectValue,
		OpportunityCategory: t.OpportunityCategory,
		CreatedDate:         t.CreatedDate,
		CreatedAgo:          domain.FormatRelativeDate(t.CreatedDate, time.Now()),
		UserDisplayName:     t.DisplayName(),
		UnreadCount:         unread,
		Selected:            selected,
	}
}

// NewTicketDetail projects the full ticket, decoding the status-note blob.
func NewTicketDetail(t domain.Ticket, isAdmin bool) TicketDetailResponse {
	notes := t.Notes
	if notes == nil {
		notes = []domain.Note{}
	}
	statusNotes := domain.DecodeStatusNotes(t.InternalNotes)
	if statusNotes == nil {
		statusNotes = []domain.StatusNote{}
	}
	return TicketDetailResponse{
		ID:                     t.ID,
		TicketNumber:           t.TicketNumber,
		DisplayNumber:          domain.FormatTicketNumber(t.TicketNumber),
		Subject:                t.Subject,
		Description:            t.Description,
		Status:                 t.Status,
		Priority:               t.Priority,
		TicketType:             t.Type(),
		Category:               t.Category,
		CustomCategory:         t.CustomCategory,
		BusinessImpact:         t.BusinessImpact,
		CreatedDate:            t.CreatedDate,
		UserEmail:              t.UserEmail,
		UserDisplayName:        t.DisplayName(),
		Domain:                 t.Domain,
		Notes:                  notes,
		StatusNotes:            statusNotes,
		ProjectValue:           t.ProjectValue,
		PurchaseOrderReceived:  t.PurchaseOrderReceived,
		OpportunityCategory:    t.OpportunityCategory,
		OpportunityCategoryHex: t.OpportunityCategoryHex,
		CompanyReferred:        t.CompanyReferred,
		ReferralEmail:          t.ReferralEmail,
		Locked:                 t.Locked(isAdmin),
	}
}

// NotificationsResponse bundles the badge and the feed.
type NotificationsResponse struct {
	Badge     int                   `json:"badge"`
	Items     []domain.Notification `json:"items"`
	LastPulse *time.Time            `json:"lastPulse,omitempty"`
}

// ContractResponse adds derived usage to the raw contract snapshot.
type ContractResponse struct {
	Contract        *domain.Contract `json:"contract"`
	MonthlyUsagePct float64          `json:"monthlyUsagePct"`
	Exhausted       bool             `json:"exhausted"`
}

// TaskHistoryResponse bundles the ledger with its summary stats.
type TaskHistoryResponse struct {
	Summary domain.TaskHistorySummary `json:"summary"`
	Entries []domain.TaskEntry        `json:"entries"`
}

// ReferralsResponse lists referrals with the host-side count.
type ReferralsResponse struct {
	Referrals []domain.Referral `json:"referrals"`
	Count     int               `json:"count"`
}

// DirectoryResponse provides the admin filter sources.
type DirectoryResponse struct {
	Users     []domain.DirectoryUser    `json:"users"`
	Companies []domain.DirectoryCompany `json:"companies"`
}

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	TicketType      domain.TicketType     `json:"ticketType"`
	Category        string                `json:"category"`
	CustomCategory  string                `json:"customCategory"`
	Subject         string                `json:"subject"`
	Description     string                `json:"description"`
	Priority        domain.TicketPriority `json:"priority"`
	BusinessImpact  string                `json:"businessImpact"`
	CompanyReferred string                `json:"companyReferred"`
	ReferralEmail   string                `json:"referralEmail"`
	ReferralPhone   string                `json:"referralPhone"`
	ReferralComment string                `json:"referralComment"`
}

// AddNoteRequest payload.
type AddNoteRequest struct {
	Content string `json:"content"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// ChangeTypeRequest payload.
type ChangeTypeRequest struct {
	TicketType domain.TicketType `json:"ticketType"`
}

// ProjectValueRequest payload.
type ProjectValueRequest struct {
	Value                 float64 `json:"value"`
	PurchaseOrderReceived bool    `json:"purchaseOrderReceived"`
}

// StatusNoteRequest payload.
type StatusNoteRequest struct {
	Content string `json:"content"`
}

// SaveProfileRequest payload.
type SaveProfileRequest struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
}

// NavigateRequest payload.
type NavigateRequest struct {
	To    string `json:"to"`
	Modal string `json:"modal"`
}
