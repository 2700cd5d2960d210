package channel

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-widget/internal/domain"
)

// Outbound action tags (widget -> host).
const (
	ActionReady              Action = "ready"
	ActionCreateTicket       Action = "createTicket"
	ActionAddNote            Action = "addNote"
	ActionUpdateStatus       Action = "updateStatus"
	ActionDeleteTicket       Action = "deleteTicket"
	ActionUpdateTicketType   Action = "updateTicketType"
	ActionUpdateProjectValue Action = "updateProjectValue"
	ActionAddStatusNote      Action = "addStatusNote"
	ActionDeleteStatusNote   Action = "deleteStatusNote"
	ActionSaveProfile        Action = "saveProfile"
	ActionRequestUpload      Action = "requestUpload"
	ActionGetTaskHistory     Action = "getTaskHistory"

	// Presentation-only navigation intents; the core carries no state for
	// these, they are forwarded to the host verbatim.
	ActionAccountSettings      Action = "accountSettings"
	ActionLogout               Action = "logout"
	ActionProjectDashboard     Action = "projectDashboard"
	ActionNavigateToFeedback   Action = "navigateToFeedback"
	ActionModalOpened          Action = "modalOpened"
	ActionNotificationReceived Action = "notificationReceived"
)

// Outbound is the closed union of widget->host commands. All sends are
// fire-and-forget; the host answers with inbound events, never a response.
type Outbound interface {
	OutboundAction() Action
}

// Ready announces the widget has initialized and wants its snapshot.
type Ready struct{}

// CreateTicket requests a new ticket. Referral tickets carry the referral
// fields and synthesized subject; the host owns numbering and accounting.
type CreateTicket struct {
	TicketType      domain.TicketType     `json:"ticketType"`
	Category        string                `json:"category"`
	CustomCategory  string                `json:"customCategory,omitempty"`
	Subject         string                `json:"subject"`
	Description     string                `json:"description"`
	Priority        domain.TicketPriority `json:"priority"`
	BusinessImpact  string                `json:"businessImpact"`
	CompanyReferred string                `json:"companyReferred,omitempty"`
	ReferralEmail   string                `json:"referralEmail,omitempty"`
	ReferralPhone   string                `json:"referralPhone,omitempty"`
	ReferralComment string                `json:"referralComment,omitempty"`
}

// AddNote appends a message to a ticket thread.
type AddNote struct {
	TicketID   string             `json:"ticketId"`
	Content    string             `json:"content"`
	Attachment *domain.Attachment `json:"attachment,omitempty"`
}

// UpdateStatus requests a status change.
type UpdateStatus struct {
	TicketID string              `json:"ticketId"`
	Status   domain.TicketStatus `json:"status"`
}

// DeleteTicket requests removal of a ticket.
type DeleteTicket struct {
	TicketID string `json:"ticketId"`
}

// UpdateTicketType requests a type change. PreviousType lets the host
// reverse task adjustments tied to the old type.
type UpdateTicketType struct {
	TicketID     string            `json:"ticketId"`
	TicketType   domain.TicketType `json:"ticketType"`
	PreviousType domain.TicketType `json:"previousType"`
}

// UpdateProjectValue sets a project/referral ticket's value.
type UpdateProjectValue struct {
	TicketID              string  `json:"ticketId"`
	Value                 float64 `json:"value"`
	PurchaseOrderReceived bool    `json:"purchaseOrderReceived"`
}

// AddStatusNote appends an admin status note.
type AddStatusNote struct {
	TicketID string `json:"ticketId"`
	Content  string `json:"content"`
}

// DeleteStatusNote removes one admin status note.
type DeleteStatusNote struct {
	TicketID string `json:"ticketId"`
	NoteID   string `json:"noteId"`
}

// SaveProfile stores the user's display name and company.
type SaveProfile struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
}

// RequestUpload asks the host to open its file picker and upload flow.
type RequestUpload struct{}

// GetTaskHistory asks for the task ledger.
type GetTaskHistory struct{}

// Navigate is any of the presentation-only intents.
type Navigate struct {
	To    Action `json:"-"`
	Modal string `json:"modal,omitempty"`
}

// NotificationReceived informs the host that the unread badge changed.
type NotificationReceived struct {
	TicketID   string `json:"ticketId"`
	TotalCount int    `json:"totalCount"`
}

func (Ready) OutboundAction() Action                { return ActionReady }
func (CreateTicket) OutboundAction() Action         { return ActionCreateTicket }
func (AddNote) OutboundAction() Action              { return ActionAddNote }
func (UpdateStatus) OutboundAction() Action         { return ActionUpdateStatus }
func (DeleteTicket) OutboundAction() Action         { return ActionDeleteTicket }
func (UpdateTicketType) OutboundAction() Action     { return ActionUpdateTicketType }
func (UpdateProjectValue) OutboundAction() Action   { return ActionUpdateProjectValue }
func (AddStatusNote) OutboundAction() Action        { return ActionAddStatusNote }
func (DeleteStatusNote) OutboundAction() Action     { return ActionDeleteStatusNote }
func (SaveProfile) OutboundAction() Action          { return ActionSaveProfile }
func (RequestUpload) OutboundAction() Action        { return ActionRequestUpload }
func (GetTaskHistory) OutboundAction() Action       { return ActionGetTaskHistory }
func (n Navigate) OutboundAction() Action           { return n.To }
func (NotificationReceived) OutboundAction() Action { return ActionNotificationReceived }

// EncodeOutbound wraps a command in its wire envelope. Every envelope gets a
// fresh commandId and timestamp so the host can trace and de-duplicate;
// hosts that do not care ignore the extra fields.
func EncodeOutbound(cmd Outbound) ([]byte, error) {
	body, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("channel: encode %s: %w", cmd.OutboundAction(), err)
	}
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("channel: encode %s: %w", cmd.OutboundAction(), err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	fields["action"] = cmd.OutboundAction()
	fields["commandId"] = uuid.NewString()
	fields["sentAt"] = time.Now().UTC().Format(time.RFC3339)
	return json.Marshal(fields)
}
