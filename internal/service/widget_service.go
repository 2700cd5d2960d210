package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-widget/internal/channel"
	"github.com/spec-kit/helpdesk-widget/internal/domain"
	"github.com/spec-kit/helpdesk-widget/internal/notify"
	"github.com/spec-kit/helpdesk-widget/internal/store"
	"github.com/spec-kit/helpdesk-widget/pkg/util"
)

// WidgetService turns user intents into outbound commands. Validation
// failures are rejected here and never reach the channel; accepted
// commands are fire-and-forget, the host answers with inbound events.
type WidgetService struct {
	store   *store.Store
	adapter channel.Adapter
	agg     *notify.Aggregator
	logger  *zap.Logger
}

// NewWidgetService constructs the service.
func NewWidgetService(st *store.Store, adapter channel.Adapter, agg *notify.Aggregator, logger *zap.Logger) *WidgetService {
	return &WidgetService{store: st, adapter: adapter, agg: agg, logger: logger}
}

// CreateTicketInput describes a ticket creation intent.
type CreateTicketInput struct {
	TicketType      domain.TicketType
	Category        string
	CustomCategory  string
	Subject         string
	Description     string
	Priority        domain.TicketPriority
	BusinessImpact  string
	CompanyReferred string
	ReferralEmail   string
	ReferralPhone   string
	ReferralComment string
}

// CreateTicket validates and submits a new ticket.
func (s *WidgetService) CreateTicket(ctx context.Context, input CreateTicketInput) error {
	if err := s.interactive(); err != nil {
		return err
	}

	ticketType := input.TicketType
	if ticketType == "" {
		ticketType = domain.DefaultTicketType
	}
	subject := strings.TrimSpace(input.Subject)
	description := strings.TrimSpace(input.Description)

	details := map[string]any{}
	if ticketType != domain.TicketTypeReferral {
		if len([]rune(subject)) < 5 {
			details["subject"] = "must be at least 5 characters"
		}
		if len([]rune(description)) < 10 {
			details["description"] = "must be at least 10 characters"
		}
	}

	company := strings.TrimSpace(input.CompanyReferred)
	referralEmail := strings.TrimSpace(input.ReferralEmail)
	if ticketType == domain.TicketTypeReferral {
		if company == "" {
			details["companyReferred"] = "required"
		}
		if referralEmail == "" || !strings.Contains(referralEmail, "@") {
			details["referralEmail"] = "valid email required"
		}
	}
	if len(details) > 0 {
		return util.NewValidationError("please fill in the required fields", details)
	}

	// Monthly task quota is enforced locally for support tickets so the
	// command never reaches the host when it cannot be honored.
	if ticketType == domain.TicketTypeSupport && s.store.Contract().Exhausted() {
		return util.NewQuotaExhausted("all contracted tasks for this period are used")
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	impact := input.BusinessImpact
	if impact == "" {
		impact = "moderate"
	}

	cmd := channel.CreateTicket{
		TicketType:     ticketType,
		Category:       input.Category,
		CustomCategory: strings.TrimSpace(input.CustomCategory),
		Subject:        subject,
		Description:    description,
		Priority:       priority,
		BusinessImpact: impact,
	}
	switch ticketType {
	case domain.TicketTypeReferral:
		cmd.Category = string(ticketType)
		cmd.Subject = "Referral: " + company
		cmd.Description = ""
		cmd.Priority = domain.TicketPriorityMedium
		cmd.BusinessImpact = "none"
		cmd.CompanyReferred = company
		cmd.ReferralEmail = referralEmail
		cmd.ReferralPhone = strings.TrimSpace(input.ReferralPhone)
		cmd.ReferralComment = strings.TrimSpace(input.ReferralComment)
	case domain.TicketTypeSupport:
		if cmd.Category == "" {
			cmd.Category = "general"
		}
	default:
		cmd.Category = string(ticketType)
	}

	return s.send(ctx, cmd)
}

// AddNote submits a conversation message for a ticket, consuming the
// pending attachment if one is staged. Empty content with no attachment is
// rejected.
func (s *WidgetService) AddNote(ctx context.Context, ticketID, content string) error {
	if err := s.interactive(); err != nil {
		return err
	}
	if _, ok := s.store.Ticket(ticketID); !ok {
		return util.NewNotFound("ticket", map[string]any{"ticketId": ticketID})
	}
	content = strings.TrimSpace(content)
	if content == "" && s.store.PendingAttachment() == nil {
		return util.NewValidationError("message is empty", nil)
	}
	attachment := s.store.TakePendingAttachment()
	return s.send(ctx, channel.AddNote{TicketID: ticketID, Content: content, Attachment: attachment})
}

// UpdateStatus requests a ticket status change.
func (s *WidgetService) UpdateStatus(ctx context.Context, ticketID string, status domain.TicketStatus) error {
	if err := s.interactive(); err != nil {
		return err
	}
	switch status {
	case domain.TicketStatusOpen, domain.TicketStatusInProgress, domain.TicketStatusAwaitingResponse,
		domain.TicketStatusResolved, domain.TicketStatusClosed:
	default:
		return util.NewValidationError("unknown status", map[string]any{"status": string(status)})
	}
	return s.send(ctx, channel.UpdateStatus{TicketID: ticketID, Status: status})
}

// DeleteTicket requests removal of a ticket.
func (s *WidgetService) DeleteTicket(ctx context.Context, ticketID string) error {
	if err := s.interactive(); err != nil {
		return err
	}
	return s.send(ctx, channel.DeleteTicket{TicketID: ticketID})
}

// ChangeTicketType requests a type change, carrying the previous type so
// the host can reverse task accounting. Changing to the current type is a
// local no-op.
func (s *WidgetService) ChangeTicketType(ctx context.Context, ticketID string, newType domain.TicketType) error {
	if err := s.interactive(); err != nil {
		return err
	}
	t, ok := s.store.Ticket(ticketID)
	if !ok {
		return util.NewNotFound("ticket", map[string]any{"ticketId": ticketID})
	}
	previous := t.Type()
	if previous == newType {
		return nil
	}
	return s.send(ctx, channel.UpdateTicketType{TicketID: ticketID, TicketType: newType, PreviousType: previous})
}

// SaveProjectValue submits a project/referral ticket's value.
func (s *WidgetService) SaveProjectValue(ctx context.Context, ticketID string, value float64, poReceived bool) error {
	if err := s.interactive(); err != nil {
		return err
	}
	if value < 0 {
		return util.NewValidationError("project value cannot be negative", nil)
	}
	return s.send(ctx, channel.UpdateProjectValue{TicketID: ticketID, Value: value, PurchaseOrderReceived: poReceived})
}

// AddStatusNote submits an admin status note.
func (s *WidgetService) AddStatusNote(ctx context.Context, ticketID, content string) error {
	if err := s.interactive(); err != nil {
		return err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return util.NewValidationError("please enter a note", nil)
	}
	return s.send(ctx, channel.AddStatusNote{TicketID: ticketID, Content: content})
}

// DeleteStatusNote requests deletion of one status note; the host answers
// with the surviving collection.
func (s *WidgetService) DeleteStatusNote(ctx context.Context, ticketID, noteID string) error {
	if err := s.interactive(); err != nil {
		return err
	}
	return s.send(ctx, channel.DeleteStatusNote{TicketID: ticketID, NoteID: noteID})
}

// SaveProfile submits the user's display name and company.
func (s *WidgetService) SaveProfile(ctx context.Context, name, companyName string) error {
	if err := s.interactive(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	companyName = strings.TrimSpace(companyName)
	if name == "" || companyName == "" {
		return util.NewValidationError("please fill in both fields", nil)
	}
	return s.send(ctx, channel.SaveProfile{Name: name, CompanyName: companyName})
}

// RequestUpload asks the host to run its upload flow; the result arrives
// later as a fileUploaded / uploadCancelled / uploadError event.
func (s *WidgetService) RequestUpload(ctx context.Context) error {
	if err := s.interactive(); err != nil {
		return err
	}
	return s.send(ctx, channel.RequestUpload{})
}

// RemovePendingAttachment discards the staged attachment locally.
func (s *WidgetService) RemovePendingAttachment() {
	s.store.SetPendingAttachment(nil)
}

// RequestTaskHistory asks the host for the task ledger.
func (s *WidgetService) RequestTaskHistory(ctx context.Context) error {
	if err := s.interactive(); err != nil {
		return err
	}
	return s.send(ctx, channel.GetTaskHistory{})
}

// SelectTicket makes a ticket the active selection and clears its unread
// notifications.
func (s *WidgetService) SelectTicket(ticketID string) (domain.Ticket, error) {
	if err := s.interactive(); err != nil {
		return domain.Ticket{}, err
	}
	t, ok := s.store.Ticket(ticketID)
	if !ok {
		return domain.Ticket{}, util.NewNotFound("ticket", map[string]any{"ticketId": ticketID})
	}
	s.store.Select(ticketID)
	s.agg.ClearForTicket(ticketID)
	return t, nil
}

// CloseDetail drops the active selection.
func (s *WidgetService) CloseDetail() {
	s.store.ClearSelection()
}

// SetFilter replaces the list filter criteria. Empty status/type collapse
// to the match-everything sentinel.
func (s *WidgetService) SetFilter(f domain.FilterCriteria) {
	if f.Status == "" {
		f.Status = domain.FilterAll
	}
	if f.Type == "" {
		f.Type = domain.FilterAll
	}
	s.store.SetFilter(f)
}

// ClearNotifications empties the notification feed and all counters.
func (s *WidgetService) ClearNotifications() {
	s.agg.ClearAll()
}

// Navigate forwards a presentation-only navigation intent to the host.
func (s *WidgetService) Navigate(ctx context.Context, to channel.Action, modal string) error {
	if err := s.interactive(); err != nil {
		return err
	}
	switch to {
	case channel.ActionAccountSettings, channel.ActionLogout, channel.ActionProjectDashboard,
		channel.ActionNavigateToFeedback, channel.ActionModalOpened:
	default:
		return util.NewValidationError("unknown navigation target", map[string]any{"to": string(to)})
	}
	return s.send(ctx, channel.Navigate{To: to, Modal: modal})
}

// interactive rejects intents once the widget is in terminal denied mode.
func (s *WidgetService) interactive() error {
	if denied, msg := s.store.Denied(); denied {
		return util.NewAccessDenied(msg)
	}
	return nil
}

func (s *WidgetService) send(ctx context.Context, cmd channel.Outbound) error {
	if err := s.adapter.Send(ctx, cmd); err != nil {
		s.logger.Error("outbound command failed",
			zap.String("action", string(cmd.OutboundAction())),
			zap.Error(err))
		return util.NewChannelError(err)
	}
	s.logger.Debug("command sent", zap.String("action", string(cmd.OutboundAction())))
	return nil
}
