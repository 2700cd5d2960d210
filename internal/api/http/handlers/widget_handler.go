package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-widget/internal/api/dto"
	"github.com/spec-kit/helpdesk-widget/internal/channel"
	"github.com/spec-kit/helpdesk-widget/internal/domain"
	"github.com/spec-kit/helpdesk-widget/internal/engine"
	"github.com/spec-kit/helpdesk-widget/internal/service"
	"github.com/spec-kit/helpdesk-widget/pkg/util"
)

// WidgetHandler serves session, notification, contract and task-history
// projections plus the non-ticket-scoped intents.
type WidgetHandler struct {
	engine  *engine.Engine
	service *service.WidgetService
}

// NewWidgetHandler returns a new handler instance.
func NewWidgetHandler(eng *engine.Engine, svc *service.WidgetService) *WidgetHandler {
	return &WidgetHandler{engine: eng, service: svc}
}

// Session reports the widget session and mode.
func (h *WidgetHandler) Session(c *fiber.Ctx) error {
	st := h.engine.Store()
	sess, ready := st.Session()
	denied, deniedMsg := st.Denied()
	return c.JSON(dto.SessionResponse{
		User:          sess.User,
		IsAdmin:       sess.IsAdmin,
		Domain:        sess.Domain,
		Profile:       sess.Profile,
		HasProfile:    sess.HasProfile,
		Ready:         ready,
		Denied:        denied,
		DeniedMessage: deniedMsg,
		LiveIndicator: st.LiveIndicator(),
	})
}

// Notifications returns the badge and feed.
func (h *WidgetHandler) Notifications(c *fiber.Ctx) error {
	agg := h.engine.Aggregator()
	resp := dto.NotificationsResponse{
		Badge: agg.Badge(),
		Items: agg.Feed(),
	}
	if last := agg.LastPulse(); !last.IsZero() {
		resp.LastPulse = &last
	}
	if resp.Items == nil {
		resp.Items = []domain.Notification{}
	}
	return c.JSON(resp)
}

// ClearNotifications drops every counter and feed entry.
func (h *WidgetHandler) ClearNotifications(c *fiber.Ctx) error {
	h.service.ClearNotifications()
	return c.JSON(fiber.Map{"status": "ok"})
}

// Contract returns the contract snapshot with derived usage.
func (h *WidgetHandler) Contract(c *fiber.Ctx) error {
	contract := h.engine.Store().Contract()
	return c.JSON(dto.ContractResponse{
		Contract:        contract,
		MonthlyUsagePct: contract.MonthlyUsagePct(),
		Exhausted:       contract.Exhausted(),
	})
}

// TaskHistory returns the cached ledger with summary stats.
func (h *WidgetHandler) TaskHistory(c *fiber.Ctx) error {
	entries := h.engine.Store().TaskHistory()
	if entries == nil {
		entries = []domain.TaskEntry{}
	}
	return c.JSON(dto.TaskHistoryResponse{
		Summary: domain.SummarizeTaskHistory(entries),
		Entries: entries,
	})
}

// RefreshTaskHistory asks the host for a fresh ledger; the reply arrives
// asynchronously as a setTaskHistory event.
func (h *WidgetHandler) RefreshTaskHistory(c *fiber.Ctx) error {
	if err := h.service.RequestTaskHistory(c.UserContext()); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "requested"})
}

// Referrals lists submitted referrals.
func (h *WidgetHandler) Referrals(c *fiber.Ctx) error {
	refs, count := h.engine.Store().Referrals()
	if refs == nil {
		refs = []domain.Referral{}
	}
	return c.JSON(dto.ReferralsResponse{Referrals: refs, Count: count})
}

// Directory returns the admin filter sources.
func (h *WidgetHandler) Directory(c *fiber.Ctx) error {
	users, companies := h.engine.Store().Directory()
	if users == nil {
		users = []domain.DirectoryUser{}
	}
	if companies == nil {
		companies = []domain.DirectoryCompany{}
	}
	return c.JSON(dto.DirectoryResponse{Users: users, Companies: companies})
}

// SaveProfile submits the profile intent.
func (h *WidgetHandler) SaveProfile(c *fiber.Ctx) error {
	var req dto.SaveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request body", nil)
	}
	if err := h.service.SaveProfile(c.UserContext(), req.Name, req.CompanyName); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "submitted"})
}

// RequestUpload starts the host upload flow.
func (h *WidgetHandler) RequestUpload(c *fiber.Ctx) error {
	if err := h.service.RequestUpload(c.UserContext()); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "requested"})
}

// PendingAttachment reports the staged attachment, if any.
func (h *WidgetHandler) PendingAttachment(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"attachment": h.engine.Store().PendingAttachment()})
}

// RemovePendingAttachment discards the staged attachment.
func (h *WidgetHandler) RemovePendingAttachment(c *fiber.Ctx) error {
	h.service.RemovePendingAttachment()
	return c.JSON(fiber.Map{"status": "ok"})
}

// Navigate forwards a presentation-only navigation intent.
func (h *WidgetHandler) Navigate(c *fiber.Ctx) error {
	var req dto.NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request body", nil)
	}
	if err := h.service.Navigate(c.UserContext(), channel.Action(req.To), req.Modal); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "submitted"})
}
