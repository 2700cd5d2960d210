package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-widget/internal/api/dto"
	"github.com/spec-kit/helpdesk-widget/internal/domain"
	"github.com/spec-kit/helpdesk-widget/internal/engine"
	"github.com/spec-kit/helpdesk-widget/internal/service"
	"github.com/spec-kit/helpdesk-widget/internal/view"
	"github.com/spec-kit/helpdesk-widget/pkg/util"
)

// TicketsHandler serves the projected ticket views and accepts the
// ticket-scoped user intents.
type TicketsHandler struct {
	engine  *engine.Engine
	service *service.WidgetService
}

// NewTicketsHandler returns a new handler instance.
func NewTicketsHandler(eng *engine.Engine, svc *service.WidgetService) *TicketsHandler {
	return &TicketsHandler{engine: eng, service: svc}
}

// List returns the filtered ticket projection, newest first.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	st := h.engine.Store()
	criteria := st.Filter()
	if q := c.Query("search"); q != "" {
		criteria.Search = q
	}

	selected := st.SelectedTicketID()
	agg := h.engine.Aggregator()

	projected := view.Project(st.Tickets(), criteria)
	summaries := make([]dto.TicketSummary, 0, len(projected))
	for _, t := range projected {
		summaries = append(summaries, dto.NewTicketSummary(t, agg.UnreadFor(t.ID), t.ID == selected))
	}
	return c.JSON(fiber.Map{"tickets": summaries})
}

// Get returns one ticket's full projection.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	st := h.engine.Store()
	t, ok := st.Ticket(c.Params("id"))
	if !ok {
		return util.NewNotFound("ticket", map[string]any{"ticketId": c.Params("id")})
	}
	sess, _ := st.Session()
	return c.JSON(dto.NewTicketDetail(t, sess.IsAdmin))
}

// Create submits a new ticket intent.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request body", nil)
	}
	err := h.service.CreateTicket(c.UserContext(), service.CreateTicketInput{
		TicketType:      req.TicketType,
		Category:        req.Category,
		CustomCategory:  req.CustomCategory,
		Subject:         req.Subject,
		Description:     req.Description,
		Priority:        req.Priority,
		BusinessImpact:  req.BusinessImpact,
		CompanyReferred: req.CompanyReferred,
		ReferralEmail:   req.ReferralEmail,
		ReferralPhone:   req.ReferralPhone,
		ReferralComment: req.ReferralComment,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "submitted"})
}

// AddNote submits a conversation message.
func (h *TicketsHandler) AddNote(c *fiber.Ctx) error {
	var req dto.AddNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request body", nil)
	}
	if err := h.service.AddNote(c.UserContext(), c.Params("id"), req.Content); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "submitted"})
}

// UpdateStatus submits a status change.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request body", nil)
	}
	if err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "submitted"})
}

// Delete submits a deletion.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteTicket(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "submitted"})
}

// ChangeType submits a ticket type change.
func (h *TicketsHandler) ChangeType(c *fiber.Ctx) error {
	var req dto.ChangeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request body", nil)
	}
	if err := h.service.ChangeTicketType(c.UserContext(), c.Params("id"), req.TicketType); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "submitted"})
}

// SaveProjectValue submits a project value update.
func (h *TicketsHandler) SaveProjectValue(c *fiber.Ctx) error {
	var req dto.ProjectValueRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request body", nil)
	}
	if err := h.service.SaveProjectValue(c.UserContext(), c.Params("id"), req.Value, req.PurchaseOrderReceived); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "submitted"})
}

// AddStatusNote submits an admin status note.
func (h *TicketsHandler) AddStatusNote(c *fiber.Ctx) error {
	var req dto.StatusNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request body", nil)
	}
	if err := h.service.AddStatusNote(c.UserContext(), c.Params("id"), req.Content); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "submitted"})
}

// DeleteStatusNote submits a status-note deletion.
func (h *TicketsHandler) DeleteStatusNote(c *fiber.Ctx) error {
	if err := h.service.DeleteStatusNote(c.UserContext(), c.Params("id"), c.Params("noteId")); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "submitted"})
}

// Select makes a ticket the active selection and returns its projection.
func (h *TicketsHandler) Select(c *fiber.Ctx) error {
	t, err := h.service.SelectTicket(c.Params("id"))
	if err != nil {
		return err
	}
	sess, _ := h.engine.Store().Session()
	return c.JSON(dto.NewTicketDetail(t, sess.IsAdmin))
}

// CloseDetail drops the active selection.
func (h *TicketsHandler) CloseDetail(c *fiber.Ctx) error {
	h.service.CloseDetail()
	return c.JSON(fiber.Map{"status": "ok"})
}

// SetFilter replaces the list filter criteria.
func (h *TicketsHandler) SetFilter(c *fiber.Ctx) error {
	var req domain.FilterCriteria
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request body", nil)
	}
	h.service.SetFilter(req)
	return c.JSON(fiber.Map{"status": "ok"})
}

// Stats returns header-bar counters over the whole ticket set.
func (h *TicketsHandler) Stats(c *fiber.Ctx) error {
	tickets := h.engine.Store().Tickets()
	return c.JSON(fiber.Map{
		"stats":      view.ComputeStats(tickets),
		"typeCounts": view.ComputeTypeCounts(tickets),
	})
}
