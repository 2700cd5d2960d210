// Package reconcile applies the unordered inbound event stream to the
// canonical store. Delivery order across the ack/realtime duals is not
// guaranteed, so every transition is an idempotent set or merge wherever
// the same logical fact could arrive twice.
package reconcile

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-widget/internal/channel"
	"github.com/spec-kit/helpdesk-widget/internal/domain"
	"github.com/spec-kit/helpdesk-widget/internal/notify"
	"github.com/spec-kit/helpdesk-widget/internal/store"
)

// Reconciler maps each inbound event to one deterministic state transition.
type Reconciler struct {
	store     *store.Store
	agg       *notify.Aggregator
	projector Projector
	logger    *zap.Logger
}

// NewReconciler constructs the reconciler. projector may be nil.
func NewReconciler(st *store.Store, agg *notify.Aggregator, projector Projector, logger *zap.Logger) *Reconciler {
	if projector == nil {
		projector = NopProjector{}
	}
	return &Reconciler{store: st, agg: agg, projector: projector, logger: logger}
}

// Apply performs the transition for one inbound event. Callers must not
// interleave Apply invocations; the engine serializes them. Once the store
// is in denied mode every further event is dropped.
func (r *Reconciler) Apply(ev channel.Inbound) {
	if denied, _ := r.store.Denied(); denied {
		r.logger.Debug("event dropped in denied mode", zap.String("event", string(ev.InboundAction())))
		return
	}

	switch e := ev.(type) {
	case channel.SetUser:
		r.store.SetSession(domain.Session{
			User:       e.User,
			IsAdmin:    e.IsAdmin,
			Domain:     e.Domain,
			Profile:    e.Profile,
			HasProfile: e.HasProfile,
		})

	case channel.SetTickets:
		r.store.ReplaceTickets(e.Tickets, e.Users, e.Companies)
		r.projector.RefreshTicketList()

	case channel.AccessDenied:
		r.store.Deny(e.Message)
		r.projector.ShowAccessDenied(e.Message)

	case channel.HostError:
		r.projector.ShowNotice(e.Message, true)

	case channel.TicketCreated:
		r.applyTicketCreated(e.Ticket, true)

	case channel.RealtimeTicketCreated:
		r.applyTicketCreated(e.Ticket, false)

	case channel.NoteAdded:
		// Local ack: notes originating from this session's own send path
		// are never redelivered, so no id check is performed.
		found := r.store.UpdateTicket(e.TicketID, func(t *domain.Ticket) {
			t.Notes = append(t.Notes, e.Note)
		})
		if found {
			r.refreshIfSelected(e.TicketID)
		}

	case channel.RealtimeNoteAdded:
		r.applyRealtimeNote(e.TicketID, e.Note)

	case channel.StatusUpdated:
		r.applyStatus(e.TicketID, e.Status)

	case channel.RealtimeStatusUpdated:
		r.applyStatus(e.TicketID, e.Status)

	case channel.TicketDeleted:
		r.applyDeleted(e.TicketID)

	case channel.RealtimeTicketDeleted:
		r.applyDeleted(e.TicketID)

	case channel.ProfileSaved:
		r.store.SetProfile(e.Profile)
		r.projector.ShowNotice("Profile saved", false)

	case channel.FileUploaded:
		r.store.SetPendingAttachment(&domain.Attachment{
			URL:      e.URL,
			Type:     e.FileType,
			Filename: e.Filename,
		})

	case channel.UploadCancelled:
		r.store.SetPendingAttachment(nil)

	case channel.UploadError:
		msg := e.Message
		if msg == "" {
			msg = "Upload failed"
		}
		r.projector.ShowNotice(msg, true)

	case channel.ShowLiveIndicator:
		r.store.SetLiveIndicator(e.Show)

	case channel.SetContractInfo:
		r.store.SetContract(e.Contract)

	case channel.SetReferrals:
		r.store.SetReferrals(e.Referrals, e.Count)

	case channel.SetTaskHistory:
		r.store.SetTaskHistory(e.TaskHistory)

	case channel.ReferralAdded:
		r.projector.ShowNotice(fmt.Sprintf("Referral submitted, +%g tasks added", e.TasksAdded), false)

	case channel.TicketTypeUpdated:
		found := r.store.UpdateTicket(e.TicketID, func(t *domain.Ticket) {
			t.TicketType = e.TicketType
		})
		// The attached contract is an authoritative snapshot; replace it
		// wholesale even when the ticket itself was not found.
		if e.Contract != nil {
			r.store.SetContract(e.Contract)
		}
		if found {
			r.projector.RefreshTicketList()
			r.refreshIfSelected(e.TicketID)
		}

	case channel.ProjectValueUpdated:
		// Partial merge: only fields present in the payload are touched.
		found := r.store.UpdateTicket(e.TicketID, func(t *domain.Ticket) {
			t.ProjectValue = e.ProjectValue
			if e.PurchaseOrderReceived != nil {
				t.PurchaseOrderReceived = *e.PurchaseOrderReceived
			}
			if e.OpportunityCategory != nil {
				t.OpportunityCategory = *e.OpportunityCategory
				t.OpportunityCategoryHex = e.OpportunityCategoryHex
			}
		})
		if found {
			r.projector.RefreshTicketList()
			r.refreshIfSelected(e.TicketID)
		}

	case channel.InternalNotesUpdated:
		r.applyInternalNotes(e.TicketID, e.InternalNotes)

	case channel.StatusNoteDeleted:
		r.applyInternalNotes(e.TicketID, e.InternalNotes)

	case channel.RealtimeInternalNotesUpdated:
		r.applyInternalNotes(e.TicketID, e.InternalNotes)

	default:
		// Unknown tags are filtered at decode; reaching here means the
		// union gained a member without a transition.
		r.logger.Warn("inbound event without transition", zap.String("event", string(ev.InboundAction())))
	}
}

func (r *Reconciler) applyTicketCreated(t domain.Ticket, local bool) {
	inserted := r.store.InsertTicket(t)
	if !inserted {
		return
	}
	r.projector.RefreshTicketList()
	if local {
		// This session created the ticket: select it immediately, as a
		// user expects to land on what they just filed.
		r.store.Select(t.ID)
		r.agg.ClearForTicket(t.ID)
		r.projector.RefreshTicketDetail(t)
		r.projector.ShowNotice("Ticket created", false)
	}
}

func (r *Reconciler) applyRealtimeNote(ticketID string, note domain.Note) {
	duplicate := false
	found := r.store.UpdateTicket(ticketID, func(t *domain.Ticket) {
		// Realtime pushes may duplicate this session's own ack; the note
		// id decides.
		if t.HasNote(note.ID) {
			duplicate = true
			return
		}
		t.Notes = append(t.Notes, note)
	})
	if !found || duplicate {
		return
	}
	if r.store.SelectedTicketID() == ticketID {
		if t, ok := r.store.Ticket(ticketID); ok {
			r.projector.RefreshTicketDetail(t)
		}
	} else {
		r.agg.RecordUnread(ticketID, note)
	}
}

func (r *Reconciler) applyStatus(ticketID string, status domain.TicketStatus) {
	found := r.store.UpdateTicket(ticketID, func(t *domain.Ticket) {
		t.Status = status
	})
	if !found {
		return
	}
	r.projector.RefreshTicketList()
	r.refreshIfSelected(ticketID)
}

func (r *Reconciler) applyDeleted(ticketID string) {
	removed, clearedSelection := r.store.RemoveTicket(ticketID)
	if !removed {
		return
	}
	r.agg.ClearForTicket(ticketID)
	r.projector.RefreshTicketList()
	if clearedSelection {
		r.projector.ClearTicketDetail()
	}
	r.projector.ShowNotice("Ticket deleted", false)
}

func (r *Reconciler) applyInternalNotes(ticketID string, blob []byte) {
	found := r.store.UpdateTicket(ticketID, func(t *domain.Ticket) {
		t.InternalNotes = blob
	})
	if found {
		r.refreshIfSelected(ticketID)
	}
}

func (r *Reconciler) refreshIfSelected(ticketID string) {
	if r.store.SelectedTicketID() != ticketID {
		return
	}
	if t, ok := r.store.Ticket(ticketID); ok {
		r.projector.RefreshTicketDetail(t)
	}
}
