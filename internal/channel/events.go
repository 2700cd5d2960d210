package channel

import (
	"encoding/json"
	"fmt"

	"github.com/spec-kit/helpdesk-widget/internal/domain"
)

// Inbound action tags (host -> widget).
const (
	ActionSetUser                      Action = "setUser"
	ActionSetTickets                   Action = "setTickets"
	ActionAccessDenied                 Action = "accessDenied"
	ActionError                        Action = "error"
	ActionTicketCreated                Action = "ticketCreated"
	ActionNoteAdded                    Action = "noteAdded"
	ActionStatusUpdated                Action = "statusUpdated"
	ActionTicketDeleted                Action = "ticketDeleted"
	ActionProfileSaved                 Action = "profileSaved"
	ActionFileUploaded                 Action = "fileUploaded"
	ActionUploadCancelled              Action = "uploadCancelled"
	ActionUploadError                  Action = "uploadError"
	ActionShowLiveIndicator            Action = "showLiveIndicator"
	ActionSetContractInfo              Action = "setContractInfo"
	ActionSetReferrals                 Action = "setReferrals"
	ActionSetTaskHistory               Action = "setTaskHistory"
	ActionReferralAdded                Action = "referralAdded"
	ActionTicketTypeUpdated            Action = "ticketTypeUpdated"
	ActionProjectValueUpdated          Action = "projectValueUpdated"
	ActionInternalNotesUpdated         Action = "internalNotesUpdated"
	ActionStatusNoteDeleted            Action = "statusNoteDeleted"
	ActionRealtimeNoteAdded            Action = "realtimeNoteAdded"
	ActionRealtimeStatusUpdated        Action = "realtimeStatusUpdated"
	ActionRealtimeTicketCreated        Action = "realtimeTicketCreated"
	ActionRealtimeTicketDeleted        Action = "realtimeTicketDeleted"
	ActionRealtimeInternalNotesUpdated Action = "realtimeInternalNotesUpdated"
)

// Inbound is the closed union of host->widget events. The reconciler
// switches exhaustively over these types.
type Inbound interface {
	InboundAction() Action
}

// SetUser delivers the session identity at startup.
type SetUser struct {
	User       domain.User     `json:"user"`
	IsAdmin    bool            `json:"isAdmin"`
	Profile    *domain.Profile `json:"profile"`
	Domain     string          `json:"domain"`
	HasProfile bool            `json:"hasProfile"`
}

// SetTickets is the full snapshot: tickets plus the admin filter directory.
type SetTickets struct {
	Tickets   []domain.Ticket           `json:"tickets"`
	Users     []domain.DirectoryUser    `json:"users"`
	Companies []domain.DirectoryCompany `json:"companies"`
}

// AccessDenied moves the widget into terminal denied mode.
type AccessDenied struct {
	Message string `json:"message"`
}

// HostError reports a failed host-side operation. No state mutation.
type HostError struct {
	Message string `json:"message"`
}

// TicketCreated acknowledges this session's createTicket command.
type TicketCreated struct {
	Ticket domain.Ticket `json:"ticket"`
}

// NoteAdded acknowledges this session's addNote command.
type NoteAdded struct {
	TicketID string      `json:"ticketId"`
	Note     domain.Note `json:"note"`
}

// StatusUpdated acknowledges a status change.
type StatusUpdated struct {
	TicketID string              `json:"ticketId"`
	Status   domain.TicketStatus `json:"status"`
}

// TicketDeleted acknowledges a deletion.
type TicketDeleted struct {
	TicketID string `json:"ticketId"`
}

// ProfileSaved replaces the session profile.
type ProfileSaved struct {
	Profile domain.Profile `json:"profile"`
}

// FileUploaded fills the pending-attachment slot.
type FileUploaded struct {
	URL      string                `json:"url"`
	FileType domain.AttachmentKind `json:"fileType"`
	Filename string                `json:"filename"`
}

// UploadCancelled clears the pending-attachment slot.
type UploadCancelled struct{}

// UploadError reports a failed upload. The slot is left untouched.
type UploadError struct {
	Message string `json:"message,omitempty"`
}

// ShowLiveIndicator toggles the realtime-connected indicator.
type ShowLiveIndicator struct {
	Show bool `json:"show"`
}

// SetContractInfo replaces the contract snapshot wholesale. A nil contract
// clears it.
type SetContractInfo struct {
	Contract *domain.Contract `json:"contract"`
}

// SetReferrals replaces the referral list.
type SetReferrals struct {
	Referrals []domain.Referral `json:"referrals"`
	Count     int               `json:"count"`
}

// SetTaskHistory replaces the task ledger.
type SetTaskHistory struct {
	TaskHistory []domain.TaskEntry `json:"taskHistory"`
}

// ReferralAdded confirms a referral submission and its task credit.
type ReferralAdded struct {
	TasksAdded float64 `json:"tasksAdded"`
}

// TicketTypeUpdated changes a ticket's type. When the host recomputed task
// accounting it attaches a fresh contract snapshot, replaced wholesale.
type TicketTypeUpdated struct {
	TicketID       string            `json:"ticketId"`
	TicketType     domain.TicketType `json:"ticketType"`
	TaskAdjustment float64           `json:"taskAdjustment,omitempty"`
	Contract       *domain.Contract  `json:"contract,omitempty"`
}

// ProjectValueUpdated is a partial update: fields absent from the payload
// leave the ticket untouched.
type ProjectValueUpdated struct {
	TicketID               string  `json:"ticketId"`
	ProjectValue           float64 `json:"projectValue"`
	PurchaseOrderReceived  *bool   `json:"purchaseOrderReceived,omitempty"`
	OpportunityCategory    *string `json:"opportunityCategory,omitempty"`
	OpportunityCategoryHex string  `json:"opportunityCategoryColour,omitempty"`
}

// InternalNotesUpdated replaces a ticket's status-note blob wholesale.
type InternalNotesUpdated struct {
	TicketID      string          `json:"ticketId"`
	InternalNotes json.RawMessage `json:"internalNotes"`
}

// StatusNoteDeleted also replaces the blob wholesale: the host expresses
// deletion by sending the surviving collection.
type StatusNoteDeleted struct {
	TicketID      string          `json:"ticketId"`
	InternalNotes json.RawMessage `json:"internalNotes"`
}

// RealtimeNoteAdded is a note pushed from another session. Unlike NoteAdded
// it is de-duplicated by note id, because the same note may also arrive as
// this session's own ack.
type RealtimeNoteAdded struct {
	TicketID string      `json:"ticketId"`
	Note     domain.Note `json:"note"`
}

// RealtimeStatusUpdated is a status change pushed from another session.
type RealtimeStatusUpdated struct {
	TicketID string              `json:"ticketId"`
	Status   domain.TicketStatus `json:"status"`
}

// RealtimeTicketCreated is a ticket created by another session; inserted
// only if the id is not already present.
type RealtimeTicketCreated struct {
	Ticket domain.Ticket `json:"ticket"`
}

// RealtimeTicketDeleted is a deletion pushed from another session.
type RealtimeTicketDeleted struct {
	TicketID string `json:"ticketId"`
}

// RealtimeInternalNotesUpdated is a wholesale status-note replacement
// pushed from another session.
type RealtimeInternalNotesUpdated struct {
	TicketID      string          `json:"ticketId"`
	InternalNotes json.RawMessage `json:"internalNotes"`
}

func (SetUser) InboundAction() Action                      { return ActionSetUser }
func (SetTickets) InboundAction() Action                   { return ActionSetTickets }
func (AccessDenied) InboundAction() Action                 { return ActionAccessDenied }
func (HostError) InboundAction() Action                    { return ActionError }
func (TicketCreated) InboundAction() Action                { return ActionTicketCreated }
func (NoteAdded) InboundAction() Action                    { return ActionNoteAdded }
func (StatusUpdated) InboundAction() Action                { return ActionStatusUpdated }
func (TicketDeleted) InboundAction() Action                { return ActionTicketDeleted }
func (ProfileSaved) InboundAction() Action                 { return ActionProfileSaved }
func (FileUploaded) InboundAction() Action                 { return ActionFileUploaded }
func (UploadCancelled) InboundAction() Action              { return ActionUploadCancelled }
func (UploadError) InboundAction() Action                  { return ActionUploadError }
func (ShowLiveIndicator) InboundAction() Action            { return ActionShowLiveIndicator }
func (SetContractInfo) InboundAction() Action              { return ActionSetContractInfo }
func (SetReferrals) InboundAction() Action                 { return ActionSetReferrals }
func (SetTaskHistory) InboundAction() Action               { return ActionSetTaskHistory }
func (ReferralAdded) InboundAction() Action                { return ActionReferralAdded }
func (TicketTypeUpdated) InboundAction() Action            { return ActionTicketTypeUpdated }
func (ProjectValueUpdated) InboundAction() Action          { return ActionProjectValueUpdated }
func (InternalNotesUpdated) InboundAction() Action         { return ActionInternalNotesUpdated }
func (StatusNoteDeleted) InboundAction() Action            { return ActionStatusNoteDeleted }
func (RealtimeNoteAdded) InboundAction() Action            { return ActionRealtimeNoteAdded }
func (RealtimeStatusUpdated) InboundAction() Action        { return ActionRealtimeStatusUpdated }
func (RealtimeTicketCreated) InboundAction() Action        { return ActionRealtimeTicketCreated }
func (RealtimeTicketDeleted) InboundAction() Action        { return ActionRealtimeTicketDeleted }
func (RealtimeInternalNotesUpdated) InboundAction() Action { return ActionRealtimeInternalNotesUpdated }

type envelope struct {
	Action Action `json:"action"`
}

// DecodeInbound parses one wire message into its typed event. Messages with
// no action or an unrecognized action return ErrUnknownAction.
func DecodeInbound(data []byte) (Inbound, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("channel: decode envelope: %w", err)
	}

	var (
		ev  Inbound
		err error
	)
	switch env.Action {
	case ActionSetUser:
		ev, err = decodeAs[SetUser](data)
	case ActionSetTickets:
		ev, err = decodeAs[SetTickets](data)
	case ActionAccessDenied:
		ev, err = decodeAs[AccessDenied](data)
	case ActionError:
		ev, err = decodeAs[HostError](data)
	case ActionTicketCreated:
		ev, err = decodeAs[TicketCreated](data)
	case ActionNoteAdded:
		ev, err = decodeAs[NoteAdded](data)
	case ActionStatusUpdated:
		ev, err = decodeAs[StatusUpdated](data)
	case ActionTicketDeleted:
		ev, err = decodeAs[TicketDeleted](data)
	case ActionProfileSaved:
		ev, err = decodeAs[ProfileSaved](data)
	case ActionFileUploaded:
		ev, err = decodeAs[FileUploaded](data)
	case ActionUploadCancelled:
		ev, err = decodeAs[UploadCancelled](data)
	case ActionUploadError:
		ev, err = decodeAs[UploadError](data)
	case ActionShowLiveIndicator:
		ev, err = decodeAs[ShowLiveIndicator](data)
	case ActionSetContractInfo:
		ev, err = decodeAs[SetContractInfo](data)
	case ActionSetReferrals:
		ev, err = decodeAs[SetReferrals](data)
	case ActionSetTaskHistory:
		ev, err = decodeAs[SetTaskHistory](data)
	case ActionReferralAdded:
		ev, err = decodeAs[ReferralAdded](data)
	case ActionTicketTypeUpdated:
		ev, err = decodeAs[TicketTypeUpdated](data)
	case ActionProjectValueUpdated:
		ev, err = decodeAs[ProjectValueUpdated](data)
	case ActionInternalNotesUpdated:
		ev, err = decodeAs[InternalNotesUpdated](data)
	case ActionStatusNoteDeleted:
		ev, err = decodeAs[StatusNoteDeleted](data)
	case ActionRealtimeNoteAdded:
		ev, err = decodeAs[RealtimeNoteAdded](data)
	case ActionRealtimeStatusUpdated:
		ev, err = decodeAs[RealtimeStatusUpdated](data)
	case ActionRealtimeTicketCreated:
		ev, err = decodeAs[RealtimeTicketCreated](data)
	case ActionRealtimeTicketDeleted:
		ev, err = decodeAs[RealtimeTicketDeleted](data)
	case ActionRealtimeInternalNotesUpdated:
		ev, err = decodeAs[RealtimeInternalNotesUpdated](data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Action)
	}
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func decodeAs[T Inbound](data []byte) (Inbound, error) {
	var ev T
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("channel: decode %s: %w", ev.InboundAction(), err)
	}
	return ev, nil
}
