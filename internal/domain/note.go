package domain

import (
	"encoding/json"
	"time"
)

// AttachmentKind indicates how an attachment should be presented.
type AttachmentKind string

const (
	AttachmentImage    AttachmentKind = "image"
	AttachmentVideo    AttachmentKind = "video"
	AttachmentAudio    AttachmentKind = "audio"
	AttachmentDocument AttachmentKind = "document"
)

// Attachment stores metadata for a file attached to a note. The widget never
// touches the bytes; the host owns storage and hands back a URL.
type Attachment struct {
	URL      string         `json:"url"`
	Type     AttachmentKind `json:"type"`
	Filename string         `json:"filename"`
}

// Note is a conversation message in a ticket thread. ID may be absent for
// local echoes; only notes carrying an id participate in de-duplication.
type Note struct {
	ID         string      `json:"id,omitempty"`
	Author     string      `json:"author"`
	Content    string      `json:"content,omitempty"`
	Attachment *Attachment `json:"attachment,omitempty"`
	Date       time.Time   `json:"date"`
}

// StatusNote is an admin-authored progress note, visible to all roles.
type StatusNote struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
}

// DecodeStatusNotes lazily decodes a ticket's internalNotes blob. The host
// transmits the collection either as a JSON array or as a JSON string that
// itself contains the serialized array. Anything undecodable yields nil; a
// bad blob must never take the widget down.
func DecodeStatusNotes(blob json.RawMessage) []StatusNote {
	if len(blob) == 0 {
		return nil
	}
	var notes []StatusNote
	if err := json.Unmarshal(blob, &notes); err == nil {
		return notes
	}
	var inner string
	if err := json.Unmarshal(blob, &inner); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(inner), &notes); err != nil {
		return nil
	}
	return notes
}
