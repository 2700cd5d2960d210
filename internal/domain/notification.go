package domain

import "time"

// Notification is an ephemeral feed entry derived from a note that arrived
// while its ticket was not the active selection. Never persisted.
type Notification struct {
	TicketID      string    `json:"ticketId"`
	TicketNumber  string    `json:"ticketNumber"`
	TicketSubject string    `json:"ticketSubject"`
	Author        string    `json:"author"`
	Message       string    `json:"message"`
	Date          time.Time `json:"date"`
}
