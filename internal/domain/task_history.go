package domain

import "time"

// TaskType labels a task-history entry.
type TaskType string

const (
	TaskTypeSupport  TaskType = "SUPPORT"
	TaskTypeBug      TaskType = "BUG"
	TaskTypeProject  TaskType = "PROJECT"
	TaskTypeReferral TaskType = "REFERRAL"
)

// TaskEntry is one row of the host's task-accounting ledger. Values can be
// fractional and negative (credits).
type TaskEntry struct {
	TaskCreatedDate time.Time `json:"taskCreatedDate"`
	TaskType        TaskType  `json:"taskType"`
	TicketNumber    string    `json:"ticketNumber,omitempty"`
	Description     string    `json:"description,omitempty"`
	TaskValue       float64   `json:"taskValue"`
}

// TaskHistorySummary aggregates a ledger for display.
type TaskHistorySummary struct {
	TotalEntries int     `json:"totalEntries"`
	NetValue     float64 `json:"netValue"`
	Support      int     `json:"support"`
	Bugs         int     `json:"bugs"`
	Projects     int     `json:"projects"`
	Referrals    int     `json:"referrals"`
}

// SummarizeTaskHistory computes the summary stats for a ledger.
func SummarizeTaskHistory(entries []TaskEntry) TaskHistorySummary {
	s := TaskHistorySummary{TotalEntries: len(entries)}
	for _, e := range entries {
		s.NetValue += e.TaskValue
		switch e.TaskType {
		case TaskTypeSupport:
			s.Support++
		case TaskTypeBug:
			s.Bugs++
		case TaskTypeProject:
			s.Projects++
		case TaskTypeReferral:
			s.Referrals++
		}
	}
	return s
}

// Referral is a business referral submitted through the widget.
type Referral struct {
	ID              string    `json:"_id,omitempty"`
	CompanyReferred string    `json:"companyReferred"`
	Email           string    `json:"referralEmail"`
	Phone           string    `json:"referralPhone,omitempty"`
	Comment         string    `json:"referralComment,omitempty"`
	CreatedDate     time.Time `json:"_createdDate,omitempty"`
}
