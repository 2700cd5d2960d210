package domain

// DirectoryUser is a filterable requester, shown to admins only.
type DirectoryUser struct {
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	TicketCount int    `json:"ticketCount"`
}

// DirectoryCompany is a filterable originating company, shown to admins only.
type DirectoryCompany struct {
	Domain      string `json:"domain"`
	CompanyName string `json:"companyName"`
	TicketCount int    `json:"ticketCount"`
}
