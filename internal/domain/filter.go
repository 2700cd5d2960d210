package domain

// FilterAll is the sentinel meaning "no restriction" for status and type
// filters; the remaining criteria use the empty string for the same purpose.
const FilterAll = "all"

// FilterCriteria is pure view state controlling the ticket list projection.
// No criterion involves a host round trip.
type FilterCriteria struct {
	Status        string `json:"status"`
	Type          string `json:"type"`
	Search        string `json:"search"`
	Priority      string `json:"priority"`
	UserEmail     string `json:"userEmail"`
	CompanyDomain string `json:"companyDomain"`
}

// DefaultFilter matches every ticket.
func DefaultFilter() FilterCriteria {
	return FilterCriteria{Status: FilterAll, Type: FilterAll}
}
