package domain

// LeadStatus enumerates admissions follow-up states.
type LeadStatus string

const (
	LeadStatusNew      LeadStatus = "new"
	LeadStatusReplied  LeadStatus = "replied"
	LeadStatusArchived LeadStatus = "archived"
)

// Lead is an inbound contact-form submission awaiting admissions follow-up.
// Date carries calendar-day granularity (YYYY-MM-DD).
type Lead struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Message string     `json:"message"`
	Date    string     `json:"date"`
	Status  LeadStatus `json:"status"`
}
