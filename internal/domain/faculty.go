package domain

// FacultyMember models an instructor on the platform roster.
type FacultyMember struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Specialty  string `json:"specialty"`
	JoinedDate string `json:"joinedDate"`
}
