package domain

// Course is a catalog entry. Courses are created by admin action and never
// mutated or deleted afterwards.
type Course struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Duration    string      `json:"duration"`
	Tier        ProgramTier `json:"tier"`
	Outcomes    []string    `json:"outcomes"`
	Image       string      `json:"image"`
	Price       int         `json:"price"`
}
