package dto

import "github.com/spec-kit/skillcircuit/internal/domain"

// LeadCreateRequest is the public contact-form payload.
type LeadCreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CourseCreateRequest payload for admin catalog additions.
type CourseCreateRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Duration    string             `json:"duration"`
	Tier        domain.ProgramTier `json:"tier"`
	Outcomes    []string           `json:"outcomes"`
	Image       string             `json:"image"`
	Price       int                `json:"price"`
}

// FacultyRequest payload for adding or updating a roster member.
type FacultyRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
}
