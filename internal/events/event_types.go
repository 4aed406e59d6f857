package events

import (
	"time"

	"github.com/spec-kit/skillcircuit/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeadCreated     EventType = "lead_created"
	EventStudentSignedUp EventType = "student_signed_up"
	EventStudentEnrolled EventType = "student_enrolled"
	EventCourseAdded     EventType = "course_added"
	EventFacultyAdded    EventType = "faculty_added"
	EventFacultyRemoved  EventType = "faculty_removed"
)

// Actor identifies who triggered an event; empty for anonymous visitors.
type Actor struct {
	Email string          `json:"email,omitempty"`
	Role  domain.UserRole `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LeadCreatedPayload payload.
type LeadCreatedPayload struct {
	LeadID string `json:"lead_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// StudentSignedUpPayload payload.
type StudentSignedUpPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// StudentEnrolledPayload payload.
type StudentEnrolledPayload struct {
	UserID   string             `json:"user_id"`
	CourseID string             `json:"course_id,omitempty"`
	Tier     domain.ProgramTier `json:"tier"`
}

// CourseAddedPayload payload.
type CourseAddedPayload struct {
	CourseID string             `json:"course_id"`
	Title    string             `json:"title"`
	Tier     domain.ProgramTier `json:"tier"`
}

// FacultyAddedPayload payload.
type FacultyAddedPayload struct {
	FacultyID string `json:"faculty_id"`
	Name      string `json:"name"`
}

// FacultyRemovedPayload payload.
type FacultyRemovedPayload struct {
	FacultyID string `json:"faculty_id"`
}
