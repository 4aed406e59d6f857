package dto

import (
	"time"

	"github.com/spec-kit/skillcircuit/internal/domain"
)

// LoginRequest payload. Role defaults to student when omitted.
type LoginRequest struct {
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// SignupRequest payload for new students.
type SignupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EnrollRequest payload.
type EnrollRequest struct {
	Tier domain.ProgramTier `json:"tier"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse reports the current session and its derived capabilities.
type SessionResponse struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"is_authenticated"`
	IsAdmin         bool         `json:"is_admin"`
	IsFaculty       bool         `json:"is_faculty"`
	CanAccessLMS    bool         `json:"can_access_lms"`
}
