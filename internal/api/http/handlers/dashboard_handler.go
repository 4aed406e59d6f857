package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skillcircuit/internal/domain"
	"github.com/spec-kit/skillcircuit/internal/store"
)

// DashboardHandler serves the learning dashboard for sessions that pass the
// LMS gate.
type DashboardHandler struct {
	store *store.Store
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

// Show handles GET /dashboard. It returns the session user's learning state
// plus the catalog entries for their enrolled tier.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	session := h.store.Session()
	if session.User == nil {
		// Guarded route; the gate should have rejected already.
		return fiber.ErrUnauthorized
	}

	var tierCourses []domain.Course
	for _, course := range h.store.Courses() {
		if course.Tier == session.User.EnrolledProgram {
			tierCourses = append(tierCourses, course)
		}
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user":             session.User,
			"enrolled_program": session.User.EnrolledProgram,
			"progress":         session.User.Progress,
			"hours_learned":    session.User.HoursLearned,
			"courses":          tierCourses,
		},
	})
}
