package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/skillcircuit/internal/api/dto"
	"github.com/spec-kit/skillcircuit/internal/domain"
	"github.com/spec-kit/skillcircuit/internal/events"
	"github.com/spec-kit/skillcircuit/internal/export"
	"github.com/spec-kit/skillcircuit/internal/observability"
	"github.com/spec-kit/skillcircuit/internal/store"
)

// AdminHandler serves the back-office surface: platform overview, catalog
// and roster management, lead review, and the CSV export.
type AdminHandler struct {
	store      *store.Store
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
}

// NewAdminHandler constructs handler.
func NewAdminHandler(st *store.Store, dispatcher events.Dispatcher, metrics *observability.Metrics) *AdminHandler {
	return &AdminHandler{store: st, dispatcher: dispatcher, metrics: metrics}
}

// Overview handles GET /admin/overview.
func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	requests, errors := h.metrics.Totals()

	newLeads := 0
	for _, lead := range snap.Leads {
		if lead.Status == domain.LeadStatusNew {
			newLeads++
		}
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"courses":   len(snap.Courses),
			"faculty":   len(snap.Faculty),
			"leads":     len(snap.Leads),
			"new_leads": newLeads,
			"students":  len(snap.Students),
			"requests":  requests,
			"errors":    errors,
		},
	})
}

// CreateCourse handles POST /admin/courses. Courses have no update or
// delete: catalog entries are immutable once added.
func (h *AdminHandler) CreateCourse(c *fiber.Ctx) error {
	var req dto.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || req.Description == "" {
		return fiber.NewError(http.StatusBadRequest, "title and description required")
	}
	if !req.Tier.Valid() {
		return fiber.NewError(http.StatusBadRequest, "unknown program tier")
	}
	if req.Price < 0 {
		return fiber.NewError(http.StatusBadRequest, "price must be non-negative")
	}

	course := domain.Course{
		ID:          newEntityID("c"),
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Tier:        req.Tier,
		Outcomes:    req.Outcomes,
		Image:       req.Image,
		Price:       req.Price,
	}
	h.store.AddCourse(c.Context(), course)

	h.publish(c, events.EventCourseAdded, events.CourseAddedPayload{
		CourseID: course.ID,
		Title:    course.Title,
		Tier:     course.Tier,
	})

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": course})
}

// ListFaculty handles GET /admin/faculty.
func (h *AdminHandler) ListFaculty(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Faculty()})
}

// CreateFaculty handles POST /admin/faculty.
func (h *AdminHandler) CreateFaculty(c *fiber.Ctx) error {
	var req dto.FacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "name and email required")
	}

	member := domain.FacultyMember{
		ID:         newEntityID("f"),
		Name:       req.Name,
		Email:      req.Email,
		Specialty:  req.Specialty,
		JoinedDate: time.Now().UTC().Format("2006-01-02"),
	}
	h.store.AddFaculty(c.Context(), member)

	h.publish(c, events.EventFacultyAdded, events.FacultyAddedPayload{FacultyID: member.ID, Name: member.Name})

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": member})
}

// UpdateFaculty handles PUT /admin/faculty/:id. Updating an unknown id is a
// no-op on the roster and reported as not found.
func (h *AdminHandler) UpdateFaculty(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.FacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "name and email required")
	}

	existing := h.findFaculty(id)
	if existing == nil {
		return fiber.NewError(http.StatusNotFound, "faculty member not found")
	}

	member := domain.FacultyMember{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		Specialty:  req.Specialty,
		JoinedDate: existing.JoinedDate,
	}
	h.store.UpdateFaculty(c.Context(), member)

	return c.JSON(fiber.Map{"data": member})
}

// DeleteFaculty handles DELETE /admin/faculty/:id.
func (h *AdminHandler) DeleteFaculty(c *fiber.Ctx) error {
	id := c.Params("id")
	if h.findFaculty(id) == nil {
		return fiber.NewError(http.StatusNotFound, "faculty member not found")
	}

	h.store.DeleteFaculty(c.Context(), id)
	h.publish(c, events.EventFacultyRemoved, events.FacultyRemovedPayload{FacultyID: id})

	return c.SendStatus(http.StatusNoContent)
}

// ListLeads handles GET /admin/leads.
func (h *AdminHandler) ListLeads(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Leads()})
}

// ListStudents handles GET /admin/students.
func (h *AdminHandler) ListStudents(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Students()})
}

// Export handles GET /admin/export: the full platform snapshot as a
// spreadsheet-compatible CSV download.
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	now := time.Now()
	document := export.BuildCSV(h.store.Snapshot())

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename(now)))
	return c.Send(document)
}

func (h *AdminHandler) findFaculty(id string) *domain.FacultyMember {
	for _, member := range h.store.Faculty() {
		if member.ID == id {
			return &member
		}
	}
	return nil
}

func (h *AdminHandler) publish(c *fiber.Ctx, eventType events.EventType, payload any) {
	if h.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	if session := h.store.Session(); session.User != nil {
		event.Actor = events.Actor{Email: session.User.Email, Role: session.User.Role}
	}
	_ = h.dispatcher.Publish(c.Context(), event)
}
