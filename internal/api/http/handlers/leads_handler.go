package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/skillcircuit/internal/api/dto"
	"github.com/spec-kit/skillcircuit/internal/events"
	"github.com/spec-kit/skillcircuit/internal/store"
)

// LeadsHandler accepts public contact-form submissions.
type LeadsHandler struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(st *store.Store, dispatcher events.Dispatcher) *LeadsHandler {
	return &LeadsHandler{store: st, dispatcher: dispatcher}
}

// Create handles POST /leads.
func (h *LeadsHandler) Create(c *fiber.Ctx) error {
	var req dto.LeadCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, message required")
	}

	lead := h.store.AddLead(c.Context(), req.Name, req.Email, req.Message)

	if h.dispatcher != nil {
		_ = h.dispatcher.Publish(c.Context(), events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventLeadCreated,
			Timestamp: time.Now(),
			Payload:   events.LeadCreatedPayload{LeadID: lead.ID, Name: lead.Name, Email: lead.Email},
		})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": lead})
}
