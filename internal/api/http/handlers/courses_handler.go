package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skillcircuit/internal/service"
	"github.com/spec-kit/skillcircuit/internal/store"
)

// CoursesHandler serves the public catalog and the simulated checkout.
type CoursesHandler struct {
	store    *store.Store
	checkout *service.CheckoutService
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(st *store.Store, checkout *service.CheckoutService) *CoursesHandler {
	return &CoursesHandler{store: st, checkout: checkout}
}

// List handles GET /courses.
func (h *CoursesHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Courses()})
}

// Checkout handles POST /courses/:id/checkout.
func (h *CoursesHandler) Checkout(c *fiber.Ctx) error {
	result, err := h.checkout.Purchase(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}
