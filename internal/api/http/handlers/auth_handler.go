package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/skillcircuit/internal/api/dto"
	"github.com/spec-kit/skillcircuit/internal/auth"
	"github.com/spec-kit/skillcircuit/internal/domain"
	"github.com/spec-kit/skillcircuit/internal/events"
	"github.com/spec-kit/skillcircuit/internal/store"
)

// AuthHandler exposes the mock session operations. No credential check
// happens anywhere here: any email logs in. A production deployment swaps
// the store calls for an identity-service client behind the same routes.
type AuthHandler struct {
	store      *store.Store
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
}

// NewAuthHandler constructs handler.
func NewAuthHandler(st *store.Store, tokens *auth.TokenManager, dispatcher events.Dispatcher) *AuthHandler {
	return &AuthHandler{store: st, tokens: tokens, dispatcher: dispatcher}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}
	switch req.Role {
	case "", domain.RoleStudent, domain.RoleAdmin, domain.RoleFaculty:
	default:
		return fiber.NewError(http.StatusBadRequest, "unknown role")
	}

	user := h.store.Login(c.Context(), req.Email, req.Role)

	token, exp, err := h.tokens.GenerateToken(user)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": user,
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "name and email required")
	}

	user := h.store.Signup(c.Context(), req.Name, req.Email)

	if h.dispatcher != nil {
		_ = h.dispatcher.Publish(c.Context(), events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStudentSignedUp,
			Actor:     events.Actor{Email: user.Email, Role: user.Role},
			Timestamp: time.Now(),
			Payload:   events.StudentSignedUpPayload{UserID: user.ID, Email: user.Email},
		})
	}

	token, exp, err := h.tokens.GenerateToken(user)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": user,
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.store.Logout(c.Context())
	return c.SendStatus(http.StatusNoContent)
}

// Session handles GET /auth/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	session := h.store.Session()
	return c.JSON(fiber.Map{
		"data": dto.SessionResponse{
			User:            session.User,
			IsAuthenticated: session.IsAuthenticated,
			IsAdmin:         h.store.IsAdmin(),
			IsFaculty:       h.store.IsFaculty(),
			CanAccessLMS:    h.store.CanAccessLMS(),
		},
	})
}

// Enroll handles POST /auth/enroll.
func (h *AuthHandler) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if !req.Tier.Valid() {
		return fiber.NewError(http.StatusBadRequest, "unknown program tier")
	}

	h.store.Enroll(c.Context(), req.Tier)

	session := h.store.Session()
	if h.dispatcher != nil && session.User != nil {
		_ = h.dispatcher.Publish(c.Context(), events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStudentEnrolled,
			Actor:     events.Actor{Email: session.User.Email, Role: session.User.Role},
			Timestamp: time.Now(),
			Payload:   events.StudentEnrolledPayload{UserID: session.User.ID, Tier: req.Tier},
		})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"user": session.User}})
}
