package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skillcircuit/internal/store"
	apperrors "github.com/spec-kit/skillcircuit/pkg/util"
)

// RequireAdmin ensures the session user holds the admin role. The flag is
// read from the store on every request rather than from token claims.
func RequireAdmin(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !st.IsAdmin() {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}

// RequireLMSAccess gates the learning dashboard: admin and faculty always
// pass, students need an enrollment beyond Nano.
func RequireLMSAccess(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !st.CanAccessLMS() {
			return apperrors.NewForbidden("program enrollment required")
		}
		return c.Next()
	}
}
