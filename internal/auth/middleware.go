package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skillcircuit/internal/domain"
	"github.com/spec-kit/skillcircuit/internal/store"
	apperrors "github.com/spec-kit/skillcircuit/pkg/util"
)

const sessionKey = "auth_session"

// SessionMiddleware validates bearer tokens against the store's single
// active session. A token for a logged-out or superseded session is
// rejected even if the signature is still valid.
type SessionMiddleware struct {
	tokens *TokenManager
	store  *store.Store
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, st *store.Store) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, store: st}
}

// Handle enforces authentication for protected routes.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	session := m.store.Session()
	if !session.IsAuthenticated || session.User == nil || session.User.ID != claims.UserID {
		return apperrors.NewUnauthorized("no active session for token")
	}

	c.Locals(sessionKey, session)
	return c.Next()
}

// SessionFromContext retrieves the authenticated session.
func SessionFromContext(c *fiber.Ctx) (domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return domain.Session{}, false
	}
	session, ok := val.(domain.Session)
	return session, ok
}
