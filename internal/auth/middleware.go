package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-widget/pkg/util"
)

const sessionIDKey = "session_id"

// AuthMiddleware guards local API routes with a bearer widget-session token.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs the middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle validates the Authorization header and stores the session id on
// the request context.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return util.NewUnauthorized("missing authorization header")
	}
	tokenStr, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return util.NewUnauthorized("malformed authorization header")
	}
	claims, err := m.tokens.ParseToken(strings.TrimSpace(tokenStr))
	if err != nil {
		return util.NewUnauthorized("invalid token")
	}
	c.Locals(sessionIDKey, claims.SessionID)
	return c.Next()
}

// SessionID returns the authenticated session id from the request context.
func SessionID(c *fiber.Ctx) string {
	if v, ok := c.Locals(sessionIDKey).(string); ok {
		return v
	}
	return ""
}
