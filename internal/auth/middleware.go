package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/domain"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

const sessionKey = "auth_session"

// Gate authenticates bearer tokens before any business logic runs. A request
// without a token passes through with no session (the policy decides whether
// that is acceptable); a request with a malformed or invalid token is rejected
// outright.
type Gate struct {
	tokens *TokenService
}

// NewGate constructs the authentication middleware.
func NewGate(tokens *TokenService) *Gate {
	return &Gate{tokens: tokens}
}

// Handle extracts and validates the Authorization header, attaching the
// resolved session to the request context on success.
func (g *Gate) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Next()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	session, err := g.tokens.Authenticate(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(sessionKey, session)
	return c.Next()
}

// SessionFromContext retrieves the authenticated session, if any.
func SessionFromContext(c *fiber.Ctx) (*domain.AuthSession, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.AuthSession)
	return session, ok
}
