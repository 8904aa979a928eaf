package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const authContextKey = "auth_context"

// Middleware validates bearer tokens and exposes the identity to handlers
type Middleware struct {
	tokenService TokenService
}

// NewMiddleware creates the auth middleware
func NewMiddleware(tokenService TokenService) *Middleware {
	return &Middleware{tokenService: tokenService}
}

// Authenticate requires a valid bearer token
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrMissingToken()
		}

		// Format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("reason", "malformed authorization header")
		}

		claims, err := m.tokenService.ValidateToken(parts[1])
		if err != nil {
			return ErrInvalidToken()
		}

		c.Locals(authContextKey, &AuthContext{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		return c.Next()
	}
}

// OptionalAuthenticate attaches the identity when a valid bearer token is
// present but lets anonymous requests through
func (m *Middleware) OptionalAuthenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Next()
		}

		claims, err := m.tokenService.ValidateToken(parts[1])
		if err != nil {
			return c.Next()
		}

		c.Locals(authContextKey, &AuthContext{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		return c.Next()
	}
}

// RequireRole restricts a route to one role; must run after Authenticate
func (m *Middleware) RequireRole(role Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}
		if authContext.Role != role {
			return ErrWrongRole().WithDetail("required_role", string(role))
		}
		return c.Next()
	}
}

// GetAuthContext extracts the verified identity from the request context
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authContext, ok := c.Locals(authContextKey).(*AuthContext)
	return authContext, ok
}
