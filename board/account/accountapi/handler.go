package accountapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink/board/account"
	"github.com/internlink/internlink/board/account/accountsrv"
	"github.com/internlink/internlink/pkg/auth"
)

// Handlers provides HTTP handlers for account operations
type Handlers struct {
	service *accountsrv.AccountService
}

// NewHandlers creates a new account handlers instance
func NewHandlers(service *accountsrv.AccountService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req account.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	session, err := h.service.Register(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// Login exchanges credentials for a token
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req account.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	session, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// Me returns the caller's account
// GET /api/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	acc, err := h.service.GetAccount(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(acc)
}

// RegisterRoutes registers all account routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/auth")

	api.Post("/register", handlers.Register)
	api.Post("/login", handlers.Login)
	api.Get("/me",
		authMiddleware.Authenticate(),
		handlers.Me,
	)
}
