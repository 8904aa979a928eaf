package seekerapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink/board/seeker"
	"github.com/internlink/internlink/board/seeker/seekersrv"
	"github.com/internlink/internlink/pkg/auth"
)

// Handlers provides HTTP handlers for seeker profile operations
type Handlers struct {
	service *seekersrv.SeekerService
}

// NewHandlers creates a new seeker handlers instance
func NewHandlers(service *seekersrv.SeekerService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetMyProfile returns the caller's profile
// GET /api/seekers/me
func (h *Handlers) GetMyProfile(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	profile, err := h.service.GetProfile(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// UpdateMyProfile patches the caller's profile
// PUT /api/seekers/me
func (h *Handlers) UpdateMyProfile(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req seeker.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return seeker.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	profile, err := h.service.UpdateProfile(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// RegisterRoutes registers all seeker routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/seekers")

	api.Get("/me",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleJobSeeker),
		handlers.GetMyProfile,
	)

	api.Put("/me",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleJobSeeker),
		handlers.UpdateMyProfile,
	)
}
