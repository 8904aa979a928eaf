package postingapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/internlink/internlink/board/posting"
	"github.com/internlink/internlink/board/posting/postingsrv"
	"github.com/internlink/internlink/pkg/auth"
	"github.com/internlink/internlink/pkg/kernel"
)

// Handlers provides HTTP handlers for posting operations
type Handlers struct {
	service *postingsrv.PostingService
}

// NewHandlers creates a new posting handlers instance
func NewHandlers(service *postingsrv.PostingService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// SaveDraft creates a new draft posting
// POST /api/postings/drafts
func (h *Handlers) SaveDraft(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req posting.SaveDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return posting.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	draft, err := h.service.SaveDraft(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(draft)
}

// CreatePosting creates and publishes a posting in one step
// POST /api/postings
func (h *Handlers) CreatePosting(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req posting.SaveDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return posting.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.CreatePosting(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateDraft patches an existing draft
// PUT /api/postings/drafts/:id
func (h *Handlers) UpdateDraft(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	var req posting.UpdateDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return posting.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateDraft(c.Context(), authContext.UserID, jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Publish transitions a draft to posted
// POST /api/postings/drafts/:id/publish
func (h *Handlers) Publish(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	published, err := h.service.Publish(c.Context(), authContext.UserID, jobID)
	if err != nil {
		return err
	}

	return c.JSON(published)
}

// GetPosting retrieves one posting
// GET /api/postings/:id
func (h *Handlers) GetPosting(c *fiber.Ctx) error {
	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	var viewer *kernel.UserID
	if authContext, ok := auth.GetAuthContext(c); ok {
		viewer = &authContext.UserID
	}

	p, err := h.service.GetPosting(c.Context(), viewer, jobID)
	if err != nil {
		return err
	}

	return c.JSON(p)
}

// ListMyPostings retrieves the caller's own postings, drafts included
// GET /api/postings/mine
func (h *Handlers) ListMyPostings(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	pagination := parsePaginationOptions(c)

	postings, err := h.service.ListByEmployer(c.Context(), authContext.UserID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(postings)
}

// Search searches published postings
// GET /api/postings
func (h *Handlers) Search(c *fiber.Ctx) error {
	var minPay *float64
	if v := c.QueryFloat("min_pay", -1); v >= 0 {
		minPay = &v
	}

	req := posting.SearchPostingsRequest{
		Query:      c.Query("q"),
		Kind:       posting.JobKind(c.Query("kind")),
		Location:   c.Query("location"),
		Tag:        c.Query("tag"),
		MinPay:     minPay,
		Pagination: parsePaginationOptions(c),
	}

	postings, err := h.service.Search(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(postings)
}

// DeletePosting removes an owned posting, draft or published
// DELETE /api/postings/:id
func (h *Handlers) DeletePosting(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePosting(c.Context(), authContext.UserID, jobID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetStats returns counters for an owned posting
// GET /api/postings/:id/stats
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	stats, err := h.service.GetStats(c.Context(), authContext.UserID, jobID)
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parseJobID validates the :id path parameter as a UUID
func parseJobID(c *fiber.Ctx) (kernel.JobID, error) {
	raw := c.Params("id")
	if _, err := uuid.Parse(raw); err != nil {
		return "", posting.ErrInvalidID().WithDetail("id", raw)
	}
	return kernel.JobID(raw), nil
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// RegisterRoutes registers all posting routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/postings")

	// Public search and read
	api.Get("/", handlers.Search)

	// Employer-only routes
	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.CreatePosting,
	)

	api.Post("/drafts",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.SaveDraft,
	)

	api.Get("/mine",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.ListMyPostings,
	)

	api.Get("/:id",
		authMiddleware.OptionalAuthenticate(),
		handlers.GetPosting,
	)

	api.Put("/drafts/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.UpdateDraft,
	)

	api.Post("/drafts/:id/publish",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.Publish,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.DeletePosting,
	)

	api.Get("/:id/stats",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.GetStats,
	)
}
