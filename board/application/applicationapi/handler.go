package applicationapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/internlink/internlink/board/application"
	"github.com/internlink/internlink/board/application/applicationsrv"
	"github.com/internlink/internlink/pkg/auth"
	"github.com/internlink/internlink/pkg/kernel"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateApplication applies the caller to a posting
// POST /api/postings/:id/applications
func (h *Handlers) CreateApplication(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	var req application.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	req.JobID = jobID
	req.SeekerID = authContext.UserID

	created, err := h.service.CreateApplication(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetApplication retrieves one application
// GET /api/applications/:id
func (h *Handlers) GetApplication(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	applicationID, err := parseApplicationID(c)
	if err != nil {
		return err
	}

	app, err := h.service.GetApplication(c.Context(), authContext, applicationID)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// ListMyApplications retrieves the caller's applications with job details
// GET /api/applications/mine
func (h *Handlers) ListMyApplications(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	pagination := parsePaginationOptions(c)

	applications, err := h.service.ListMyApplications(c.Context(), authContext.UserID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(applications)
}

// ListApplicationsForJob retrieves applicants for an owned posting
// GET /api/postings/:id/applications
func (h *Handlers) ListApplicationsForJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	pagination := parsePaginationOptions(c)

	applications, err := h.service.ListApplicationsForJob(c.Context(), authContext.UserID, jobID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(applications)
}

// UpdateStatus transitions an application's review status
// PATCH /api/applications/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if req.JobID.IsEmpty() || req.SeekerID.IsEmpty() {
		return application.ErrInvalidRequest().WithDetail("job_id", "job_id and seeker_id are required")
	}

	updated, err := h.service.UpdateStatus(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Withdraw deletes the caller's application
// DELETE /api/applications/:id
func (h *Handlers) Withdraw(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	applicationID, err := parseApplicationID(c)
	if err != nil {
		return err
	}

	if err := h.service.Withdraw(c.Context(), authContext.UserID, applicationID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetResume streams the decoded resume
// GET /api/applications/:id/resume
func (h *Handlers) GetResume(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	applicationID, err := parseApplicationID(c)
	if err != nil {
		return err
	}

	download, err := h.service.GetResume(c.Context(), authContext, applicationID)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, download.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+download.Filename+`"`)
	return c.Send(download.Data)
}

// ============================================================================
// Helper Functions
// ============================================================================

func parseApplicationID(c *fiber.Ctx) (kernel.ApplicationID, error) {
	raw := c.Params("id")
	if _, err := uuid.Parse(raw); err != nil {
		return "", application.ErrInvalidID().WithDetail("id", raw)
	}
	return kernel.ApplicationID(raw), nil
}

func parseJobID(c *fiber.Ctx) (kernel.JobID, error) {
	raw := c.Params("id")
	if _, err := uuid.Parse(raw); err != nil {
		return "", application.ErrInvalidID().WithDetail("job_id", raw)
	}
	return kernel.JobID(raw), nil
}

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

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	postings := app.Group("/api/postings")

	postings.Post("/:id/applications",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleJobSeeker),
		handlers.CreateApplication,
	)

	postings.Get("/:id/applications",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.ListApplicationsForJob,
	)

	api := app.Group("/api/applications")

	api.Get("/mine",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleJobSeeker),
		handlers.ListMyApplications,
	)

	api.Patch("/status",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleEmployer),
		handlers.UpdateStatus,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		handlers.GetApplication,
	)

	api.Get("/:id/resume",
		authMiddleware.Authenticate(),
		handlers.GetResume,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleJobSeeker),
		handlers.Withdraw,
	)
}
