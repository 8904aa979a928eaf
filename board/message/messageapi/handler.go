package messageapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink/board/message"
	"github.com/internlink/internlink/board/message/messagesrv"
	"github.com/internlink/internlink/pkg/auth"
	"github.com/internlink/internlink/pkg/kernel"
)

// Handlers provides HTTP handlers for messaging
type Handlers struct {
	service *messagesrv.MessageService
}

// NewHandlers creates a new message handlers instance
func NewHandlers(service *messagesrv.MessageService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Send stores a message to another user
// POST /api/messages
func (h *Handlers) Send(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req message.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return message.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	msg, err := h.service.Send(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

// Conversation lists messages between the caller and another user
// GET /api/messages/with/:userId
func (h *Handlers) Conversation(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	otherUserID := kernel.UserID(c.Params("userId"))
	if otherUserID.IsEmpty() {
		return message.ErrInvalidRequest().WithDetail("user_id", "missing or empty")
	}

	pagination := parsePaginationOptions(c)

	msgs, err := h.service.Conversation(c.Context(), authContext.UserID, otherUserID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(msgs)
}

func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 50)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// RegisterRoutes registers all message routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/messages")

	api.Post("/",
		authMiddleware.Authenticate(),
		handlers.Send,
	)

	api.Get("/with/:userId",
		authMiddleware.Authenticate(),
		handlers.Conversation,
	)
}
