package message

import (
	"github.com/internlink/internlink/pkg/kernel"
)

// SendMessageRequest - DTO for sending a message. The sender comes from the
// auth context.
type SendMessageRequest struct {
	ToUserID kernel.UserID `json:"to_user_id"`
	Body     string        `json:"body"`
}

// Response type alias for a conversation page
type PaginatedMessagesResponse = kernel.Paginated[Message]
