package message

import (
	"context"

	"github.com/internlink/internlink/pkg/kernel"
)

type Repository interface {
	// Create stores a message
	Create(ctx context.Context, msg *Message) error

	// ListConversation retrieves messages between two users, newest first
	ListConversation(ctx context.Context, a, b kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Message], error)
}
