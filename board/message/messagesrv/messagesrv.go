package messagesrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/internlink/internlink/board/message"
	"github.com/internlink/internlink/pkg/errx"
	"github.com/internlink/internlink/pkg/kernel"
)

// MessageService provides the placeholder messaging operations
type MessageService struct {
	messageRepo message.Repository
}

// NewMessageService creates a new instance of the message service
func NewMessageService(messageRepo message.Repository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
	}
}

// Send stores a message from the caller to another user
func (s *MessageService) Send(ctx context.Context, fromUserID kernel.UserID, req message.SendMessageRequest) (*message.Message, error) {
	if req.ToUserID.IsEmpty() {
		return nil, message.ErrInvalidRequest().WithDetail("to_user_id", "required")
	}
	if req.ToUserID == fromUserID {
		return nil, message.ErrSelfMessage()
	}
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, message.ErrEmptyBody()
	}

	msg := &message.Message{
		ID:         kernel.NewMessageID(uuid.NewString()),
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Body:       body,
		SentAt:     time.Now(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, errx.Wrap(err, "failed to send message", errx.TypeInternal)
	}

	return msg, nil
}

// Conversation retrieves the message history between the caller and one
// other user
func (s *MessageService) Conversation(ctx context.Context, userID, otherUserID kernel.UserID, pagination kernel.PaginationOptions) (*message.PaginatedMessagesResponse, error) {
	msgs, err := s.messageRepo.ListConversation(ctx, userID, otherUserID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load conversation", errx.TypeInternal)
	}

	return msgs, nil
}
