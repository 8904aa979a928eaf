package messageinfra

import (
	"context"
	"fmt"

	"github.com/internlink/internlink/board/message"
	"github.com/internlink/internlink/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresMessageRepository implements message.Repository using PostgreSQL
type PostgresMessageRepository struct {
	db *sqlx.DB
}

// NewPostgresMessageRepository creates a new PostgreSQL message repository
func NewPostgresMessageRepository(db *sqlx.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{
		db: db,
	}
}

// Create stores a message
func (r *PostgresMessageRepository) Create(ctx context.Context, msg *message.Message) error {
	query := `
		INSERT INTO messages (id, from_user_id, to_user_id, body, sent_at)
		VALUES (:id, :from_user_id, :to_user_id, :body, :sent_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, msg); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// ListConversation retrieves messages between two users, newest first
func (r *PostgresMessageRepository) ListConversation(ctx context.Context, a, b kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[message.Message], error) {
	var total int
	countQuery := `
		SELECT COUNT(*) FROM messages
		WHERE (from_user_id = $1 AND to_user_id = $2)
		   OR (from_user_id = $2 AND to_user_id = $1)
	`
	if err := r.db.GetContext(ctx, &total, countQuery, string(a), string(b)); err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	query := `
		SELECT id, from_user_id, to_user_id, body, sent_at
		FROM messages
		WHERE (from_user_id = $1 AND to_user_id = $2)
		   OR (from_user_id = $2 AND to_user_id = $1)
		ORDER BY sent_at DESC
		LIMIT $3 OFFSET $4
	`

	var msgs []message.Message
	err := r.db.SelectContext(ctx, &msgs, query, string(a), string(b), pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}

	return &kernel.Paginated[message.Message]{
		Items: msgs,
		Page:  kernel.NewPage(pagination, total),
		Empty: len(msgs) == 0,
	}, nil
}
