package message

import (
	"time"

	"github.com/internlink/internlink/pkg/kernel"
)

// Message is a direct message between two users. Plain store-and-fetch; there
// are no delivery or read receipts.
type Message struct {
	ID         kernel.MessageID `db:"id" json:"id"`
	FromUserID kernel.UserID    `db:"from_user_id" json:"from_user_id"`
	ToUserID   kernel.UserID    `db:"to_user_id" json:"to_user_id"`
	Body       string           `db:"body" json:"body"`
	SentAt     time.Time        `db:"sent_at" json:"sent_at"`
}
