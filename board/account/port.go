package account

import (
	"context"

	"github.com/internlink/internlink/pkg/kernel"
)

type Repository interface {
	// Create inserts a new account; a duplicate email surfaces as ErrEmailTaken
	Create(ctx context.Context, account *Account) error

	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id kernel.UserID) (*Account, error)

	// GetByEmail retrieves an account by email
	GetByEmail(ctx context.Context, email kernel.Email) (*Account, error)
}
