package seeker

import (
	"context"

	"github.com/internlink/internlink/pkg/kernel"
)

type Repository interface {
	// GetByUserID retrieves a profile by the owning account id
	GetByUserID(ctx context.Context, userID kernel.UserID) (*Profile, error)

	// Upsert inserts or replaces the profile for its user id
	Upsert(ctx context.Context, profile *Profile) error
}
