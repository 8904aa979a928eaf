package posting

import (
	"context"
	"time"

	"github.com/internlink/internlink/pkg/kernel"
)

type Repository interface {
	// Create creates a new posting (draft or posted)
	Create(ctx context.Context, posting *Posting) error

	// Update updates an existing posting
	Update(ctx context.Context, id kernel.JobID, posting *Posting) error

	// GetByID retrieves a posting by ID, drafts included
	GetByID(ctx context.Context, id kernel.JobID) (*Posting, error)

	// Delete deletes a posting by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// ListByEmployer retrieves postings owned by an employer, drafts included
	ListByEmployer(ctx context.Context, employerID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Posting], error)

	// Search searches published postings only
	Search(ctx context.Context, req SearchPostingsRequest) (*kernel.Paginated[Posting], error)

	// Publish flips a draft to posted in a single guarded update, stamping
	// the given publication time on the row
	Publish(ctx context.Context, id kernel.JobID, postedAt time.Time) error

	// Exists checks if a posting exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)

	// IncrementViews bumps the denormalized view counter
	IncrementViews(ctx context.Context, id kernel.JobID) error

	// IncrementApplicants bumps the denormalized applicant counter
	IncrementApplicants(ctx context.Context, id kernel.JobID) error

	// CountApplications derives the live applicant count from the application store
	CountApplications(ctx context.Context, id kernel.JobID) (int64, error)
}

// ViewCounter tracks per-posting view counts out of band of the row counter
type ViewCounter interface {
	// Record registers one view and returns the running count
	Record(ctx context.Context, id kernel.JobID) (int64, error)

	// Count returns the running count without recording a view
	Count(ctx context.Context, id kernel.JobID) (int64, error)
}
