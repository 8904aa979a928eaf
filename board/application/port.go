package application

import (
	"context"

	"github.com/internlink/internlink/pkg/kernel"
)

// ApplicationWithJob is an application row joined with its posting
type ApplicationWithJob struct {
	Application
	JobTitle  string `db:"job_title"`
	Company   string `db:"company"`
	Location  string `db:"location"`
	JobStatus string `db:"job_status"`
}

type Repository interface {
	// Create inserts a new application. The unique (job_id, seeker_id) index
	// is the authoritative duplicate guard; a violation surfaces as
	// ErrDuplicateApplication.
	Create(ctx context.Context, app *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// GetByJobAndSeeker retrieves an application by its compound key
	GetByJobAndSeeker(ctx context.Context, jobID kernel.JobID, seekerID kernel.UserID) (*Application, error)

	// ExistsByJobAndSeeker checks for an existing (job, seeker) application
	ExistsByJobAndSeeker(ctx context.Context, jobID kernel.JobID, seekerID kernel.UserID) (bool, error)

	// Update persists status and review timestamp changes
	Update(ctx context.Context, id kernel.ApplicationID, app *Application) error

	// Delete removes an application
	Delete(ctx context.Context, id kernel.ApplicationID) error

	// ListBySeeker retrieves a seeker's applications joined with job details
	ListBySeeker(ctx context.Context, seekerID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[ApplicationWithJob], error)

	// ListByJob retrieves the applications for one posting
	ListByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// CountByJob returns the number of applications for one posting
	CountByJob(ctx context.Context, jobID kernel.JobID) (int64, error)
}
