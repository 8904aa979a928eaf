package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/internlink/internlink/board/application"
	"github.com/internlink/internlink/board/posting"
	"github.com/internlink/internlink/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type applicationModel struct {
	ID          string     `db:"id"`
	JobID       string     `db:"job_id"`
	SeekerID    string     `db:"seeker_id"`
	JobKind     string     `db:"job_kind"`
	Status      string     `db:"status"`
	CoverLetter string     `db:"cover_letter"`
	ResumeData  string     `db:"resume_data"`
	ResumeName  string     `db:"resume_name"`
	ResumeType  string     `db:"resume_type"`
	ResumeSize  int64      `db:"resume_size"`
	AppliedAt   time.Time  `db:"applied_at"`
	ReviewedAt  *time.Time `db:"reviewed_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type applicationWithJobModel struct {
	applicationModel
	JobTitle  string `db:"job_title"`
	Company   string `db:"company"`
	Location  string `db:"location"`
	JobStatus string `db:"job_status"`
}

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() *application.Application {
	return &application.Application{
		ID:          kernel.ApplicationID(m.ID),
		JobID:       kernel.JobID(m.JobID),
		SeekerID:    kernel.UserID(m.SeekerID),
		JobKind:     posting.JobKind(m.JobKind),
		Status:      application.ApplicationStatus(m.Status),
		CoverLetter: kernel.CoverLetter(m.CoverLetter),
		Resume: application.Resume{
			Data: m.ResumeData,
			Name: m.ResumeName,
			Type: m.ResumeType,
			Size: m.ResumeSize,
		},
		AppliedAt:  m.AppliedAt,
		ReviewedAt: m.ReviewedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(a *application.Application) *applicationModel {
	return &applicationModel{
		ID:          string(a.ID),
		JobID:       string(a.JobID),
		SeekerID:    string(a.SeekerID),
		JobKind:     string(a.JobKind),
		Status:      string(a.Status),
		CoverLetter: string(a.CoverLetter),
		ResumeData:  a.Resume.Data,
		ResumeName:  a.Resume.Name,
		ResumeType:  a.Resume.Type,
		ResumeSize:  a.Resume.Size,
		AppliedAt:   a.AppliedAt,
		ReviewedAt:  a.ReviewedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

const applicationColumns = `
	id, job_id, seeker_id, job_kind, status, cover_letter,
	resume_data, resume_name, resume_type, resume_size,
	applied_at, reviewed_at, updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create inserts a new application. The unique index on (job_id, seeker_id)
// is the duplicate guard; two racing inserts resolve here, not in the service
// pre-check.
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	model := fromEntity(app)

	query := `
		INSERT INTO applications (
			id, job_id, seeker_id, job_kind, status, cover_letter,
			resume_data, resume_name, resume_type, resume_size,
			applied_at, reviewed_at, updated_at
		) VALUES (
			:id, :job_id, :seeker_id, :job_kind, :status, :cover_letter,
			:resume_data, :resume_name, :resume_type, :resume_size,
			:applied_at, :reviewed_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return application.ErrDuplicateApplication()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid job_id or seeker_id: %w", err)
			}
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	return model.toEntity(), nil
}

// GetByJobAndSeeker retrieves an application by its compound key
func (r *PostgresApplicationRepository) GetByJobAndSeeker(ctx context.Context, jobID kernel.JobID, seekerID kernel.UserID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 AND seeker_id = $2`

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, string(jobID), string(seekerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application by job and seeker: %w", err)
	}

	return model.toEntity(), nil
}

// ExistsByJobAndSeeker checks for an existing (job, seeker) application
func (r *PostgresApplicationRepository) ExistsByJobAndSeeker(ctx context.Context, jobID kernel.JobID, seekerID kernel.UserID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND seeker_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, string(jobID), string(seekerID)); err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}

	return exists, nil
}

// Update persists status and review timestamp changes
func (r *PostgresApplicationRepository) Update(ctx context.Context, id kernel.ApplicationID, app *application.Application) error {
	model := fromEntity(app)
	model.ID = string(id)

	query := `
		UPDATE applications SET
			status = :status,
			cover_letter = :cover_letter,
			reviewed_at = :reviewed_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// Delete removes an application
func (r *PostgresApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	query := `DELETE FROM applications WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// ListBySeeker retrieves a seeker's applications joined with job details. The
// applications table is queried directly by seeker_id; there is no separate
// per-profile application list to drift out of sync.
func (r *PostgresApplicationRepository) ListBySeeker(ctx context.Context, seekerID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.ApplicationWithJob], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE seeker_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(seekerID)); err != nil {
		return nil, fmt.Errorf("failed to count seeker applications: %w", err)
	}

	query := `
		SELECT
			a.id, a.job_id, a.seeker_id, a.job_kind, a.status, a.cover_letter,
			a.resume_data, a.resume_name, a.resume_type, a.resume_size,
			a.applied_at, a.reviewed_at, a.updated_at,
			j.title AS job_title, j.company, j.location, j.status AS job_status
		FROM applications a
		JOIN job_postings j ON j.id = a.job_id
		WHERE a.seeker_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []applicationWithJobModel
	err := r.db.SelectContext(ctx, &models, query, string(seekerID), pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list seeker applications: %w", err)
	}

	items := make([]application.ApplicationWithJob, 0, len(models))
	for _, model := range models {
		items = append(items, application.ApplicationWithJob{
			Application: *model.toEntity(),
			JobTitle:    model.JobTitle,
			Company:     model.Company,
			Location:    model.Location,
			JobStatus:   model.JobStatus,
		})
	}

	return &kernel.Paginated[application.ApplicationWithJob]{
		Items: items,
		Page:  kernel.NewPage(pagination, total),
		Empty: len(items) == 0,
	}, nil
}

// ListByJob retrieves the applications for one posting
func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE job_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(jobID)); err != nil {
		return nil, fmt.Errorf("failed to count job applications: %w", err)
	}

	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE job_id = $1
		ORDER BY applied_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []applicationModel
	err := r.db.SelectContext(ctx, &models, query, string(jobID), pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}

	items := make([]application.Application, 0, len(models))
	for _, model := range models {
		items = append(items, *model.toEntity())
	}

	return &kernel.Paginated[application.Application]{
		Items: items,
		Page:  kernel.NewPage(pagination, total),
		Empty: len(items) == 0,
	}, nil
}

// CountByJob returns the number of applications for one posting
func (r *PostgresApplicationRepository) CountByJob(ctx context.Context, jobID kernel.JobID) (int64, error) {
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, string(jobID)); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}

	return count, nil
}
