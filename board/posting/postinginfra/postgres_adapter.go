package postinginfra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/internlink/internlink/board/posting"
	"github.com/internlink/internlink/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresPostingRepository implements posting.Repository using PostgreSQL
type PostgresPostingRepository struct {
	db *sqlx.DB
}

// NewPostgresPostingRepository creates a new PostgreSQL posting repository
func NewPostgresPostingRepository(db *sqlx.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type postingModel struct {
	ID                  string         `db:"id"`
	Kind                string         `db:"kind"`
	Title               string         `db:"title"`
	Company             string         `db:"company"`
	Location            string         `db:"location"`
	Description         string         `db:"description"`
	JobScope            string         `db:"job_scope"`
	Tags                pq.StringArray `db:"tags"`
	EmployerID          string         `db:"employer_id"`
	Status              string         `db:"status"`
	Stipend             *float64       `db:"stipend"`
	DurationMonths      *int           `db:"duration_months"`
	YearOfStudy         *int           `db:"year_of_study"`
	FieldOfStudy        *string        `db:"field_of_study"`
	ApplicationDeadline *time.Time     `db:"application_deadline"`
	PayPerHour          *float64       `db:"pay_per_hour"`
	Area                *string        `db:"area"`
	Views               int64          `db:"views"`
	Applicants          int64          `db:"applicants"`
	PostedAt            *time.Time     `db:"posted_at"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *postingModel) toEntity() *posting.Posting {
	tags := make([]kernel.Tag, 0, len(m.Tags))
	for _, t := range m.Tags {
		tags = append(tags, kernel.Tag(t))
	}

	return &posting.Posting{
		ID:                  kernel.JobID(m.ID),
		Kind:                posting.JobKind(m.Kind),
		Title:               kernel.JobTitle(m.Title),
		Company:             kernel.Company(m.Company),
		Location:            kernel.Location(m.Location),
		Description:         kernel.JobDescription(m.Description),
		Scope:               kernel.JobScope(m.JobScope),
		Tags:                tags,
		EmployerID:          kernel.UserID(m.EmployerID),
		Status:              posting.JobStatus(m.Status),
		Stipend:             m.Stipend,
		DurationMonths:      m.DurationMonths,
		YearOfStudy:         m.YearOfStudy,
		FieldOfStudy:        m.FieldOfStudy,
		ApplicationDeadline: m.ApplicationDeadline,
		PayPerHour:          m.PayPerHour,
		Area:                m.Area,
		Views:               m.Views,
		Applicants:          m.Applicants,
		PostedAt:            m.PostedAt,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(p *posting.Posting) *postingModel {
	tags := make(pq.StringArray, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, string(t))
	}

	return &postingModel{
		ID:                  string(p.ID),
		Kind:                string(p.Kind),
		Title:               string(p.Title),
		Company:             string(p.Company),
		Location:            string(p.Location),
		Description:         string(p.Description),
		JobScope:            string(p.Scope),
		Tags:                tags,
		EmployerID:          string(p.EmployerID),
		Status:              string(p.Status),
		Stipend:             p.Stipend,
		DurationMonths:      p.DurationMonths,
		YearOfStudy:         p.YearOfStudy,
		FieldOfStudy:        p.FieldOfStudy,
		ApplicationDeadline: p.ApplicationDeadline,
		PayPerHour:          p.PayPerHour,
		Area:                p.Area,
		Views:               p.Views,
		Applicants:          p.Applicants,
		PostedAt:            p.PostedAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

const postingColumns = `
	id, kind, title, company, location, description, job_scope, tags,
	employer_id, status, stipend, duration_months, year_of_study,
	field_of_study, application_deadline, pay_per_hour, area,
	views, applicants, posted_at, created_at, updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new posting
func (r *PostgresPostingRepository) Create(ctx context.Context, p *posting.Posting) error {
	model := fromEntity(p)

	query := `
		INSERT INTO job_postings (
			id, kind, title, company, location, description, job_scope, tags,
			employer_id, status, stipend, duration_months, year_of_study,
			field_of_study, application_deadline, pay_per_hour, area,
			views, applicants, posted_at, created_at, updated_at
		) VALUES (
			:id, :kind, :title, :company, :location, :description, :job_scope, :tags,
			:employer_id, :status, :stipend, :duration_months, :year_of_study,
			:field_of_study, :application_deadline, :pay_per_hour, :area,
			:views, :applicants, :posted_at, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return posting.ErrPostingAlreadyExists()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid employer_id: %w", err)
			}
		}
		return fmt.Errorf("failed to create posting: %w", err)
	}

	return nil
}

// Update updates an existing posting
func (r *PostgresPostingRepository) Update(ctx context.Context, id kernel.JobID, p *posting.Posting) error {
	model := fromEntity(p)
	model.ID = string(id)

	query := `
		UPDATE job_postings SET
			title = :title,
			company = :company,
			location = :location,
			description = :description,
			job_scope = :job_scope,
			tags = :tags,
			status = :status,
			stipend = :stipend,
			duration_months = :duration_months,
			year_of_study = :year_of_study,
			field_of_study = :field_of_study,
			application_deadline = :application_deadline,
			pay_per_hour = :pay_per_hour,
			area = :area,
			posted_at = :posted_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update posting: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return posting.ErrPostingNotFound()
	}

	return nil
}

// GetByID retrieves a posting by ID, drafts included
func (r *PostgresPostingRepository) GetByID(ctx context.Context, id kernel.JobID) (*posting.Posting, error) {
	query := `SELECT ` + postingColumns + ` FROM job_postings WHERE id = $1`

	var model postingModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, posting.ErrPostingNotFound()
		}
		return nil, fmt.Errorf("failed to get posting by id: %w", err)
	}

	return model.toEntity(), nil
}

// Delete deletes a posting by ID
func (r *PostgresPostingRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM job_postings WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete posting: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return posting.ErrPostingNotFound()
	}

	return nil
}

// ListByEmployer retrieves postings owned by an employer, drafts included
func (r *PostgresPostingRepository) ListByEmployer(ctx context.Context, employerID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[posting.Posting], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM job_postings WHERE employer_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(employerID)); err != nil {
		return nil, fmt.Errorf("failed to count employer postings: %w", err)
	}

	query := `
		SELECT ` + postingColumns + `
		FROM job_postings
		WHERE employer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []postingModel
	err := r.db.SelectContext(ctx, &models, query, string(employerID), pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list employer postings: %w", err)
	}

	entities := make([]posting.Posting, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[posting.Posting]{
		Items: entities,
		Page:  kernel.NewPage(pagination, total),
		Empty: len(entities) == 0,
	}, nil
}

// Search searches published postings only. Filters compose with AND; the free
// text query matches title, company, description and job scope.
func (r *PostgresPostingRepository) Search(ctx context.Context, req posting.SearchPostingsRequest) (*kernel.Paginated[posting.Posting], error) {
	conditions := []string{"status = 'posted'"}
	args := []any{}
	argN := 1

	if req.Query != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d OR job_scope ILIKE $%d)",
			argN, argN, argN, argN))
		args = append(args, "%"+req.Query+"%")
		argN++
	}
	if req.Kind != "" {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", argN))
		args = append(args, string(req.Kind))
		argN++
	}
	if req.Location != "" {
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", argN))
		args = append(args, "%"+req.Location+"%")
		argN++
	}
	if req.Tag != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(tags)", argN))
		args = append(args, req.Tag)
		argN++
	}
	if req.MinPay != nil {
		conditions = append(conditions, fmt.Sprintf("(stipend >= $%d OR pay_per_hour >= $%d)", argN, argN))
		args = append(args, *req.MinPay)
		argN++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM job_postings ` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count postings: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM job_postings
		%s
		ORDER BY posted_at DESC
		LIMIT $%d OFFSET $%d
	`, postingColumns, where, argN, argN+1)
	args = append(args, req.Pagination.PageSize, req.Pagination.Offset())

	var models []postingModel
	err := r.db.SelectContext(ctx, &models, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search postings: %w", err)
	}

	entities := make([]posting.Posting, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[posting.Posting]{
		Items: entities,
		Page:  kernel.NewPage(req.Pagination, total),
		Empty: len(entities) == 0,
	}, nil
}

// Publish flips a draft to posted in a single guarded update. The status
// predicate makes the transition atomic under concurrent publishes.
func (r *PostgresPostingRepository) Publish(ctx context.Context, id kernel.JobID, postedAt time.Time) error {
	query := `
		UPDATE job_postings SET
			status = 'posted',
			posted_at = $2,
			updated_at = $2
		WHERE id = $1 AND status = 'draft'
	`

	result, err := r.db.ExecContext(ctx, query, string(id), postedAt)
	if err != nil {
		return fmt.Errorf("failed to publish posting: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		// either missing or already published; let the caller disambiguate
		exists, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return posting.ErrPostingNotFound()
		}
		return posting.ErrPostingAlreadyPublished()
	}

	return nil
}

// Exists checks if a posting exists by ID
func (r *PostgresPostingRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM job_postings WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, string(id)); err != nil {
		return false, fmt.Errorf("failed to check posting existence: %w", err)
	}

	return exists, nil
}

// IncrementViews bumps the denormalized view counter
func (r *PostgresPostingRepository) IncrementViews(ctx context.Context, id kernel.JobID) error {
	query := `UPDATE job_postings SET views = views + 1 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, string(id)); err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}

	return nil
}

// IncrementApplicants bumps the denormalized applicant counter
func (r *PostgresPostingRepository) IncrementApplicants(ctx context.Context, id kernel.JobID) error {
	query := `UPDATE job_postings SET applicants = applicants + 1 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, string(id)); err != nil {
		return fmt.Errorf("failed to increment applicants: %w", err)
	}

	return nil
}

// CountApplications derives the live applicant count from the applications table
func (r *PostgresPostingRepository) CountApplications(ctx context.Context, id kernel.JobID) (int64, error) {
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, string(id)); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}

	return count, nil
}
