package posting

import (
	"time"

	"github.com/internlink/internlink/pkg/kernel"
)

// SaveDraftRequest - DTO for creating a draft. Kind is required and fixed at
// creation; the remaining fields may be left blank until publish.
type SaveDraftRequest struct {
	Kind                JobKind               `json:"kind"`
	Title               kernel.JobTitle       `json:"title,omitempty"`
	Company             kernel.Company        `json:"company,omitempty"`
	Location            kernel.Location       `json:"location,omitempty"`
	Description         kernel.JobDescription `json:"description,omitempty"`
	Scope               kernel.JobScope       `json:"job_scope,omitempty"`
	Tags                []kernel.Tag          `json:"tags,omitempty"`
	Stipend             *float64              `json:"stipend,omitempty"`
	DurationMonths      *int                  `json:"duration_months,omitempty"`
	YearOfStudy         *int                  `json:"year_of_study,omitempty"`
	FieldOfStudy        *string               `json:"field_of_study,omitempty"`
	ApplicationDeadline *time.Time            `json:"application_deadline,omitempty"`
	PayPerHour          *float64              `json:"pay_per_hour,omitempty"`
	Area                *string               `json:"area,omitempty"`
}

// UpdateDraftRequest - DTO for patching an existing draft
type UpdateDraftRequest struct {
	Title               *kernel.JobTitle       `json:"title,omitempty"`
	Company             *kernel.Company        `json:"company,omitempty"`
	Location            *kernel.Location       `json:"location,omitempty"`
	Description         *kernel.JobDescription `json:"description,omitempty"`
	Scope               *kernel.JobScope       `json:"job_scope,omitempty"`
	Tags                *[]kernel.Tag          `json:"tags,omitempty"`
	Stipend             *float64               `json:"stipend,omitempty"`
	DurationMonths      *int                   `json:"duration_months,omitempty"`
	YearOfStudy         *int                   `json:"year_of_study,omitempty"`
	FieldOfStudy        *string                `json:"field_of_study,omitempty"`
	ApplicationDeadline *time.Time             `json:"application_deadline,omitempty"`
	PayPerHour          *float64               `json:"pay_per_hour,omitempty"`
	Area                *string                `json:"area,omitempty"`
}

// SearchPostingsRequest - DTO for searching published postings. Query matches
// title, company, description and scope; the remaining fields are structured
// filters.
type SearchPostingsRequest struct {
	Query      string                   `json:"query,omitempty"`
	Kind       JobKind                  `json:"kind,omitempty"`
	Location   string                   `json:"location,omitempty"`
	Tag        string                   `json:"tag,omitempty"`
	MinPay     *float64                 `json:"min_pay,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated postings
type PaginatedPostingsResponse = kernel.Paginated[PostingResponse]

// PostingResponse - DTO for returning posting data
type PostingResponse struct {
	ID                  kernel.JobID          `json:"id"`
	Kind                JobKind               `json:"kind"`
	Title               kernel.JobTitle       `json:"title"`
	Company             kernel.Company        `json:"company"`
	Location            kernel.Location       `json:"location"`
	Description         kernel.JobDescription `json:"description"`
	Scope               kernel.JobScope       `json:"job_scope"`
	Tags                []kernel.Tag          `json:"tags"`
	EmployerID          kernel.UserID         `json:"employer_id"`
	Status              JobStatus             `json:"status"`
	Stipend             *float64              `json:"stipend,omitempty"`
	DurationMonths      *int                  `json:"duration_months,omitempty"`
	YearOfStudy         *int                  `json:"year_of_study,omitempty"`
	FieldOfStudy        *string               `json:"field_of_study,omitempty"`
	ApplicationDeadline *time.Time            `json:"application_deadline,omitempty"`
	PayPerHour          *float64              `json:"pay_per_hour,omitempty"`
	Area                *string               `json:"area,omitempty"`
	Views               int64                 `json:"views"`
	PostedAt            *time.Time            `json:"posted_at,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

// ToResponse converts a Posting to its response DTO
func (p *Posting) ToResponse() PostingResponse {
	return PostingResponse{
		ID:                  p.ID,
		Kind:                p.Kind,
		Title:               p.Title,
		Company:             p.Company,
		Location:            p.Location,
		Description:         p.Description,
		Scope:               p.Scope,
		Tags:                p.Tags,
		EmployerID:          p.EmployerID,
		Status:              p.Status,
		Stipend:             p.Stipend,
		DurationMonths:      p.DurationMonths,
		YearOfStudy:         p.YearOfStudy,
		FieldOfStudy:        p.FieldOfStudy,
		ApplicationDeadline: p.ApplicationDeadline,
		PayPerHour:          p.PayPerHour,
		Area:                p.Area,
		Views:               p.Views,
		PostedAt:            p.PostedAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// PostingStatsResponse - counters for a posting. The row counters are
// denormalized; LiveApplicantCount is derived from the application store and
// LiveViews from the view counter. Callers pick whichever they trust.
type PostingStatsResponse struct {
	JobID              kernel.JobID    `json:"job_id"`
	Title              kernel.JobTitle `json:"title"`
	Status             JobStatus       `json:"status"`
	Views              int64           `json:"views"`
	LiveViews          int64           `json:"live_views"`
	Applicants         int64           `json:"applicants"`
	LiveApplicantCount int64           `json:"live_applicant_count"`
	PostedAt           *time.Time      `json:"posted_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}
