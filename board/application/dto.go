package application

import (
	"time"

	"github.com/internlink/internlink/board/posting"
	"github.com/internlink/internlink/pkg/kernel"
)

// CreateApplicationRequest - DTO for applying to a posting. SeekerID comes
// from the auth context, never from the body.
type CreateApplicationRequest struct {
	JobID       kernel.JobID       `json:"-"`
	SeekerID    kernel.UserID      `json:"-"`
	CoverLetter kernel.CoverLetter `json:"cover_letter,omitempty"`
	Resume      *Resume            `json:"resume,omitempty"`
}

// UpdateStatusRequest - DTO for the employer status transition. The
// application is addressed by its compound (job, seeker) key.
type UpdateStatusRequest struct {
	JobID    kernel.JobID      `json:"job_id"`
	SeekerID kernel.UserID     `json:"seeker_id"`
	Status   ApplicationStatus `json:"status"`
}

// ApplicationResponse - DTO for returning application data. Resume payload is
// never inlined; callers fetch it via the resume endpoint.
type ApplicationResponse struct {
	ID          kernel.ApplicationID `json:"id"`
	JobID       kernel.JobID         `json:"job_id"`
	SeekerID    kernel.UserID        `json:"seeker_id"`
	JobKind     posting.JobKind      `json:"job_kind"`
	Status      ApplicationStatus    `json:"status"`
	CoverLetter kernel.CoverLetter   `json:"cover_letter,omitempty"`
	HasResume   bool                 `json:"has_resume"`
	ResumeName  string               `json:"resume_name,omitempty"`
	AppliedAt   time.Time            `json:"applied_at"`
	ReviewedAt  *time.Time           `json:"reviewed_at,omitempty"`
}

// ApplicationWithJobResponse - application joined with the posting it targets,
// for the seeker's "my applications" view
type ApplicationWithJobResponse struct {
	ApplicationResponse
	JobTitle  kernel.JobTitle   `json:"job_title"`
	Company   kernel.Company    `json:"company"`
	Location  kernel.Location   `json:"location"`
	JobStatus posting.JobStatus `json:"job_status"`
}

// Response type aliases
type PaginatedApplicationsResponse = kernel.Paginated[ApplicationResponse]
type PaginatedApplicationsWithJobResponse = kernel.Paginated[ApplicationWithJobResponse]

// ToResponse converts an Application to its response DTO
func (a *Application) ToResponse() ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		SeekerID:    a.SeekerID,
		JobKind:     a.JobKind,
		Status:      a.Status,
		CoverLetter: a.CoverLetter,
		HasResume:   !a.Resume.IsEmpty(),
		ResumeName:  a.Resume.Name,
		AppliedAt:   a.AppliedAt,
		ReviewedAt:  a.ReviewedAt,
	}
}
