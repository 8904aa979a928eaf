package application

import (
	"time"

	"github.com/internlink/internlink/board/posting"
	"github.com/internlink/internlink/pkg/kernel"
)

// ApplicationStatus represents the review state of an application
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

// IsValid reports whether the status is in the closed enum
func (s ApplicationStatus) IsValid() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// Application links a job seeker to a posting. The (JobID, SeekerID) pair is
// unique; the database index is the authoritative guard, any service-level
// pre-check is advisory.
type Application struct {
	ID          kernel.ApplicationID `db:"id" json:"id"`
	JobID       kernel.JobID         `db:"job_id" json:"job_id"`
	SeekerID    kernel.UserID        `db:"seeker_id" json:"seeker_id"`
	JobKind     posting.JobKind      `db:"job_kind" json:"job_kind"`
	Status      ApplicationStatus    `db:"status" json:"status"`
	CoverLetter kernel.CoverLetter   `db:"cover_letter" json:"cover_letter,omitempty"`

	// Resume is stored in the row, blank when none was uploaded
	Resume Resume `db:"-" json:"resume"`

	AppliedAt  time.Time  `db:"applied_at" json:"applied_at"`
	ReviewedAt *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// IsOwnedBy checks if the application belongs to the given seeker
func (a *Application) IsOwnedBy(seekerID kernel.UserID) bool {
	return a.SeekerID == seekerID
}

// Transition moves the application to a new review status and stamps the
// review time. Invalid statuses leave the application untouched.
func (a *Application) Transition(status ApplicationStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus().WithDetail("status", string(status))
	}

	now := time.Now()
	a.Status = status
	a.ReviewedAt = &now
	a.UpdatedAt = now
	return nil
}
