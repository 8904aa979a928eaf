package posting

import (
	"time"

	"github.com/internlink/internlink/pkg/kernel"
)

// JobKind discriminates the two posting variants
type JobKind string

const (
	JobKindInternship JobKind = "internship"
	JobKindAdHoc      JobKind = "adhoc"
)

// IsValid reports whether the kind is a known variant
func (k JobKind) IsValid() bool {
	return k == JobKindInternship || k == JobKindAdHoc
}

// JobStatus represents the lifecycle state of a posting
type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"  // Invisible to seekers, editable freely
	JobStatusPosted JobStatus = "posted" // Published and searchable
)

type Posting struct {
	ID          kernel.JobID          `db:"id" json:"id"`
	Kind        JobKind               `db:"kind" json:"kind"`
	Title       kernel.JobTitle       `db:"title" json:"title"`
	Company     kernel.Company        `db:"company" json:"company"`
	Location    kernel.Location       `db:"location" json:"location"`
	Description kernel.JobDescription `db:"description" json:"description"`
	Scope       kernel.JobScope       `db:"job_scope" json:"job_scope"`
	Tags        []kernel.Tag          `db:"tags" json:"tags"`
	EmployerID  kernel.UserID         `db:"employer_id" json:"employer_id"`
	Status      JobStatus             `db:"status" json:"status"`

	// Internship fields
	Stipend             *float64   `db:"stipend" json:"stipend,omitempty"`
	DurationMonths      *int       `db:"duration_months" json:"duration_months,omitempty"`
	YearOfStudy         *int       `db:"year_of_study" json:"year_of_study,omitempty"`
	FieldOfStudy        *string    `db:"field_of_study" json:"field_of_study,omitempty"`
	ApplicationDeadline *time.Time `db:"application_deadline" json:"application_deadline,omitempty"`

	// Ad-hoc fields
	PayPerHour *float64 `db:"pay_per_hour" json:"pay_per_hour,omitempty"`
	Area       *string  `db:"area" json:"area,omitempty"`

	// Denormalized counters. Not authoritative: the live applicant count is
	// derived from the application store.
	Views      int64 `db:"views" json:"views"`
	Applicants int64 `db:"applicants" json:"applicants"`

	PostedAt  *time.Time `db:"posted_at" json:"posted_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsDraft checks if the posting is still a draft
func (p *Posting) IsDraft() bool {
	return p.Status == JobStatusDraft
}

// IsPosted checks if the posting is published
func (p *Posting) IsPosted() bool {
	return p.Status == JobStatusPosted
}

// IsOwnedBy checks if the posting belongs to the given employer
func (p *Posting) IsOwnedBy(employerID kernel.UserID) bool {
	return p.EmployerID == employerID
}

// CanBeEdited checks if the posting can still be edited as a draft
func (p *Posting) CanBeEdited() bool {
	return p.IsDraft()
}

// ValidateForPublish checks the required-field gate for publishing.
// Drafts may miss any of these; a posting may not.
func (p *Posting) ValidateForPublish() error {
	missing := map[string]string{}

	if !p.Kind.IsValid() {
		missing["kind"] = "must be internship or adhoc"
	}
	if p.Title == "" {
		missing["title"] = "required"
	}
	if p.Company == "" {
		missing["company"] = "required"
	}
	if p.Location == "" {
		missing["location"] = "required"
	}
	if p.Description == "" {
		missing["description"] = "required"
	}
	if p.Scope == "" {
		missing["job_scope"] = "required"
	}

	switch p.Kind {
	case JobKindInternship:
		if p.Stipend == nil {
			missing["stipend"] = "required"
		} else if *p.Stipend < 0 {
			missing["stipend"] = "must be non-negative"
		}
	case JobKindAdHoc:
		if p.PayPerHour == nil {
			missing["pay_per_hour"] = "required"
		} else if *p.PayPerHour < 0 {
			missing["pay_per_hour"] = "must be non-negative"
		}
	}

	if len(missing) > 0 {
		err := ErrValidationFailed()
		for field, reason := range missing {
			err = err.WithDetail(field, reason)
		}
		return err
	}

	return nil
}

// Publish transitions the posting from draft to posted. The transition is
// one-way: there is no posted-to-draft path.
func (p *Posting) Publish() error {
	if p.IsPosted() {
		return ErrPostingAlreadyPublished().WithDetail("job_id", p.ID.String())
	}

	if err := p.ValidateForPublish(); err != nil {
		return err
	}

	now := time.Now()
	p.Status = JobStatusPosted
	p.PostedAt = &now
	p.UpdatedAt = now
	return nil
}

// UpdateDetails updates editable fields; blank common fields are left as-is
func (p *Posting) UpdateDetails(req UpdateDraftRequest) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Company != nil {
		p.Company = *req.Company
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Scope != nil {
		p.Scope = *req.Scope
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.Stipend != nil {
		p.Stipend = req.Stipend
	}
	if req.DurationMonths != nil {
		p.DurationMonths = req.DurationMonths
	}
	if req.YearOfStudy != nil {
		p.YearOfStudy = req.YearOfStudy
	}
	if req.FieldOfStudy != nil {
		p.FieldOfStudy = req.FieldOfStudy
	}
	if req.ApplicationDeadline != nil {
		p.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.PayPerHour != nil {
		p.PayPerHour = req.PayPerHour
	}
	if req.Area != nil {
		p.Area = req.Area
	}
	p.UpdatedAt = time.Now()
}
