package seeker

import (
	"time"

	"github.com/internlink/internlink/pkg/kernel"
)

// Profile is a job seeker's public profile. It is keyed by the account id;
// every jobseeker account has at most one.
type Profile struct {
	UserID      kernel.UserID `db:"user_id" json:"user_id"`
	Name        string        `db:"name" json:"name"`
	University  string        `db:"university" json:"university,omitempty"`
	Course      string        `db:"course" json:"course,omitempty"`
	YearOfStudy *int          `db:"year_of_study" json:"year_of_study,omitempty"`
	Skills      []kernel.Tag  `db:"-" json:"skills"`
	Bio         string        `db:"bio" json:"bio,omitempty"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// ApplyUpdate patches the profile with the set fields of the request
func (p *Profile) ApplyUpdate(req UpdateProfileRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.University != nil {
		p.University = *req.University
	}
	if req.Course != nil {
		p.Course = *req.Course
	}
	if req.YearOfStudy != nil {
		p.YearOfStudy = req.YearOfStudy
	}
	if req.Skills != nil {
		p.Skills = *req.Skills
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	p.UpdatedAt = time.Now()
}
