package seeker

import (
	"github.com/internlink/internlink/pkg/kernel"
)

// UpdateProfileRequest - DTO for patching the caller's own profile
type UpdateProfileRequest struct {
	Name        *string       `json:"name,omitempty"`
	University  *string       `json:"university,omitempty"`
	Course      *string       `json:"course,omitempty"`
	YearOfStudy *int          `json:"year_of_study,omitempty"`
	Skills      *[]kernel.Tag `json:"skills,omitempty"`
	Bio         *string       `json:"bio,omitempty"`
}
