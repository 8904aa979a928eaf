package seekersrv

import (
	"context"
	"errors"
	"time"

	"github.com/internlink/internlink/board/seeker"
	"github.com/internlink/internlink/pkg/errx"
	"github.com/internlink/internlink/pkg/kernel"
)

// SeekerService provides profile operations for job seekers
type SeekerService struct {
	seekerRepo seeker.Repository
}

// NewSeekerService creates a new instance of the seeker service
func NewSeekerService(seekerRepo seeker.Repository) *SeekerService {
	return &SeekerService{
		seekerRepo: seekerRepo,
	}
}

// GetProfile returns the caller's profile. A seeker who never saved one gets
// a blank profile rather than a 404.
func (s *SeekerService) GetProfile(ctx context.Context, userID kernel.UserID) (*seeker.Profile, error) {
	profile, err := s.seekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		var e *errx.Error
		if errors.As(err, &e) && e.Type == errx.TypeNotFound {
			now := time.Now()
			return &seeker.Profile{
				UserID:    userID,
				Skills:    []kernel.Tag{},
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		}
		return nil, errx.Wrap(err, "failed to get seeker profile", errx.TypeInternal)
	}

	return profile, nil
}

// UpdateProfile patches and persists the caller's profile
func (s *SeekerService) UpdateProfile(ctx context.Context, userID kernel.UserID, req seeker.UpdateProfileRequest) (*seeker.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.ApplyUpdate(req)

	if err := s.seekerRepo.Upsert(ctx, profile); err != nil {
		return nil, errx.Wrap(err, "failed to save seeker profile", errx.TypeInternal)
	}

	return profile, nil
}
