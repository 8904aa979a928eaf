package seekersrv

import (
	"context"
	"testing"

	"github.com/internlink/internlink/board/seeker"
	"github.com/internlink/internlink/pkg/kernel"
)

type fakeSeekerRepo struct {
	profiles map[kernel.UserID]*seeker.Profile
}

func newFakeSeekerRepo() *fakeSeekerRepo {
	return &fakeSeekerRepo{profiles: make(map[kernel.UserID]*seeker.Profile)}
}

func (f *fakeSeekerRepo) GetByUserID(_ context.Context, userID kernel.UserID) (*seeker.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, seeker.ErrProfileNotFound()
	}
	cp := *p
	return &cp, nil
}

func (f *fakeSeekerRepo) Upsert(_ context.Context, profile *seeker.Profile) error {
	cp := *profile
	f.profiles[profile.UserID] = &cp
	return nil
}

func strPtr(s string) *string { return &s }

func TestGetProfileDefaultsToBlank(t *testing.T) {
	svc := NewSeekerService(newFakeSeekerRepo())

	profile, err := svc.GetProfile(context.Background(), "seeker-1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.UserID != "seeker-1" {
		t.Errorf("user id = %q", profile.UserID)
	}
	if profile.Name != "" || len(profile.Skills) != 0 {
		t.Error("fresh profile should be blank")
	}
}

func TestUpdateProfileUpsertsAndPatches(t *testing.T) {
	repo := newFakeSeekerRepo()
	svc := NewSeekerService(repo)
	userID := kernel.UserID("seeker-1")

	year := 2
	if _, err := svc.UpdateProfile(context.Background(), userID, seeker.UpdateProfileRequest{
		Name:        strPtr("Jane Doe"),
		University:  strPtr("NUS"),
		YearOfStudy: &year,
		Skills:      &[]kernel.Tag{"go", "sql"},
	}); err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	// second partial update leaves other fields alone
	updated, err := svc.UpdateProfile(context.Background(), userID, seeker.UpdateProfileRequest{
		Bio: strPtr("Backend-leaning CS undergrad"),
	})
	if err != nil {
		t.Fatalf("second UpdateProfile() error = %v", err)
	}
	if updated.Name != "Jane Doe" || updated.University != "NUS" {
		t.Errorf("earlier fields lost: %+v", updated)
	}
	if updated.Bio != "Backend-leaning CS undergrad" {
		t.Errorf("bio = %q", updated.Bio)
	}
	if len(updated.Skills) != 2 {
		t.Errorf("skills = %v", updated.Skills)
	}

	stored := repo.profiles[userID]
	if stored.Bio != updated.Bio {
		t.Error("update not persisted")
	}
}
