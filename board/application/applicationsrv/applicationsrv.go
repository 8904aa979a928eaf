package applicationsrv

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/internlink/internlink/board/application"
	"github.com/internlink/internlink/board/posting"
	"github.com/internlink/internlink/pkg/auth"
	"github.com/internlink/internlink/pkg/errx"
	"github.com/internlink/internlink/pkg/kernel"
	"github.com/internlink/internlink/pkg/logx"
)

// ApplicationService provides business operations for applications
type ApplicationService struct {
	applicationRepo application.Repository
	postingRepo     posting.Repository
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	postingRepo posting.Repository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		postingRepo:     postingRepo,
	}
}

// ResumeDownload carries a decoded resume ready to serve
type ResumeDownload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// CreateApplication applies a seeker to a posted job. The pre-check on the
// (job, seeker) pair is a fast path for a friendly error; the unique index in
// the store is what actually enforces single application under races.
func (s *ApplicationService) CreateApplication(ctx context.Context, req application.CreateApplicationRequest) (*application.ApplicationResponse, error) {
	p, err := s.postingRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if !p.IsPosted() {
		return nil, application.ErrJobNotOpen().WithDetail("job_id", req.JobID.String())
	}

	exists, err := s.applicationRepo.ExistsByJobAndSeeker(ctx, req.JobID, req.SeekerID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check existing application", errx.TypeInternal)
	}
	if exists {
		return nil, application.ErrDuplicateApplication().
			WithDetail("job_id", req.JobID.String())
	}

	// The resume object is always present; blank fields mean none uploaded.
	resume := application.Resume{}
	if req.Resume != nil {
		if err := req.Resume.Validate(); err != nil {
			return nil, err
		}
		resume = *req.Resume
	}

	now := time.Now()
	app := &application.Application{
		ID:          kernel.NewApplicationID(uuid.NewString()),
		JobID:       req.JobID,
		SeekerID:    req.SeekerID,
		JobKind:     p.Kind,
		Status:      application.StatusPending,
		CoverLetter: req.CoverLetter,
		Resume:      resume,
		AppliedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		var e *errx.Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	// Cosmetic counter; the live count always comes from the store.
	if err := s.postingRepo.IncrementApplicants(ctx, req.JobID); err != nil {
		logx.Warnf("failed to increment applicants for job %s: %v", req.JobID, err)
	}

	resp := app.ToResponse()
	return &resp, nil
}

// GetApplication retrieves one application, visible to the owning seeker and
// to the employer who owns the posting
func (s *ApplicationService) GetApplication(ctx context.Context, caller *auth.AuthContext, id kernel.ApplicationID) (*application.ApplicationResponse, error) {
	app, err := s.authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	resp := app.ToResponse()
	return &resp, nil
}

// ListMyApplications retrieves a seeker's applications with job details
// joined in. The query goes straight to the application store by seeker id.
func (s *ApplicationService) ListMyApplications(ctx context.Context, seekerID kernel.UserID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsWithJobResponse, error) {
	apps, err := s.applicationRepo.ListBySeeker(ctx, seekerID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list seeker applications", errx.TypeInternal)
	}

	responses := make([]application.ApplicationWithJobResponse, 0, len(apps.Items))
	for i := range apps.Items {
		item := &apps.Items[i]
		responses = append(responses, application.ApplicationWithJobResponse{
			ApplicationResponse: item.ToResponse(),
			JobTitle:            kernel.JobTitle(item.JobTitle),
			Company:             kernel.Company(item.Company),
			Location:            kernel.Location(item.Location),
			JobStatus:           posting.JobStatus(item.JobStatus),
		})
	}

	return &kernel.Paginated[application.ApplicationWithJobResponse]{
		Items: responses,
		Page:  apps.Page,
		Empty: apps.Empty,
	}, nil
}

// ListApplicationsForJob retrieves the applicants for an owned posting
func (s *ApplicationService) ListApplicationsForJob(ctx context.Context, employerID kernel.UserID, jobID kernel.JobID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	p, err := s.postingRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !p.IsOwnedBy(employerID) {
		return nil, posting.ErrNotOwner().WithDetail("job_id", jobID.String())
	}

	apps, err := s.applicationRepo.ListByJob(ctx, jobID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list job applications", errx.TypeInternal)
	}

	responses := make([]application.ApplicationResponse, 0, len(apps.Items))
	for i := range apps.Items {
		responses = append(responses, apps.Items[i].ToResponse())
	}

	return &kernel.Paginated[application.ApplicationResponse]{
		Items: responses,
		Page:  apps.Page,
		Empty: apps.Empty,
	}, nil
}

// UpdateStatus transitions an application addressed by its compound
// (job, seeker) key. Only the employer who owns the posting may call it.
func (s *ApplicationService) UpdateStatus(ctx context.Context, employerID kernel.UserID, req application.UpdateStatusRequest) (*application.ApplicationResponse, error) {
	if !req.Status.IsValid() {
		return nil, application.ErrInvalidStatus().WithDetail("status", string(req.Status))
	}

	p, err := s.postingRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if !p.IsOwnedBy(employerID) {
		return nil, posting.ErrNotOwner().WithDetail("job_id", req.JobID.String())
	}

	app, err := s.applicationRepo.GetByJobAndSeeker(ctx, req.JobID, req.SeekerID)
	if err != nil {
		return nil, err
	}

	if err := app.Transition(req.Status); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, app.ID, app); err != nil {
		var e *errx.Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, errx.Wrap(err, "failed to update application status", errx.TypeInternal)
	}

	resp := app.ToResponse()
	return &resp, nil
}

// Withdraw deletes the seeker's own application
func (s *ApplicationService) Withdraw(ctx context.Context, seekerID kernel.UserID, id kernel.ApplicationID) error {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !app.IsOwnedBy(seekerID) {
		return application.ErrNotOwner().WithDetail("application_id", id.String())
	}

	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		var e *errx.Error
		if errors.As(err, &e) {
			return e
		}
		return errx.Wrap(err, "failed to withdraw application", errx.TypeInternal)
	}

	return nil
}

// GetResume decodes the stored resume for download. Visible to the owning
// seeker and the posting's employer; blank resumes read as not found.
func (s *ApplicationService) GetResume(ctx context.Context, caller *auth.AuthContext, id kernel.ApplicationID) (*ResumeDownload, error) {
	app, err := s.authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	data, contentType, name, err := app.Resume.Decode()
	if err != nil {
		return nil, err
	}

	return &ResumeDownload{
		Data:        data,
		ContentType: contentType,
		Filename:    name,
	}, nil
}

// authorize loads an application and checks the caller is the owning seeker
// or the employer who owns the posting
func (s *ApplicationService) authorize(ctx context.Context, caller *auth.AuthContext, id kernel.ApplicationID) (*application.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if caller == nil {
		return nil, application.ErrNotOwner().WithDetail("application_id", id.String())
	}

	if caller.Role == auth.RoleJobSeeker {
		if !app.IsOwnedBy(caller.UserID) {
			return nil, application.ErrNotOwner().WithDetail("application_id", id.String())
		}
		return app, nil
	}

	p, err := s.postingRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if !p.IsOwnedBy(caller.UserID) {
		return nil, application.ErrNotOwner().WithDetail("application_id", id.String())
	}

	return app, nil
}
