package postingsrv

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/internlink/internlink/board/posting"
	"github.com/internlink/internlink/pkg/errx"
	"github.com/internlink/internlink/pkg/kernel"
	"github.com/internlink/internlink/pkg/logx"
)

// PostingService provides business operations for job postings
type PostingService struct {
	postingRepo posting.Repository
	viewCounter posting.ViewCounter
}

// NewPostingService creates a new instance of the posting service
func NewPostingService(
	postingRepo posting.Repository,
	viewCounter posting.ViewCounter,
) *PostingService {
	return &PostingService{
		postingRepo: postingRepo,
		viewCounter: viewCounter,
	}
}

// SaveDraft creates a new draft posting. The kind is fixed at creation and
// cannot be changed later; all other fields may be left blank until publish.
func (s *PostingService) SaveDraft(ctx context.Context, employerID kernel.UserID, req posting.SaveDraftRequest) (*posting.PostingResponse, error) {
	if !req.Kind.IsValid() {
		return nil, posting.ErrInvalidKind().WithDetail("kind", string(req.Kind))
	}

	now := time.Now()
	draft := &posting.Posting{
		ID:                  kernel.NewJobID(uuid.NewString()),
		Kind:                req.Kind,
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Description:         req.Description,
		Scope:               req.Scope,
		Tags:                req.Tags,
		EmployerID:          employerID,
		Status:              posting.JobStatusDraft,
		Stipend:             req.Stipend,
		DurationMonths:      req.DurationMonths,
		YearOfStudy:         req.YearOfStudy,
		FieldOfStudy:        req.FieldOfStudy,
		ApplicationDeadline: req.ApplicationDeadline,
		PayPerHour:          req.PayPerHour,
		Area:                req.Area,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.postingRepo.Create(ctx, draft); err != nil {
		var e *errx.Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, errx.Wrap(err, "failed to save draft", errx.TypeInternal)
	}

	resp := draft.ToResponse()
	return &resp, nil
}

// CreatePosting creates and publishes a posting in one step. The draft is
// validated exactly as in Publish before it ever hits storage.
func (s *PostingService) CreatePosting(ctx context.Context, employerID kernel.UserID, req posting.SaveDraftRequest) (*posting.PostingResponse, error) {
	if !req.Kind.IsValid() {
		return nil, posting.ErrInvalidKind().WithDetail("kind", string(req.Kind))
	}

	now := time.Now()
	p := &posting.Posting{
		ID:                  kernel.NewJobID(uuid.NewString()),
		Kind:                req.Kind,
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Description:         req.Description,
		Scope:               req.Scope,
		Tags:                req.Tags,
		EmployerID:          employerID,
		Status:              posting.JobStatusDraft,
		Stipend:             req.Stipend,
		DurationMonths:      req.DurationMonths,
		YearOfStudy:         req.YearOfStudy,
		FieldOfStudy:        req.FieldOfStudy,
		ApplicationDeadline: req.ApplicationDeadline,
		PayPerHour:          req.PayPerHour,
		Area:                req.Area,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := p.Publish(); err != nil {
		return nil, err
	}

	if err := s.postingRepo.Create(ctx, p); err != nil {
		var e *errx.Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, errx.Wrap(err, "failed to create posting", errx.TypeInternal)
	}

	resp := p.ToResponse()
	return &resp, nil
}

// UpdateDraft patches an existing draft. Published postings reject edits.
func (s *PostingService) UpdateDraft(ctx context.Context, employerID kernel.UserID, id kernel.JobID, req posting.UpdateDraftRequest) (*posting.PostingResponse, error) {
	p, err := s.getOwned(ctx, employerID, id)
	if err != nil {
		return nil, err
	}

	if !p.CanBeEdited() {
		return nil, posting.ErrPostingAlreadyPublished().WithDetail("job_id", id.String())
	}

	p.UpdateDetails(req)

	if err := s.postingRepo.Update(ctx, id, p); err != nil {
		var e *errx.Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, errx.Wrap(err, "failed to update draft", errx.TypeInternal)
	}

	resp := p.ToResponse()
	return &resp, nil
}

// Publish transitions a draft to posted after the required-field gate passes
func (s *PostingService) Publish(ctx context.Context, employerID kernel.UserID, id kernel.JobID) (*posting.PostingResponse, error) {
	p, err := s.getOwned(ctx, employerID, id)
	if err != nil {
		return nil, err
	}

	if err := p.Publish(); err != nil {
		return nil, err
	}

	// Guarded update: only a draft row flips, concurrent publishes lose.
	// The row gets the same timestamp the response carries.
	if err := s.postingRepo.Publish(ctx, id, *p.PostedAt); err != nil {
		var e *errx.Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, errx.Wrap(err, "failed to publish posting", errx.TypeInternal)
	}

	resp := p.ToResponse()
	return &resp, nil
}

// GetPosting retrieves a posting. Drafts are only visible to their owner;
// viewing a published posting records a view.
func (s *PostingService) GetPosting(ctx context.Context, viewer *kernel.UserID, id kernel.JobID) (*posting.PostingResponse, error) {
	p, err := s.postingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.IsDraft() {
		if viewer == nil || !p.IsOwnedBy(*viewer) {
			// drafts are indistinguishable from absent postings to outsiders
			return nil, posting.ErrPostingNotFound().WithDetail("job_id", id.String())
		}
	} else if viewer == nil || !p.IsOwnedBy(*viewer) {
		s.recordView(ctx, p)
	}

	resp := p.ToResponse()
	return &resp, nil
}

// ListByEmployer retrieves an employer's own postings, drafts included
func (s *PostingService) ListByEmployer(ctx context.Context, employerID kernel.UserID, pagination kernel.PaginationOptions) (*posting.PaginatedPostingsResponse, error) {
	postings, err := s.postingRepo.ListByEmployer(ctx, employerID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list employer postings", errx.TypeInternal)
	}

	return toPaginatedResponse(postings), nil
}

// Search searches published postings
func (s *PostingService) Search(ctx context.Context, req posting.SearchPostingsRequest) (*posting.PaginatedPostingsResponse, error) {
	if req.Kind != "" && !req.Kind.IsValid() {
		return nil, posting.ErrInvalidKind().WithDetail("kind", string(req.Kind))
	}

	postings, err := s.postingRepo.Search(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to search postings", errx.TypeInternal)
	}

	return toPaginatedResponse(postings), nil
}

// DeletePosting removes an owned posting, draft or published
func (s *PostingService) DeletePosting(ctx context.Context, employerID kernel.UserID, id kernel.JobID) error {
	if _, err := s.getOwned(ctx, employerID, id); err != nil {
		return err
	}

	if err := s.postingRepo.Delete(ctx, id); err != nil {
		var e *errx.Error
		if errors.As(err, &e) {
			return e
		}
		return errx.Wrap(err, "failed to delete draft", errx.TypeInternal)
	}

	return nil
}

// GetStats returns the counters for an owned posting: the denormalized row
// counters plus the live numbers from the view counter and application store.
func (s *PostingService) GetStats(ctx context.Context, employerID kernel.UserID, id kernel.JobID) (*posting.PostingStatsResponse, error) {
	p, err := s.getOwned(ctx, employerID, id)
	if err != nil {
		return nil, err
	}

	liveApplicants, err := s.postingRepo.CountApplications(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	liveViews := p.Views
	if s.viewCounter != nil {
		if n, err := s.viewCounter.Count(ctx, id); err == nil {
			liveViews = n
		} else {
			logx.Warnf("view counter unavailable for posting %s: %v", id, err)
		}
	}

	return &posting.PostingStatsResponse{
		JobID:              p.ID,
		Title:              p.Title,
		Status:             p.Status,
		Views:              p.Views,
		LiveViews:          liveViews,
		Applicants:         p.Applicants,
		LiveApplicantCount: liveApplicants,
		PostedAt:           p.PostedAt,
		CreatedAt:          p.CreatedAt,
	}, nil
}

// getOwned loads a posting and enforces employer ownership
func (s *PostingService) getOwned(ctx context.Context, employerID kernel.UserID, id kernel.JobID) (*posting.Posting, error) {
	p, err := s.postingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !p.IsOwnedBy(employerID) {
		return nil, posting.ErrNotOwner().WithDetail("job_id", id.String())
	}

	return p, nil
}

// recordView bumps both counters; a dead Redis never fails the read path
func (s *PostingService) recordView(ctx context.Context, p *posting.Posting) {
	if s.viewCounter != nil {
		if _, err := s.viewCounter.Record(ctx, p.ID); err != nil {
			logx.Warnf("failed to record view for posting %s: %v", p.ID, err)
		}
	}
	if err := s.postingRepo.IncrementViews(ctx, p.ID); err != nil {
		logx.Warnf("failed to increment views for posting %s: %v", p.ID, err)
	}
}

func toPaginatedResponse(postings *kernel.Paginated[posting.Posting]) *posting.PaginatedPostingsResponse {
	responses := make([]posting.PostingResponse, 0, len(postings.Items))
	for i := range postings.Items {
		responses = append(responses, postings.Items[i].ToResponse())
	}

	return &kernel.Paginated[posting.PostingResponse]{
		Items: responses,
		Page:  postings.Page,
		Empty: postings.Empty,
	}
}
