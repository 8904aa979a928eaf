package applicationsrv

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/internlink/internlink/board/application"
	"github.com/internlink/internlink/board/posting"
	"github.com/internlink/internlink/pkg/auth"
	"github.com/internlink/internlink/pkg/errx"
	"github.com/internlink/internlink/pkg/kernel"
)

// ============================================================================
// In-memory fakes
// ============================================================================

type appKey struct {
	job    kernel.JobID
	seeker kernel.UserID
}

type fakeApplicationRepo struct {
	apps   map[kernel.ApplicationID]*application.Application
	byPair map[appKey]kernel.ApplicationID
	jobs   *fakePostingRepo
}

func newFakeApplicationRepo(jobs *fakePostingRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:   make(map[kernel.ApplicationID]*application.Application),
		byPair: make(map[appKey]kernel.ApplicationID),
		jobs:   jobs,
	}
}

func (f *fakeApplicationRepo) Create(_ context.Context, app *application.Application) error {
	key := appKey{app.JobID, app.SeekerID}
	if _, ok := f.byPair[key]; ok {
		// mirrors the unique index, not the advisory pre-check
		return application.ErrDuplicateApplication()
	}
	cp := *app
	f.apps[app.ID] = &cp
	f.byPair[key] = app.ID
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id kernel.ApplicationID) (*application.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}
	cp := *app
	return &cp, nil
}

func (f *fakeApplicationRepo) GetByJobAndSeeker(_ context.Context, jobID kernel.JobID, seekerID kernel.UserID) (*application.Application, error) {
	id, ok := f.byPair[appKey{jobID, seekerID}]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}
	cp := *f.apps[id]
	return &cp, nil
}

func (f *fakeApplicationRepo) ExistsByJobAndSeeker(_ context.Context, jobID kernel.JobID, seekerID kernel.UserID) (bool, error) {
	_, ok := f.byPair[appKey{jobID, seekerID}]
	return ok, nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, id kernel.ApplicationID, app *application.Application) error {
	if _, ok := f.apps[id]; !ok {
		return application.ErrApplicationNotFound()
	}
	cp := *app
	f.apps[id] = &cp
	return nil
}

func (f *fakeApplicationRepo) Delete(_ context.Context, id kernel.ApplicationID) error {
	app, ok := f.apps[id]
	if !ok {
		return application.ErrApplicationNotFound()
	}
	delete(f.byPair, appKey{app.JobID, app.SeekerID})
	delete(f.apps, id)
	return nil
}

func (f *fakeApplicationRepo) ListBySeeker(_ context.Context, seekerID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.ApplicationWithJob], error) {
	var items []application.ApplicationWithJob
	for _, app := range f.apps {
		if app.SeekerID != seekerID {
			continue
		}
		item := application.ApplicationWithJob{Application: *app}
		if p, ok := f.jobs.postings[app.JobID]; ok {
			item.JobTitle = string(p.Title)
			item.Company = string(p.Company)
			item.Location = string(p.Location)
			item.JobStatus = string(p.Status)
		}
		items = append(items, item)
	}
	return &kernel.Paginated[application.ApplicationWithJob]{
		Items: items,
		Page:  kernel.NewPage(pagination, len(items)),
		Empty: len(items) == 0,
	}, nil
}

func (f *fakeApplicationRepo) ListByJob(_ context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var items []application.Application
	for _, app := range f.apps {
		if app.JobID == jobID {
			items = append(items, *app)
		}
	}
	return &kernel.Paginated[application.Application]{
		Items: items,
		Page:  kernel.NewPage(pagination, len(items)),
		Empty: len(items) == 0,
	}, nil
}

func (f *fakeApplicationRepo) CountByJob(_ context.Context, jobID kernel.JobID) (int64, error) {
	var n int64
	for _, app := range f.apps {
		if app.JobID == jobID {
			n++
		}
	}
	return n, nil
}

type fakePostingRepo struct {
	postings map[kernel.JobID]*posting.Posting
}

func newFakePostingRepo() *fakePostingRepo {
	return &fakePostingRepo{postings: make(map[kernel.JobID]*posting.Posting)}
}

func (f *fakePostingRepo) Create(_ context.Context, p *posting.Posting) error {
	cp := *p
	f.postings[p.ID] = &cp
	return nil
}

func (f *fakePostingRepo) Update(_ context.Context, id kernel.JobID, p *posting.Posting) error {
	cp := *p
	f.postings[id] = &cp
	return nil
}

func (f *fakePostingRepo) GetByID(_ context.Context, id kernel.JobID) (*posting.Posting, error) {
	p, ok := f.postings[id]
	if !ok {
		return nil, posting.ErrPostingNotFound()
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostingRepo) Delete(_ context.Context, id kernel.JobID) error {
	delete(f.postings, id)
	return nil
}

func (f *fakePostingRepo) ListByEmployer(_ context.Context, _ kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[posting.Posting], error) {
	return &kernel.Paginated[posting.Posting]{Page: kernel.NewPage(pagination, 0), Empty: true}, nil
}

func (f *fakePostingRepo) Search(_ context.Context, req posting.SearchPostingsRequest) (*kernel.Paginated[posting.Posting], error) {
	return &kernel.Paginated[posting.Posting]{Page: kernel.NewPage(req.Pagination, 0), Empty: true}, nil
}

func (f *fakePostingRepo) Publish(_ context.Context, id kernel.JobID, postedAt time.Time) error {
	if p, ok := f.postings[id]; ok {
		p.Status = posting.JobStatusPosted
		p.PostedAt = &postedAt
	}
	return nil
}

func (f *fakePostingRepo) Exists(_ context.Context, id kernel.JobID) (bool, error) {
	_, ok := f.postings[id]
	return ok, nil
}

func (f *fakePostingRepo) IncrementViews(_ context.Context, _ kernel.JobID) error { return nil }

func (f *fakePostingRepo) IncrementApplicants(_ context.Context, id kernel.JobID) error {
	if p, ok := f.postings[id]; ok {
		p.Applicants++
	}
	return nil
}

func (f *fakePostingRepo) CountApplications(_ context.Context, _ kernel.JobID) (int64, error) {
	return 0, nil
}

// ============================================================================
// Helpers
// ============================================================================

const (
	employerID = kernel.UserID("emp-1")
	seekerID   = kernel.UserID("seeker-1")
)

func newService(t *testing.T) (*ApplicationService, *fakeApplicationRepo, *fakePostingRepo, kernel.JobID) {
	t.Helper()
	jobs := newFakePostingRepo()
	apps := newFakeApplicationRepo(jobs)
	svc := NewApplicationService(apps, jobs)

	stipend := 1000.0
	jobID := kernel.JobID("job-1")
	jobs.postings[jobID] = &posting.Posting{
		ID:          jobID,
		Kind:        posting.JobKindInternship,
		Title:       "Backend Intern",
		Company:     "Acme Pte Ltd",
		Location:    "Singapore",
		Description: "Work on the billing service",
		Scope:       "Go backend",
		EmployerID:  employerID,
		Status:      posting.JobStatusPosted,
		Stipend:     &stipend,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	return svc, apps, jobs, jobID
}

func seekerCtx(id kernel.UserID) *auth.AuthContext {
	return &auth.AuthContext{UserID: id, Role: auth.RoleJobSeeker}
}

func employerCtx(id kernel.UserID) *auth.AuthContext {
	return &auth.AuthContext{UserID: id, Role: auth.RoleEmployer}
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	var e *errx.Error
	if !errors.As(err, &e) {
		t.Fatalf("error is %T, want *errx.Error: %v", err, err)
	}
	return e.Code
}

// ============================================================================
// Tests
// ============================================================================

func TestCreateApplicationWithoutResume(t *testing.T) {
	svc, repo, jobs, jobID := newService(t)

	created, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
	})
	if err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}
	if created.Status != application.StatusPending {
		t.Errorf("status = %q, want Pending", created.Status)
	}
	if created.HasResume {
		t.Error("HasResume = true for an application without a resume")
	}
	// blank placeholder, not absent
	stored := repo.apps[created.ID]
	if stored.Resume.Data != "" {
		t.Errorf("stored resume data = %q, want empty", stored.Resume.Data)
	}
	if stored.JobKind != posting.JobKindInternship {
		t.Errorf("job kind = %q, want internship", stored.JobKind)
	}
	if jobs.postings[jobID].Applicants != 1 {
		t.Errorf("applicants counter = %d, want 1", jobs.postings[jobID].Applicants)
	}
}

func TestCreateApplicationDuplicate(t *testing.T) {
	svc, _, _, jobID := newService(t)

	req := application.CreateApplicationRequest{JobID: jobID, SeekerID: seekerID}
	if _, err := svc.CreateApplication(context.Background(), req); err != nil {
		t.Fatalf("first CreateApplication() error = %v", err)
	}

	_, err := svc.CreateApplication(context.Background(), req)
	if code := errCode(t, err); code != "APPLICATION:DUPLICATE" {
		t.Errorf("code = %q, want APPLICATION:DUPLICATE", code)
	}
}

func TestCreateApplicationToDraftFails(t *testing.T) {
	svc, _, jobs, jobID := newService(t)
	jobs.postings[jobID].Status = posting.JobStatusDraft

	_, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
	})
	if code := errCode(t, err); code != "APPLICATION:JOB_NOT_OPEN" {
		t.Errorf("code = %q, want APPLICATION:JOB_NOT_OPEN", code)
	}
}

func TestCreateApplicationUnknownJob(t *testing.T) {
	svc, _, _, _ := newService(t)

	_, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    "job-missing",
		SeekerID: seekerID,
	})
	if code := errCode(t, err); code != "POSTING:NOT_FOUND" {
		t.Errorf("code = %q, want POSTING:NOT_FOUND", code)
	}
}

func TestCreateApplicationRejectsBadResume(t *testing.T) {
	svc, _, _, jobID := newService(t)

	_, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
		Resume:   &application.Resume{Data: "!!not-base64!!"},
	})
	if code := errCode(t, err); code != "APPLICATION:INVALID_RESUME" {
		t.Errorf("code = %q, want APPLICATION:INVALID_RESUME", code)
	}
}

func TestResumeRoundTripThroughService(t *testing.T) {
	svc, _, _, jobID := newService(t)

	raw := []byte("%PDF-1.4 resume body")
	created, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
		Resume: &application.Resume{
			Data: base64.StdEncoding.EncodeToString(raw),
			Name: "jane.pdf",
			Type: "application/pdf",
			Size: int64(len(raw)),
		},
	})
	if err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}

	dl, err := svc.GetResume(context.Background(), seekerCtx(seekerID), created.ID)
	if err != nil {
		t.Fatalf("GetResume() error = %v", err)
	}
	if !bytes.Equal(dl.Data, raw) {
		t.Error("resume bytes differ from the uploaded content")
	}
	if dl.ContentType != "application/pdf" || dl.Filename != "jane.pdf" {
		t.Errorf("metadata = %q/%q", dl.ContentType, dl.Filename)
	}
}

func TestGetResumeBlankIsNotFound(t *testing.T) {
	svc, _, _, jobID := newService(t)

	created, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
	})
	if err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}

	_, err = svc.GetResume(context.Background(), seekerCtx(seekerID), created.ID)
	if code := errCode(t, err); code != "APPLICATION:RESUME_NOT_FOUND" {
		t.Errorf("code = %q, want APPLICATION:RESUME_NOT_FOUND", code)
	}
}

func TestUpdateStatusByCompoundKey(t *testing.T) {
	svc, _, _, jobID := newService(t)

	if _, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
	}); err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), employerID, application.UpdateStatusRequest{
		JobID:    jobID,
		SeekerID: seekerID,
		Status:   application.StatusAccepted,
	})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != application.StatusAccepted {
		t.Errorf("status = %q, want Accepted", updated.Status)
	}
	if updated.ReviewedAt == nil {
		t.Error("ReviewedAt not stamped on transition")
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, repo, _, jobID := newService(t)

	created, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
	})
	if err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), employerID, application.UpdateStatusRequest{
		JobID:    jobID,
		SeekerID: seekerID,
		Status:   "Shortlisted",
	})
	if code := errCode(t, err); code != "APPLICATION:INVALID_STATUS" {
		t.Errorf("code = %q, want APPLICATION:INVALID_STATUS", code)
	}
	if repo.apps[created.ID].Status != application.StatusPending {
		t.Error("stored status mutated by a rejected transition")
	}
}

func TestUpdateStatusByNonOwnerEmployerFails(t *testing.T) {
	svc, _, _, jobID := newService(t)

	if _, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
	}); err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}

	_, err := svc.UpdateStatus(context.Background(), "emp-2", application.UpdateStatusRequest{
		JobID:    jobID,
		SeekerID: seekerID,
		Status:   application.StatusAccepted,
	})
	if code := errCode(t, err); code != "POSTING:NOT_OWNER" {
		t.Errorf("code = %q, want POSTING:NOT_OWNER", code)
	}
}

func TestWithdrawRemovesDiscoverability(t *testing.T) {
	svc, _, _, jobID := newService(t)

	created, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
	})
	if err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}

	if err := svc.Withdraw(context.Background(), seekerID, created.ID); err != nil {
		t.Fatalf("Withdraw() error = %v", err)
	}

	_, err = svc.GetApplication(context.Background(), seekerCtx(seekerID), created.ID)
	if code := errCode(t, err); code != "APPLICATION:NOT_FOUND" {
		t.Errorf("GetApplication code = %q, want APPLICATION:NOT_FOUND", code)
	}

	list, err := svc.ListMyApplications(context.Background(), seekerID, kernel.PaginationOptions{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("ListMyApplications() error = %v", err)
	}
	if !list.Empty {
		t.Errorf("list still has %d applications after withdrawal", len(list.Items))
	}

	// withdrawing frees the slot for a fresh application
	if _, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
	}); err != nil {
		t.Errorf("re-apply after withdrawal error = %v", err)
	}
}

func TestWithdrawByNonOwnerFails(t *testing.T) {
	svc, _, _, jobID := newService(t)

	created, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
	})
	if err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}

	err = svc.Withdraw(context.Background(), "seeker-2", created.ID)
	if code := errCode(t, err); code != "APPLICATION:NOT_OWNER" {
		t.Errorf("code = %q, want APPLICATION:NOT_OWNER", code)
	}
}

func TestListMyApplicationsJoinsJobDetails(t *testing.T) {
	svc, _, _, jobID := newService(t)

	if _, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
	}); err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), employerID, application.UpdateStatusRequest{
		JobID:    jobID,
		SeekerID: seekerID,
		Status:   application.StatusAccepted,
	}); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	list, err := svc.ListMyApplications(context.Background(), seekerID, kernel.PaginationOptions{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("ListMyApplications() error = %v", err)
	}
	if len(list.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(list.Items))
	}
	got := list.Items[0]
	if got.JobTitle != "Backend Intern" || got.Company != "Acme Pte Ltd" {
		t.Errorf("job details = %q/%q", got.JobTitle, got.Company)
	}
	if got.Status != application.StatusAccepted {
		t.Errorf("status = %q, want Accepted", got.Status)
	}
}

func TestGetApplicationVisibility(t *testing.T) {
	svc, _, _, jobID := newService(t)

	created, err := svc.CreateApplication(context.Background(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: seekerID,
	})
	if err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}

	if _, err := svc.GetApplication(context.Background(), seekerCtx(seekerID), created.ID); err != nil {
		t.Errorf("owning seeker: error = %v", err)
	}
	if _, err := svc.GetApplication(context.Background(), employerCtx(employerID), created.ID); err != nil {
		t.Errorf("posting employer: error = %v", err)
	}

	_, err = svc.GetApplication(context.Background(), seekerCtx("seeker-2"), created.ID)
	if code := errCode(t, err); code != "APPLICATION:NOT_OWNER" {
		t.Errorf("other seeker: code = %q, want APPLICATION:NOT_OWNER", code)
	}
	_, err = svc.GetApplication(context.Background(), employerCtx("emp-2"), created.ID)
	if code := errCode(t, err); code != "APPLICATION:NOT_OWNER" {
		t.Errorf("other employer: code = %q, want APPLICATION:NOT_OWNER", code)
	}
}
