package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	f := &fakeJobRepo{jobs: map[string]*models.Job{}}
	for _, job := range jobs {
		f.jobs[job.ID] = job
	}
	return f
}

func (f *fakeJobRepo) Create(job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job.ID == "" {
		job.ID = "job-created"
	}
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job, ok := f.jobs[id]; ok {
		return job, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (f *fakeJobRepo) FindJobs(criteria repositories.JobCriteria) ([]models.Job, int64, error) {
	return nil, 0, nil
}

func (f *fakeJobRepo) Update(job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.jobs, id)
	return nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application
	seq          int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[string]*models.Application{}}
}

func (f *fakeApplicationRepo) Create(a *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	a.ID = fmt.Sprintf("app-%d", f.seq)
	f.applications[a.ID] = a
	return nil
}

func (f *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.applications[id]; ok {
		return a, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) FindByJob(jobID string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, a := range f.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) FindByFreelancer(freelancerID string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, a := range f.applications {
		if a.FreelancerID == freelancerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) HasApplied(jobID, freelancerID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.applications {
		if a.JobID == jobID && a.FreelancerID == freelancerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) Update(a *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applications[a.ID] = a
	return nil
}

func openJob(id, clientID string) *models.Job {
	job := &models.Job{Title: "Backend API", ClientID: clientID, Status: models.JobStatusOpen}
	job.ID = id
	return job
}

func TestApplyNotifiesClient(t *testing.T) {
	engine := newEngineFixture(freelancerWithSkills("client-1", "client@test.dev", ""))
	jobs := newFakeJobRepo(openJob("job-1", "client-1"))
	applications := newFakeApplicationRepo()
	svc := NewApplicationService(applications, jobs, engine.service)

	application, err := svc.Apply(context.Background(), "freelancer-1", dto.CreateApplicationRequest{
		JobID:        "job-1",
		CoverLetter:  "I have done this before.",
		ProposedRate: 45,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)

	rows := engine.notifications.rowsFor("client-1")
	require.Len(t, rows, 1)
	assert.Equal(t, models.NotificationTypeApplicationReceived, rows[0].Type)
	assert.Equal(t, models.RelatedRef{ID: application.ID, Type: models.RelatedTypeApplication}, rows[0].Related())
}

func TestApplyTwiceConflicts(t *testing.T) {
	engine := newEngineFixture()
	jobs := newFakeJobRepo(openJob("job-1", "client-1"))
	applications := newFakeApplicationRepo()
	svc := NewApplicationService(applications, jobs, engine.service)

	req := dto.CreateApplicationRequest{JobID: "job-1", CoverLetter: "Let me at it.", ProposedRate: 45}
	_, err := svc.Apply(context.Background(), "freelancer-1", req)
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), "freelancer-1", req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestApplyToOwnJobRejected(t *testing.T) {
	engine := newEngineFixture()
	jobs := newFakeJobRepo(openJob("job-1", "client-1"))
	svc := NewApplicationService(newFakeApplicationRepo(), jobs, engine.service)

	_, err := svc.Apply(context.Background(), "client-1", dto.CreateApplicationRequest{
		JobID: "job-1", CoverLetter: "Applying to myself.", ProposedRate: 45,
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestDecideNotifiesFreelancer(t *testing.T) {
	engine := newEngineFixture(freelancerWithSkills("freelancer-1", "dev@test.dev", "Go"))
	job := openJob("job-1", "client-1")
	jobs := newFakeJobRepo(job)
	applications := newFakeApplicationRepo()
	svc := NewApplicationService(applications, jobs, engine.service)

	application := &models.Application{
		JobID:        "job-1",
		FreelancerID: "freelancer-1",
		CoverLetter:  "Pick me.",
		ProposedRate: 45,
		Status:       models.ApplicationStatusPending,
		Job:          job,
	}
	require.NoError(t, applications.Create(application))

	decided, err := svc.Decide(context.Background(), "client-1", application.ID, dto.DecideApplicationRequest{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, decided.Status)

	rows := engine.notifications.rowsFor("freelancer-1")
	require.Len(t, rows, 1)
	assert.Equal(t, models.NotificationTypeApplicationAccepted, rows[0].Type)

	// A second decision is rejected.
	_, err = svc.Decide(context.Background(), "client-1", application.ID, dto.DecideApplicationRequest{Status: "rejected"})
	require.Error(t, err)
}

func TestDecideRequiresJobOwner(t *testing.T) {
	engine := newEngineFixture()
	job := openJob("job-1", "client-1")
	applications := newFakeApplicationRepo()
	svc := NewApplicationService(applications, newFakeJobRepo(job), engine.service)

	application := &models.Application{
		JobID: "job-1", FreelancerID: "freelancer-1",
		Status: models.ApplicationStatusPending, Job: job,
	}
	require.NoError(t, applications.Create(application))

	_, err := svc.Decide(context.Background(), "intruder", application.ID, dto.DecideApplicationRequest{Status: "accepted"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}
