package services

import (
	"context"
	"errors"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

type JobService interface {
	CreateJob(ctx context.Context, clientID string, req dto.CreateJobRequest) (*models.Job, error)
	GetJob(jobID string) (*models.Job, error)
	ListJobs(query dto.JobListQuery) (*dto.JobListResponse, error)
	UpdateJob(clientID, jobID string, req dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(clientID, jobID string) error
}

type jobService struct {
	jobs          repositories.JobRepository
	notifications NotificationService
}

func NewJobService(jobs repositories.JobRepository, notifications NotificationService) JobService {
	return &jobService{jobs: jobs, notifications: notifications}
}

// CreateJob stores the posting and fans job_match notifications out to
// freelancers whose skills overlap. Fan-out failures are logged only;
// the posting always succeeds once the row is written.
func (s *jobService) CreateJob(ctx context.Context, clientID string, req dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Budget:          req.Budget,
		Deadline:        req.Deadline,
		Category:        req.Category,
		Status:          models.JobStatusOpen,
		ExperienceLevel: models.ExperienceLevel(req.ExperienceLevel),
		EstimatedHours:  req.EstimatedHours,
		ClientID:        clientID,
	}
	job.SetSkills(req.Skills)

	if err := s.jobs.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if count, err := s.notifications.NotifyMatchingFreelancers(ctx, job); err != nil {
		logger.WithError(err).Warn("job match fan-out failed", "job_id", job.ID)
	} else {
		logger.Info("job posted", "job_id", job.ID, "notified", count)
	}

	return job, nil
}

func (s *jobService) GetJob(jobID string) (*models.Job, error) {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) ListJobs(query dto.JobListQuery) (*dto.JobListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	jobs, total, err := s.jobs.FindJobs(repositories.JobCriteria{
		Status:   models.JobStatus(query.Status),
		Category: query.Category,
		ClientID: query.ClientID,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Jobs:       jobs,
		Total:      total,
		Page:       page,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *jobService) UpdateJob(clientID, jobID string, req dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.GetJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != clientID {
		return nil, apperrors.NewForbiddenError("Only the job owner can update it")
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Budget != nil {
		job.Budget = *req.Budget
	}
	if req.Deadline != nil {
		job.Deadline = *req.Deadline
	}
	if req.Skills != nil {
		job.SetSkills(req.Skills)
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.EstimatedHours != nil {
		job.EstimatedHours = *req.EstimatedHours
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}

	if err := s.jobs.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) DeleteJob(clientID, jobID string) error {
	job, err := s.GetJob(jobID)
	if err != nil {
		return err
	}
	if job.ClientID != clientID {
		return apperrors.NewForbiddenError("Only the job owner can delete it")
	}
	if job.Status == models.JobStatusInProgress {
		return apperrors.ErrInvalidStatus("job", "A job with an active contract cannot be deleted")
	}

	if err := s.jobs.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
