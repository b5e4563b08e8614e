package services

import (
	"context"
	"errors"
	"fmt"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(ctx context.Context, freelancerID string, req dto.CreateApplicationRequest) (*models.Application, error)
	GetApplication(userID, applicationID string) (*models.Application, error)
	ListJobApplications(clientID, jobID string) ([]models.Application, error)
	ListMyApplications(freelancerID string) ([]models.Application, error)
	Decide(ctx context.Context, clientID, applicationID string, req dto.DecideApplicationRequest) (*models.Application, error)
}

type applicationService struct {
	applications  repositories.ApplicationRepository
	jobs          repositories.JobRepository
	notifications NotificationService
}

func NewApplicationService(
	applications repositories.ApplicationRepository,
	jobs repositories.JobRepository,
	notifications NotificationService,
) ApplicationService {
	return &applicationService{
		applications:  applications,
		jobs:          jobs,
		notifications: notifications,
	}
}

// Apply submits an application and notifies the job's client.
func (s *applicationService) Apply(ctx context.Context, freelancerID string, req dto.CreateApplicationRequest) (*models.Application, error) {
	job, err := s.jobs.FindByID(req.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrInvalidStatus("application", "Job is not open for applications")
	}
	if job.ClientID == freelancerID {
		return nil, apperrors.ErrInvalidOperation("application", "You cannot apply to your own job")
	}

	applied, err := s.applications.HasApplied(req.JobID, freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if applied {
		return nil, apperrors.ErrConflict(nil, "application", "You already applied to this job")
	}

	application := &models.Application{
		JobID:        req.JobID,
		FreelancerID: freelancerID,
		CoverLetter:  req.CoverLetter,
		ProposedRate: req.ProposedRate,
		Status:       models.ApplicationStatusPending,
	}
	if err := s.applications.Create(application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notify(ctx, dto.CreateNotificationInput{
		UserID:  job.ClientID,
		Type:    models.NotificationTypeApplicationReceived,
		Title:   "New Application: " + job.Title,
		Message: fmt.Sprintf("A freelancer applied to %q with a proposed rate of $%.2f/h.", job.Title, req.ProposedRate),
		Related: models.RelatedRef{ID: application.ID, Type: models.RelatedTypeApplication},
	})

	return application, nil
}

func (s *applicationService) GetApplication(userID, applicationID string) (*models.Application, error) {
	application, err := s.applications.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if application.FreelancerID != userID && (application.Job == nil || application.Job.ClientID != userID) {
		return nil, apperrors.NewForbiddenError("You are not a party to this application")
	}
	return application, nil
}

func (s *applicationService) ListJobApplications(clientID, jobID string) ([]models.Application, error) {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.ClientID != clientID {
		return nil, apperrors.NewForbiddenError("Only the job owner can view its applications")
	}

	applications, err := s.applications.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *applicationService) ListMyApplications(freelancerID string) ([]models.Application, error) {
	applications, err := s.applications.FindByFreelancer(freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// Decide accepts or rejects a pending application and notifies the
// freelancer of the outcome.
func (s *applicationService) Decide(ctx context.Context, clientID, applicationID string, req dto.DecideApplicationRequest) (*models.Application, error) {
	application, err := s.applications.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if application.Job == nil || application.Job.ClientID != clientID {
		return nil, apperrors.NewForbiddenError("Only the job owner can decide applications")
	}
	if application.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrInvalidStatus("application", "Application was already decided")
	}

	application.Status = models.ApplicationStatus(req.Status)
	if err := s.applications.Update(application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	notifType := models.NotificationTypeApplicationAccepted
	title := "Application Accepted"
	message := fmt.Sprintf("Your application for %q was accepted. The client will set up a contract next.", application.Job.Title)
	if application.Status == models.ApplicationStatusRejected {
		notifType = models.NotificationTypeApplicationRejected
		title = "Application Rejected"
		message = fmt.Sprintf("Your application for %q was not selected this time.", application.Job.Title)
	}

	s.notify(ctx, dto.CreateNotificationInput{
		UserID:  application.FreelancerID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Related: models.RelatedRef{ID: application.ID, Type: models.RelatedTypeApplication},
	})

	return application, nil
}

func (s *applicationService) notify(ctx context.Context, input dto.CreateNotificationInput) {
	if _, err := s.notifications.CreateNotification(ctx, input); err != nil {
		logger.WithError(err).Warn("application notification failed",
			"user_id", input.UserID, "type", input.Type)
	}
}
