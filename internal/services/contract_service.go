package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ContractService interface {
	CreateContract(ctx context.Context, clientID string, req dto.CreateContractRequest) (*models.Contract, error)
	GetContract(userID, contractID string) (*models.Contract, error)
	ListContracts(userID string) ([]models.Contract, error)
	UpdateContract(ctx context.Context, userID, contractID string, req dto.UpdateContractRequest) (*models.Contract, error)
}

type contractService struct {
	contracts     repositories.ContractRepository
	applications  repositories.ApplicationRepository
	jobs          repositories.JobRepository
	notifications NotificationService
}

func NewContractService(
	contracts repositories.ContractRepository,
	applications repositories.ApplicationRepository,
	jobs repositories.JobRepository,
	notifications NotificationService,
) ContractService {
	return &contractService{
		contracts:     contracts,
		applications:  applications,
		jobs:          jobs,
		notifications: notifications,
	}
}

// CreateContract turns an accepted application into a contract, moves
// the job to in-progress and notifies the freelancer.
func (s *contractService) CreateContract(ctx context.Context, clientID string, req dto.CreateContractRequest) (*models.Contract, error) {
	application, err := s.applications.FindByID(req.ApplicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if application.Job == nil || application.Job.ClientID != clientID {
		return nil, apperrors.NewForbiddenError("Only the job owner can create the contract")
	}
	if application.Status != models.ApplicationStatusAccepted {
		return nil, apperrors.ErrInvalidStatus("contract", "Contract requires an accepted application")
	}
	if application.Job.ContractID != nil {
		return nil, apperrors.ErrConflict(nil, "contract", "Job already has a contract")
	}

	milestones, err := json.Marshal(req.MilestoneAmounts)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	contract := &models.Contract{
		ApplicationID:    application.ID,
		ClientID:         clientID,
		FreelancerID:     application.FreelancerID,
		Terms:            req.Terms,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		PaymentSchedule:  req.PaymentSchedule,
		Status:           models.ContractStatusActive,
		TotalAmount:      req.TotalAmount,
		MilestoneAmounts: datatypes.JSON(milestones),
	}
	if err := s.contracts.Create(contract); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job := application.Job
	job.Status = models.JobStatusInProgress
	job.SelectedFreelancerID = &application.FreelancerID
	job.ContractID = &contract.ID
	if err := s.jobs.Update(job); err != nil {
		logger.WithError(err).Error("failed to link contract to job",
			"job_id", job.ID, "contract_id", contract.ID)
	}

	s.notify(ctx, dto.CreateNotificationInput{
		UserID:  contract.FreelancerID,
		Type:    models.NotificationTypeContractCreated,
		Title:   "Contract Created: " + job.Title,
		Message: fmt.Sprintf("A contract for %q was created. Total amount: $%.2f.", job.Title, contract.TotalAmount),
		Related: models.RelatedRef{ID: contract.ID, Type: models.RelatedTypeContract},
	})

	return contract, nil
}

func (s *contractService) GetContract(userID, contractID string) (*models.Contract, error) {
	contract, err := s.contracts.FindByID(contractID)
	if err != nil {
		if errors.Is(err, repositories.ErrContractNotFound) {
			return nil, apperrors.NewNotFoundError("contract", "Contract not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !contract.IsParticipant(userID) {
		return nil, apperrors.NewForbiddenError("You are not a party to this contract")
	}
	return contract, nil
}

func (s *contractService) ListContracts(userID string) ([]models.Contract, error) {
	contracts, err := s.contracts.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return contracts, nil
}

// UpdateContract applies the patch and notifies the counterparty.
func (s *contractService) UpdateContract(ctx context.Context, userID, contractID string, req dto.UpdateContractRequest) (*models.Contract, error) {
	contract, err := s.GetContract(userID, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != models.ContractStatusActive {
		return nil, apperrors.ErrInvalidStatus("contract", "Only active contracts can be updated")
	}

	if req.Terms != nil {
		contract.Terms = *req.Terms
	}
	if req.EndDate != nil {
		contract.EndDate = *req.EndDate
	}
	if req.PaymentSchedule != nil {
		contract.PaymentSchedule = *req.PaymentSchedule
	}
	if req.CurrentMilestone != nil {
		contract.CurrentMilestone = *req.CurrentMilestone
	}
	if req.Status != nil {
		contract.Status = models.ContractStatus(*req.Status)
	}

	if err := s.contracts.Update(contract); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notify(ctx, dto.CreateNotificationInput{
		UserID:  contract.OtherParty(userID),
		Type:    models.NotificationTypeContractUpdated,
		Title:   "Contract Updated",
		Message: "The terms of one of your contracts were updated.",
		Related: models.RelatedRef{ID: contract.ID, Type: models.RelatedTypeContract},
	})

	return contract, nil
}

func (s *contractService) notify(ctx context.Context, input dto.CreateNotificationInput) {
	if _, err := s.notifications.CreateNotification(ctx, input); err != nil {
		logger.WithError(err).Warn("contract notification failed",
			"user_id", input.UserID, "type", input.Type)
	}
}
