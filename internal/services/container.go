package services

import (
	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/email"
	"freelancehub_backend/internal/push"
	"freelancehub_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	JobService          JobService
	ApplicationService  ApplicationService
	ContractService     ContractService
	MeetingService      MeetingService
	WorkProgressService WorkProgressService
	ChatService         ChatService
	NotificationService NotificationService

	// Repositories the workers need directly.
	MeetingRepository  repositories.MeetingRepository
	ContractRepository repositories.ContractRepository
}

func NewServiceContainer(cfg *config.Config, db *gorm.DB, hub *push.Hub) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	contractRepo := repositories.NewContractRepository(db)
	meetingRepo := repositories.NewMeetingRepository(db)
	progressRepo := repositories.NewWorkProgressRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	portfolioRepo := repositories.NewPortfolioRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	preferenceRepo := repositories.NewPreferenceRepository(db)

	emailService := email.NewService(email.NewSMTPProvider(cfg.Email), cfg.Frontend.BaseURL)

	notificationService := NewNotificationService(
		notificationRepo, preferenceRepo, userRepo,
		emailService, hub, cfg.Notifications,
	)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo),
		UserService:         NewUserService(userRepo, portfolioRepo),
		JobService:          NewJobService(jobRepo, notificationService),
		ApplicationService:  NewApplicationService(applicationRepo, jobRepo, notificationService),
		ContractService:     NewContractService(contractRepo, applicationRepo, jobRepo, notificationService),
		MeetingService:      NewMeetingService(meetingRepo, contractRepo, notificationService),
		WorkProgressService: NewWorkProgressService(progressRepo, contractRepo, notificationService),
		ChatService:         NewChatService(messageRepo, contractRepo, notificationService, hub),
		NotificationService: notificationService,

		MeetingRepository:  meetingRepo,
		ContractRepository: contractRepo,
	}
}
