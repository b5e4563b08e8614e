package handlers

import (
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/validator"
)

// AppHandlers is the registry the router wires routes against.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Job          *JobHandler
	Application  *ApplicationHandler
	Contract     *ContractHandler
	Meeting      *MeetingHandler
	WorkProgress *WorkProgressHandler
	Chat         *ChatHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.AuthService),
		User:         NewUserHandler(base, container.UserService),
		Job:          NewJobHandler(base, container.JobService),
		Application:  NewApplicationHandler(base, container.ApplicationService),
		Contract:     NewContractHandler(base, container.ContractService),
		Meeting:      NewMeetingHandler(base, container.MeetingService),
		WorkProgress: NewWorkProgressHandler(base, container.WorkProgressService),
		Chat:         NewChatHandler(base, container.ChatService),
		Notification: NewNotificationHandler(base, container.NotificationService),
		Dashboard:    NewDashboardHandler(base, container),
	}
}
