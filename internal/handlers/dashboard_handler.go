package handlers

import (
	"net/http"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// DashboardHandler returns the signed-in user's activity summary.
type DashboardHandler struct {
	*BaseHandler
	container *services.ServiceContainer
}

func NewDashboardHandler(base *BaseHandler, container *services.ServiceContainer) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, container: container}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := h.UserID(c)

	contracts, err := h.container.ContractService.ListContracts(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	unread, err := h.container.NotificationService.GetUnreadCount(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	active := 0
	for i := range contracts {
		if contracts[i].Status == models.ContractStatusActive {
			active++
		}
	}

	summary := gin.H{
		"contracts":            contracts,
		"active_contracts":     active,
		"unread_notifications": unread,
	}

	if h.Role(c) == models.UserRoleFreelancer {
		applications, err := h.container.ApplicationService.ListMyApplications(userID)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		summary["applications"] = applications
	}

	c.JSON(http.StatusOK, summary)
}
