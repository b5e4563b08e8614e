package handlers

import (
	"net/http"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notifications services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notifications services.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notifications: notifications}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	page := h.IntQuery(c, "page", 1)
	limit := h.IntQuery(c, "limit", 20)

	resp, err := h.notifications.GetUserNotifications(h.UserID(c), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notifications.GetUnreadCount(h.UserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	var req dto.MarkReadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.notifications.MarkAsRead(h.UserID(c), req.NotificationIDs); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications marked as read"})
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	if err := h.notifications.MarkAllAsRead(h.UserID(c)); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.notifications.DeleteNotification(h.UserID(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

func (h *NotificationHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.notifications.GetNotificationPreferences(h.UserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *NotificationHandler) UpdatePreferences(c *gin.Context) {
	var req dto.UpdatePreferencesRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	prefs, err := h.notifications.UpdateNotificationPreferences(h.UserID(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}
