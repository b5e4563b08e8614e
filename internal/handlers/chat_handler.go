package handlers

import (
	"net/http"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	*BaseHandler
	chat services.ChatService
}

func NewChatHandler(base *BaseHandler, chat services.ChatService) *ChatHandler {
	return &ChatHandler{BaseHandler: base, chat: chat}
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.chat.SendMessage(c.Request.Context(), h.UserID(c), c.Param("id"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	page := h.IntQuery(c, "page", 1)
	limit := h.IntQuery(c, "limit", 50)

	resp, err := h.chat.GetMessages(h.UserID(c), c.Param("id"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) MarkThreadRead(c *gin.Context) {
	if err := h.chat.MarkThreadRead(h.UserID(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Messages marked as read"})
}

func (h *ChatHandler) UnreadCount(c *gin.Context) {
	count, err := h.chat.UnreadCount(h.UserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}
