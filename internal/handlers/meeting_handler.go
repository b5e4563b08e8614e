package handlers

import (
	"net/http"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	*BaseHandler
	meetings services.MeetingService
}

func NewMeetingHandler(base *BaseHandler, meetings services.MeetingService) *MeetingHandler {
	return &MeetingHandler{BaseHandler: base, meetings: meetings}
}

func (h *MeetingHandler) ScheduleMeeting(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	meeting, err := h.meetings.ScheduleMeeting(c.Request.Context(), h.UserID(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meeting)
}

func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	meeting, err := h.meetings.GetMeeting(h.UserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, meeting)
}

func (h *MeetingHandler) ListContractMeetings(c *gin.Context) {
	meetings, err := h.meetings.ListContractMeetings(h.UserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	var req dto.UpdateMeetingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	meeting, err := h.meetings.UpdateMeeting(c.Request.Context(), h.UserID(c), c.Param("id"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, meeting)
}
