package handlers

import (
	"net/http"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type WorkProgressHandler struct {
	*BaseHandler
	progress services.WorkProgressService
}

func NewWorkProgressHandler(base *BaseHandler, progress services.WorkProgressService) *WorkProgressHandler {
	return &WorkProgressHandler{BaseHandler: base, progress: progress}
}

func (h *WorkProgressHandler) SubmitProgress(c *gin.Context) {
	var req dto.CreateWorkProgressRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.progress.SubmitProgress(c.Request.Context(), h.UserID(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *WorkProgressHandler) ListContractProgress(c *gin.Context) {
	entries, err := h.progress.ListContractProgress(h.UserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": entries})
}

func (h *WorkProgressHandler) ReviewProgress(c *gin.Context) {
	var req dto.ReviewWorkProgressRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.progress.ReviewProgress(c.Request.Context(), h.UserID(c), c.Param("id"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
