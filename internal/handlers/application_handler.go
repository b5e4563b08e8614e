package handlers

import (
	"net/http"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applications services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applications services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applications: applications}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applications.Apply(c.Request.Context(), h.UserID(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	application, err := h.applications.GetApplication(h.UserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	applications, err := h.applications.ListJobApplications(h.UserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	applications, err := h.applications.ListMyApplications(h.UserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *ApplicationHandler) Decide(c *gin.Context) {
	var req dto.DecideApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applications.Decide(c.Request.Context(), h.UserID(c), c.Param("id"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}
