package handlers

import (
	"net/http"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	users services.UserService
}

func NewUserHandler(base *BaseHandler, users services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, users: users}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.users.GetProfile(h.UserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.users.UpdateProfile(h.UserID(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetProfile(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) AddPortfolioItem(c *gin.Context) {
	var req dto.PortfolioItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.users.AddPortfolioItem(h.UserID(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *UserHandler) GetPortfolio(c *gin.Context) {
	items, err := h.users.GetPortfolio(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"portfolio": items})
}

func (h *UserHandler) UpdatePortfolioItem(c *gin.Context) {
	var req dto.PortfolioItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.users.UpdatePortfolioItem(h.UserID(c), c.Param("id"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *UserHandler) DeletePortfolioItem(c *gin.Context) {
	if err := h.users.DeletePortfolioItem(h.UserID(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted"})
}
