package handlers

import (
	"net/http"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	*BaseHandler
	contracts services.ContractService
}

func NewContractHandler(base *BaseHandler, contracts services.ContractService) *ContractHandler {
	return &ContractHandler{BaseHandler: base, contracts: contracts}
}

func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req dto.CreateContractRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contract, err := h.contracts.CreateContract(c.Request.Context(), h.UserID(c), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.contracts.GetContract(h.UserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *ContractHandler) ListContracts(c *gin.Context) {
	contracts, err := h.contracts.ListContracts(h.UserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

func (h *ContractHandler) UpdateContract(c *gin.Context) {
	var req dto.UpdateContractRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contract, err := h.contracts.UpdateContract(c.Request.Context(), h.UserID(c), c.Param("id"), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}
