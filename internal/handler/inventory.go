package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/dto"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/service"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) Items(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Items(c.Request.Context()))
}

func (h *InventoryHandler) Movements(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Movements(c.Request.Context()))
}

func (h *InventoryHandler) Alerts(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.LowStock(c.Request.Context()))
}

func (h *InventoryHandler) RegisterMovement(c *gin.Context) {
	var req dto.MovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegisterMovement(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
