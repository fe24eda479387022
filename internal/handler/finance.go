package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/dto"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/service"
)

type FinanceHandler struct{ svc service.FinanceService }

func NewFinanceHandler(svc service.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

func (h *FinanceHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

func (h *FinanceHandler) Commit(c *gin.Context) {
	var req dto.SaveTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Commit(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FinanceHandler) Update(c *gin.Context) {
	var req dto.SaveTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FinanceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FinanceHandler) CartPreview(c *gin.Context) {
	var req dto.CartPreviewRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.CartPreview(c.Request.Context(), req))
}

func (h *FinanceHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summary(c.Request.Context()))
}
