package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/dto"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/service"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
)

// SessionHandler serves the session role, the full snapshot, and the reset.
type SessionHandler struct {
	svc   service.SessionService
	store *store.Store
}

func NewSessionHandler(svc service.SessionService, st *store.Store) *SessionHandler {
	return &SessionHandler{svc: svc, store: st}
}

func (h *SessionHandler) Role(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RoleResponse{Role: string(h.svc.Role(c.Request.Context()))})
}

func (h *SessionHandler) SetRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	role, err := h.svc.SetRole(c.Request.Context(), req.Role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RoleResponse{Role: string(role)})
}

// State returns the entire current snapshot in one read, the way the
// dashboard bootstraps itself.
func (h *SessionHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Current())
}

func (h *SessionHandler) Reset(c *gin.Context) {
	h.svc.Reset(c.Request.Context())
	c.JSON(http.StatusOK, h.store.Current())
}
