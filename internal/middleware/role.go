package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/apierror"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
)

// RequireRole rejects requests when the current session role is not in the
// allowed list. The role lives in the snapshot, not in a token: this is a
// view-and-action filter, not authentication.
func RequireRole(st *store.Store, roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		if !allowed[st.Current().UserRole] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes para el rol actual"))
			return
		}
		c.Next()
	}
}
