package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequireRoles lets a request through only when the authenticated principal
// holds one of the given roles. It must run after AuthMiddleware.
func RequireRoles(roles ...domain.UserRole) gin.HandlerFunc {
	allowed := make(map[domain.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		if !allowed[principal.Role] {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted for route",
				slog.String("route", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You do not have permission to perform this action"})
			return
		}
		c.Next()
	}
}
