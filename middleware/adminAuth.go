package middleware

import (
	"net/http"
	"strings"

	"medibook/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware resolves the bearer token to an active admin session
// and attaches it to the request context.
func AdminAuthMiddleware(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		session, err := svc.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminSession", session)
		c.Next()
	}
}
