package middleware

import (
	"github.com/gin-gonic/gin"

	"cms-backend/internal/shared/response"
)

// RequireRoles rejects requests whose authenticated role is not in the
// allow list. It only gates the route surface; ownership and
// transition rules are enforced again inside the content core.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "access denied: insufficient role")
		c.Abort()
	}
}
