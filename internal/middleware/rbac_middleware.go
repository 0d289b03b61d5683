package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface; any package with a matching EnforceForUser
// method fits, which keeps middleware free of a dependency on the rbac package.
type RBACService interface {
	EnforceForUser(ctx context.Context, userID, resource, action string) (bool, error)
}

// RBACAuthorize gates a route on the caller's employee role. It runs after
// EmployeeSession + ExtractUserID; the user → employee → role resolution lives
// behind the service.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id_validated")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		allowed, err := service.EnforceForUser(c.Request.Context(), userID, resource, action)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "You do not have permission to access this resource",
			})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "You do not have permission to access this resource",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
