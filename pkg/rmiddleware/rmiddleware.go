package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/gully/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware gates a route group to users holding at least one of the
// required roles. Must run after middleware.AuthMiddleware, which loads the
// user's roles into the context.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRoles, err := middleware.GetUserRolesFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		hasRequiredRole := false
		for _, userRole := range userRoles {
			for _, requiredRole := range requiredRoles {
				if strings.EqualFold(userRole, requiredRole) {
					hasRequiredRole = true
					break
				}
			}
			if hasRequiredRole {
				break
			}
		}

		if !hasRequiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "Forbidden",
				"message":    "You don't have permission to access this resource",
				"required":   requiredRoles,
				"user_roles": userRoles,
			})
			return
		}

		c.Next()
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("admin")
}

// ScorerMiddleware is a convenience middleware for scorer-only access
func ScorerMiddleware() gin.HandlerFunc {
	return RoleMiddleware("scorer")
}

// ScorerOrAdminMiddleware is a convenience middleware for scorer or admin access
func ScorerOrAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("scorer", "admin")
}
