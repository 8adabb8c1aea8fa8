package middleware

import (
	"github.com/gin-gonic/gin"

	user "blog-backend/internal/domains/user"
	"blog-backend/internal/shared/response"
)

// requireRoles is the role gate: a predicate over the closed role enum,
// applied after AuthMiddleware has attached an identity. Failure is 403,
// distinct from the verifier's 401.
func requireRoles(message string, roles ...user.Role) gin.HandlerFunc {
	allowed := make(map[user.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || !allowed[identity.Role] {
			response.Forbidden(c, message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly restricts the route to admins.
func AdminOnly() gin.HandlerFunc {
	return requireRoles("Access denied. Admin role required.", user.RoleAdmin)
}

// AuthorOrAdmin restricts the route to authors and admins.
func AuthorOrAdmin() gin.HandlerFunc {
	return requireRoles("Access denied. Author or Admin role required.", user.RoleAuthor, user.RoleAdmin)
}
