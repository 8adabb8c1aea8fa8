package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	user "blog-backend/internal/domains/user"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
)

// identityKey is the gin context key the verified identity lives under.
const identityKey = "identity"

// IdentityStore resolves a token subject to an account. The implementation
// must not return the stored password hash.
type IdentityStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// AuthMiddleware verifies the bearer token and attaches the resolved
// identity to the request. Requests failing any step never reach a handler:
// missing or malformed header and bad signatures are 401, a token whose
// subject no longer exists is 404.
func AuthMiddleware(tokens *jwt.Manager, users IdentityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, errStatus, errMsg := resolveIdentity(c, tokens, users)
		if identity == nil {
			response.ErrorResponse(c, errStatus, "UNAUTHORIZED", errMsg)
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the identity when a valid bearer token is
// present and degrades to anonymous otherwise. Public list reads use it to
// decide draft/archived visibility.
func OptionalAuthMiddleware(tokens *jwt.Manager, users IdentityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, _, _ := resolveIdentity(c, tokens, users); identity != nil {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

func resolveIdentity(c *gin.Context, tokens *jwt.Manager, users IdentityStore) (*user.User, int, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, 401, "Unauthorized - No token provided"
	}

	claims, err := tokens.ValidateAccessToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil, 401, "Unauthorized - Invalid token"
	}

	subjectID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, 401, "Unauthorized - Invalid token"
	}

	identity, err := users.GetByID(c.Request.Context(), subjectID)
	if err != nil {
		logger.Error("auth: failed to resolve token subject", err)
		return nil, 404, "User not found"
	}

	return identity, 0, ""
}

// GetIdentity returns the identity attached by AuthMiddleware or
// OptionalAuthMiddleware; ok is false for anonymous requests.
func GetIdentity(c *gin.Context) (*user.User, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*user.User)
	return identity, ok
}
