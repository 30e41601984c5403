package auth

import (
	stderrors "errors"
	"strings"

	"codeberg.org/examdesk/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// gin context key for the verified identity claim
const identityKey = "auth_identity"

// RequireAuth validates bearer tokens and attaches the decoded identity to the
// request context. It must run before any handler or middleware that reads the
// identity.
func RequireAuth(codec *TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.Unauthorized(c, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			errors.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := codec.Verify(parts[1])
		if err != nil {
			// expired vs invalid is the only detail exposed to clients
			if stderrors.Is(err, ErrTokenExpired) {
				errors.Unauthorized(c, "token expired")
			} else {
				errors.Unauthorized(c, "invalid token")
			}

			c.Abort()
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// RequireAdmin enforces the admin role gate. It assumes RequireAuth already
// ran; a request reaching it without an identity is rejected as forbidden,
// not unauthenticated, since the ordering defect is server-side.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok || claims.Role != RoleAdmin {
			errors.Forbidden(c, "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// returns the identity attached by RequireAuth
func CurrentUser(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*Claims)

	return claims, ok
}
