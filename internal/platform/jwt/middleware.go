package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"controlastock_backend/internal/feature/auth/domain/entity"
)

// ContextUser is the Gin context key under which the authenticated user is stored.
const ContextUser = "currentUser"

// TokenVerifier resolves a raw bearer token to a user. The auth feature's
// TokenService is the production implementation; it checks signature, issuer,
// expiry and the issued-token store.
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that rejects requests without a valid
// bearer token and stores the resolved user in the request context.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		user, err := verifier.Verify(c.Request.Context(), raw)
		if err != nil {
			// The verifier already logged the specific cause.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser extracts the authenticated user placed by AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
