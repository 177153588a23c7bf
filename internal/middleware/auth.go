package middleware

import (
	"strings"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/auth"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/constants"
	apierrors "github.com/GeorgeR-1/jd-ticketing-project-rest/internal/errors"
	"github.com/gin-gonic/gin"
)

// TokenDecoder turns a session token into the caller identity
type TokenDecoder interface {
	Decode(token string) (*auth.Identity, error)
}

// RequireAuth checks the Authorization header, raw or with a Bearer prefix,
// and stores the decoded identity in the context
func RequireAuth(decoder TokenDecoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(constants.AuthorizationHeader))
		token = strings.TrimSpace(strings.TrimPrefix(token, constants.BearerPrefix))

		if token == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		identity, err := decoder.Decode(token)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			return
		}

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyIdentity, *identity)
		c.Set(constants.ContextKeyUserID, identity.ID)
		c.Next()
	}
}

// GetIdentity retrieves the authenticated caller from context
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return auth.Identity{}, false
	}

	identity, ok := value.(auth.Identity)
	return identity, ok
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}
