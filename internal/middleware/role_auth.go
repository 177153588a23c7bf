package middleware

import (
	apierrors "github.com/GeorgeR-1/jd-ticketing-project-rest/internal/errors"
	"github.com/gin-gonic/gin"
)

// RequireRoles allows the request through only when the caller holds one of
// roles. Must run after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, exists := GetIdentity(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		if !identity.HasRole(roles...) {
			apierrors.Forbidden(c, "Access denied")
			return
		}

		c.Next()
	}
}
