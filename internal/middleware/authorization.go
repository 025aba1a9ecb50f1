package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/i18n"
)

// RequireRole returns a middleware that admits operators holding one of roles.
// It must run after JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			abortWithKey(c, http.StatusUnauthorized, i18n.ErrKeyUnauthorized)
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, claims.Role) {
			abortWithKey(c, http.StatusForbidden, i18n.ErrKeyForbidden)
			return
		}
		c.Next()
	}
}
