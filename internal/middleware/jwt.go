package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/i18n"
	"github.com/guttosm/freight-service/internal/service"
)

const bearerPrefix = "Bearer "

// JWTAuth returns a middleware that validates bearer access tokens and stores the
// operator's claims on the context.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithKey(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			abortWithKey(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			abortWithKey(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			requestLogger(c).Debug().Err(err).Msg("Rejected access token")
			abortWithKey(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}
