package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/i18n"
)

// Recovery returns a middleware that recovers from panics and returns a 500 error.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestLogger(c).Error().
					Str("request_id", GetRequestID(c)).
					Interface("panic", err).
					Str("path", c.Request.URL.Path).
					Msg("PANIC recovered")

				abortWithKey(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
			}
		}()
		c.Next()
	}
}
