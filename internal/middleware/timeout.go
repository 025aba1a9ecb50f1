package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/i18n"
)

// DefaultRequestTimeout bounds request processing when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// Timeout returns a middleware that puts a deadline on the request context. Handlers
// observe it through their context-aware calls; a handler that overruns without writing
// a response gets a 504.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			requestLogger(c).Warn().
				Str("path", c.Request.URL.Path).
				Dur("timeout", timeout).
				Msg("Request timed out")
			abortWithKey(c, http.StatusGatewayTimeout, i18n.ErrKeyTimeout)
		}
	}
}
