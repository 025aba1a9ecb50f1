package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup registers one feature's routes. public needs no credentials; protected
// carries the configured authentication, rate limiting and idempotency.
type RouteGroup interface {
	RegisterRoutes(public, protected *gin.RouterGroup, cfg *RouterConfig)
}
