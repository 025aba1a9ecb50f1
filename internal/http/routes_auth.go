package http

import (
	"github.com/gin-gonic/gin"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler *AuthHandler
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(cfg *RouterConfig) *AuthRoutes {
	return &AuthRoutes{handler: NewAuthHandler(cfg.AuthService, cfg.LogSink)}
}

func (r *AuthRoutes) RegisterRoutes(public, protected *gin.RouterGroup, _ *RouterConfig) {
	auth := public.Group("/auth")
	{
		auth.POST("/login", r.handler.Login)
		auth.POST("/register", r.handler.Register)
		auth.POST("/refresh", r.handler.Refresh)
	}
	protected.GET("/auth/me", r.handler.Me)
}
