package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/freight-service/internal/metrics"
	"github.com/guttosm/freight-service/internal/middleware"
	"github.com/guttosm/freight-service/internal/rates"
	"github.com/guttosm/freight-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	// Limiter is shared by every API route; nil disables rate limiting.
	Limiter           *middleware.RateLimiter
	RequestTimeout    time.Duration
	APIKeys           map[string]bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string

	LogSink        middleware.LogSink
	AuthService    service.AuthService
	QuoteService   service.QuoteService
	CatalogService service.CatalogService
	TariffService  service.TariffService
	LoggingService service.LoggingService
	RateProvider   rates.Provider
}

// NewRouter creates and configures the Gin router for the freight service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = middleware.DefaultRequestTimeout
	}
	api := router.Group("/api", middleware.Timeout(timeout))

	public := api.Group("", rateLimit(&cfg)...)
	protected := api.Group("", protectedMiddleware(&cfg)...)

	groups := []RouteGroup{NewFreightRoutes(&cfg)}
	if cfg.AuthService != nil {
		groups = append(groups, NewAuthRoutes(&cfg))
	}
	for _, g := range groups {
		g.RegisterRoutes(public, protected, &cfg)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", middleware.APIKeyHeader, middleware.IdempotencyKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, middleware.RateLimitLimitHeader, middleware.RateLimitRemainingHeader, middleware.RetryAfterHeader, middleware.IdempotencyReplayedHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LogSink),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func rateLimit(cfg *RouterConfig) []gin.HandlerFunc {
	if cfg.Limiter == nil {
		return nil
	}
	return []gin.HandlerFunc{cfg.Limiter.Limit()}
}

// protectedMiddleware authenticates first so rate limits and idempotency keys are
// bound to the caller. JWT wins over API keys; with neither the routes are open.
func protectedMiddleware(cfg *RouterConfig) []gin.HandlerFunc {
	var chain []gin.HandlerFunc
	switch {
	case cfg.AuthService != nil:
		chain = append(chain, middleware.JWTAuth(cfg.AuthService))
	case len(cfg.APIKeys) > 0:
		chain = append(chain, middleware.APIKeyAuth(cfg.APIKeys))
	}
	chain = append(chain, rateLimit(cfg)...)
	if cfg.EnableIdempotency {
		chain = append(chain, middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
	return chain
}
