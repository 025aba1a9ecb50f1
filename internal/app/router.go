// Package app provides router configuration.
package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/config"
	"github.com/guttosm/freight-service/internal/http"
	"github.com/guttosm/freight-service/internal/middleware"
	"github.com/guttosm/freight-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	AsyncLogger   *middleware.AsyncLogger
	Limiter       *middleware.RateLimiter
}

// InitializeRouter initializes HTTP handlers and router configuration. dbComponents may be nil.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	authService service.AuthService,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("catalog", http.HealthCheckFunc(func(_ context.Context) error {
		if !services.Catalog.Loaded() {
			return service.ErrCatalogUnavailable
		}
		return nil
	}))
	healthHandler.RegisterCircuitBreaker("exchange_rates", services.RatesBreaker)

	var (
		loggingService service.LoggingService
		asyncLogger    *middleware.AsyncLogger
		sink           middleware.LogSink
	)
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_tariffs", dbComponents.TariffsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_parts", dbComponents.PartsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)

		loggingService = dbComponents.LoggingService
		asyncLogger = middleware.NewAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
		sink = asyncLogger
	}

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	var apiKeys map[string]bool
	if cfg.Auth.Enabled {
		apiKeys = cfg.Auth.APIKeys
	}

	routerCfg := http.RouterConfig{
		Limiter:           limiter,
		APIKeys:           apiKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LogSink:           sink,
		AuthService:       authService,
		QuoteService:      services.Quotes,
		CatalogService:    services.Catalog,
		TariffService:     services.Tariffs,
		LoggingService:    loggingService,
		RateProvider:      services.Rates,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
		AsyncLogger:   asyncLogger,
		Limiter:       limiter,
	}
}

// NewEngine builds the gin engine from the components.
func (r *RouterComponents) NewEngine() *gin.Engine {
	return http.NewRouter(r.HealthHandler, r.Config)
}

// Close flushes pending audit entries and stops the limiter janitor.
func (r *RouterComponents) Close() {
	if r.AsyncLogger != nil {
		r.AsyncLogger.Stop()
	}
	if r.Limiter != nil {
		r.Limiter.Stop()
	}
}
