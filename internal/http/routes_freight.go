package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/middleware"
)

// FreightRoutes registers the quote, catalog, tariff, rate and audit routes.
type FreightRoutes struct {
	quotes  *Handler
	catalog *CatalogHandler
	tariffs *TariffHandler
	rates   *RatesHandler
	audit   *AuditHandler
}

// NewFreightRoutes builds the handlers from the services in cfg.
func NewFreightRoutes(cfg *RouterConfig) *FreightRoutes {
	return &FreightRoutes{
		quotes:  NewHandler(cfg.QuoteService, cfg.LogSink),
		catalog: NewCatalogHandler(cfg.CatalogService, cfg.LogSink),
		tariffs: NewTariffHandler(cfg.TariffService, cfg.LogSink),
		rates:   NewRatesHandler(cfg.RateProvider, cfg.TariffService),
		audit:   NewAuditHandler(cfg.LoggingService),
	}
}

func (r *FreightRoutes) RegisterRoutes(public, protected *gin.RouterGroup, cfg *RouterConfig) {
	public.GET("/packaging", r.quotes.PackagingProfiles)

	protected.POST("/quotes", r.quotes.Quote)
	protected.POST("/quotes/batch", r.quotes.QuoteBatch)
	protected.GET("/catalog/search", r.catalog.Search)
	protected.GET("/tariff", r.tariffs.Active)
	protected.GET("/tariff/history", r.tariffs.History)
	protected.GET("/exchange-rates/:currency", r.rates.Rate)

	admin := protected.Group("", adminOnly(cfg)...)
	admin.PUT("/tariff", r.tariffs.Update)
	admin.PUT("/catalog", r.catalog.Import)
	admin.GET("/audit", r.audit.List)
}

// adminOnly restricts a group to admins when callers carry JWT roles. API keys carry no
// role and are trusted as admins.
func adminOnly(cfg *RouterConfig) []gin.HandlerFunc {
	if cfg.AuthService == nil {
		return nil
	}
	return []gin.HandlerFunc{middleware.RequireRole(model.RoleAdmin)}
}
