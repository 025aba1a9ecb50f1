package rates

import (
	"fmt"

	"github.com/guttosm/freight-service/config"
	"github.com/guttosm/freight-service/internal/circuitbreaker"
)

// Provider kinds accepted by RATES_PROVIDER.
const (
	KindStatic = "static"
	KindHTTP   = "http"
	KindHTML   = "html"
)

// cacheCapacity covers every ISO currency with room to spare.
const cacheCapacity = 256

// NewProvider assembles the configured live source behind the static fallback and a cache.
// base is the destination currency the rates are quoted in.
func NewProvider(cfg config.RatesConfig, base string, breaker *circuitbreaker.CircuitBreaker) (*CachedProvider, *StaticProvider, error) {
	if err := ValidateBase(base); err != nil {
		return nil, nil, err
	}
	static := NewStaticProvider(base, DefaultStaticTable)
	scales := UnitScales(cfg.UnitScales)

	var primary Provider
	switch cfg.Provider {
	case "", KindStatic:
	case KindHTTP:
		if cfg.URL == "" {
			return nil, nil, fmt.Errorf("rates provider %q requires RATES_URL", cfg.Provider)
		}
		primary = NewHTTPProvider(cfg.URL, cfg.Timeout, scales, breaker)
	case KindHTML:
		if cfg.URL == "" {
			return nil, nil, fmt.Errorf("rates provider %q requires RATES_URL", cfg.Provider)
		}
		primary = NewHTMLProvider(HTMLConfig{
			URL:            cfg.URL,
			RowSelector:    cfg.RowSelector,
			CurrencyColumn: cfg.CurrencyColumn,
			RateColumn:     cfg.RateColumn,
			Timeout:        cfg.Timeout,
		}, scales, breaker)
	default:
		return nil, nil, fmt.Errorf("unknown rates provider %q", cfg.Provider)
	}

	return NewCachedProvider(NewFallbackProvider(primary, static), cacheCapacity, cfg.CacheTTL), static, nil
}
