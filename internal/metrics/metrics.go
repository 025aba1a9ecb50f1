// Package metrics provides Prometheus metrics collection for the freight service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuotesTotal tracks freight quotes by kind (single, batch) and status.
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_quotes_total",
			Help: "Total number of freight quote computations",
		},
		[]string{"kind", "status"},
	)

	// QuoteDuration tracks quote computation duration.
	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "freight_quote_duration_seconds",
			Help:    "Freight quote computation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// ChargeBasisTotal counts which weight decided the charge.
	ChargeBasisTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freight_charge_basis_total",
			Help: "Number of quotes charged on actual versus volumetric weight",
		},
		[]string{"basis"},
	)

	// CatalogSearchesTotal tracks catalog searches by outcome (found, not_found).
	CatalogSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total number of catalog searches",
		},
		[]string{"outcome"},
	)

	// CatalogSize tracks the number of records in the active catalog.
	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_size",
			Help: "Number of records in the active catalog",
		},
	)

	// ExchangeRateLookupsTotal tracks exchange rate lookups by currency and source.
	ExchangeRateLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_rate_lookups_total",
			Help: "Total number of exchange rate lookups",
		},
		[]string{"currency", "source"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	// ExchangeRateRefreshesTotal counts scheduled exchange rate refreshes.
	ExchangeRateRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_rate_refreshes_total",
			Help: "Total number of scheduled exchange rate refreshes",
		},
		[]string{"status"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records metrics for a quote computation.
func RecordQuote(kind string, duration time.Duration, status string) {
	QuoteDuration.Observe(duration.Seconds())
	QuotesTotal.WithLabelValues(kind, status).Inc()
}

// RecordChargeBasis records whether volumetric weight exceeded actual weight.
func RecordChargeBasis(volumetric bool) {
	if volumetric {
		ChargeBasisTotal.WithLabelValues("volumetric").Inc()
		return
	}
	ChargeBasisTotal.WithLabelValues("actual").Inc()
}

// RecordCatalogSearch records a catalog search outcome.
func RecordCatalogSearch(matches int) {
	if matches == 0 {
		CatalogSearchesTotal.WithLabelValues("not_found").Inc()
		return
	}
	CatalogSearchesTotal.WithLabelValues("found").Inc()
}

// UpdateCatalogSize sets the active catalog size.
func UpdateCatalogSize(size int) {
	CatalogSize.Set(float64(size))
}

// RecordExchangeRateLookup records an exchange rate lookup and where it was served from.
func RecordExchangeRateLookup(currency, source string) {
	ExchangeRateLookupsTotal.WithLabelValues(currency, source).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheSize updates the size gauge of the named cache.
func UpdateCacheSize(cache string, size int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
}

// SetCircuitBreakerState publishes the state of the named circuit breaker.
func SetCircuitBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordExchangeRateRefresh records the outcome of a scheduled refresh.
func RecordExchangeRateRefresh(err error) {
	if err != nil {
		ExchangeRateRefreshesTotal.WithLabelValues("error").Inc()
		return
	}
	ExchangeRateRefreshesTotal.WithLabelValues("success").Inc()
}
