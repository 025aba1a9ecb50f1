//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/freight-service/config"
)

const testCatalogCSV = "model,base_model,maker,length_mm,width_mm,height_mm,weight_kg\n" +
	"22214 EK,22214,SKF,125,125,31,1.6\n" +
	"6203-2RS,6203,NSK,40,40,12,0.065\n" +
	"22214E,22214,NSK,125,125,31,1.58\n"

const palletQuoteBody = `{
	"length": 91, "width": 107, "height": 61, "unit": "cm",
	"unit_weight_kg": 157, "quantity": 4,
	"packaging": {"type": "pallet_d", "tare_kg": 0},
	"price_per_kg": 1.75, "surcharge_per_kg": 1.35,
	"fixed_fee": 25, "fee_enabled": true,
	"currency": "USD", "exchange_rate": 1463.2
}`

func init() {
	gin.SetMode(gin.TestMode)
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogCSV), 0o600))
	return path
}

func testAppConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Server: config.ServerConfig{
			Port:       "0",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Log:   config.LogConfig{Level: "error"},
		Cache: config.CacheConfig{Size: 100, TTL: time.Minute},
		Freight: config.FreightConfig{
			PricePerKg:          5,
			FixedFee:            25,
			SourceCurrency:      "USD",
			DestinationCurrency: "KRW",
			CatalogFile:         writeCatalog(t),
		},
		Rates: config.RatesConfig{
			Provider: "static",
			CacheTTL: time.Minute,
		},
	}
}

func newTestApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	application, err := InitializeApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { application.Close(context.Background()) })
	return application
}

func serve(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestInitializeApp(t *testing.T) {
	application := newTestApp(t, testAppConfig(t))

	w := serve(application.Router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(application.Router, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"catalog":"ok"`)
	assert.Contains(t, w.Body.String(), `"exchange_rates_circuit":"closed"`)

	w = serve(application.Router, http.MethodPost, "/api/quotes", palletQuoteBody, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"cost_destination":"2885138"`)

	w = serve(application.Router, http.MethodGet, "/api/catalog/search?q=22214", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"count":2`)

	w = serve(application.Router, http.MethodGet, "/api/exchange-rates/USD", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"destination_currency":"KRW"`)
}

func TestInitializeApp_RejectsUnsupportedDestinationCurrency(t *testing.T) {
	cfg := testAppConfig(t)
	cfg.Freight.DestinationCurrency = "JPY"

	application, err := InitializeApp(context.Background(), cfg)

	require.Error(t, err)
	assert.Nil(t, application)
}

func TestInitializeApp_WithoutCatalog(t *testing.T) {
	cfg := testAppConfig(t)
	cfg.Freight.CatalogFile = ""
	application := newTestApp(t, cfg)

	w := serve(application.Router, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)

	w = serve(application.Router, http.MethodGet, "/api/catalog/search?q=22214", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// Quotes with explicit dimensions and weight do not need the catalog.
	w = serve(application.Router, http.MethodPost, "/api/quotes", palletQuoteBody, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestInitializeApp_APIKeyAuth(t *testing.T) {
	cfg := testAppConfig(t)
	cfg.Auth = config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"ops-key": true}}
	application := newTestApp(t, cfg)

	w := serve(application.Router, http.MethodPost, "/api/quotes", palletQuoteBody, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(application.Router, http.MethodPost, "/api/quotes", palletQuoteBody, map[string]string{"X-API-Key": "ops-key"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Without user storage the login routes are not mounted.
	w = serve(application.Router, http.MethodPost, "/api/auth/login", `{}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInitializeApp_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{
			name:   "missing catalog file",
			mutate: func(c *config.Config) { c.Freight.CatalogFile = filepath.Join(t.TempDir(), "missing.csv") },
			errMsg: "open catalog",
		},
		{
			name:   "unknown rates provider",
			mutate: func(c *config.Config) { c.Rates.Provider = "fax" },
			errMsg: `unknown rates provider "fax"`,
		},
		{
			name:   "http provider without url",
			mutate: func(c *config.Config) { c.Rates.Provider = "http" },
			errMsg: "requires RATES_URL",
		},
		{
			name: "invalid refresh schedule",
			mutate: func(c *config.Config) {
				c.Rates.RefreshSchedule = "every tuesday"
			},
			errMsg: "invalid rates refresh schedule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testAppConfig(t)
			tt.mutate(&cfg)

			application, err := InitializeApp(context.Background(), cfg)
			require.Error(t, err)
			assert.Nil(t, application)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
