package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/middleware"
	"github.com/guttosm/freight-service/internal/mocks"
)

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	router := NewRouter(NewHealthHandler(), newTestConfig(t))

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := performRequest(router, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestNewRouter_SwaggerBasicAuth(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.SwaggerUser = "docs"
	cfg.SwaggerPass = "secret"
	router := NewRouter(NewHealthHandler(), cfg)

	w := performRequest(router, http.MethodGet, "/swagger/index.html", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewRouter_APIKeyMode(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.APIKeys = map[string]bool{testAPIKey: true}
	router := NewRouter(NewHealthHandler(), cfg)

	t.Run("packaging presets stay public", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/packaging", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("quotes need a key", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/quotes", `{}`, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = performRequest(router, http.MethodPost, "/api/quotes", `{}`, map[string]string{"X-API-Key": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = performRequest(router, http.MethodPost, "/api/quotes", `{}`, apiKeyHeader)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("auth routes are not mounted", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/auth/login", `{}`, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNewRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	auth, _, router := newAuthRouter(t)
	auth.On("ValidateToken", mock.Anything, "operator-token").Return(&dto.Claims{
		UserID: primitive.NewObjectID(), Email: "ops@example.com", Role: model.RoleOperator,
	}, nil)
	auth.On("ValidateToken", mock.Anything, "admin-token").Return(&dto.Claims{
		UserID: primitive.NewObjectID(), Email: "admin@example.com", Role: model.RoleAdmin,
	}, nil)

	operator := map[string]string{"Authorization": "Bearer operator-token"}
	admin := map[string]string{"Authorization": "Bearer admin-token"}

	w := performRequest(router, http.MethodPost, "/api/quotes", `{}`, operator)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = performRequest(router, http.MethodPut, "/api/tariff", `{"price_per_kg": 3}`, operator)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The tariff service has no storage, so an admin gets past the role check to a 503.
	w = performRequest(router, http.MethodPut, "/api/tariff", `{"price_per_kg": 3}`, admin)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = performRequest(router, http.MethodGet, "/api/audit", "", operator)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNewRouter_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Stop)

	cfg := newTestConfig(t)
	cfg.Limiter = limiter
	router := NewRouter(NewHealthHandler(), cfg)

	for i := 0; i < 2; i++ {
		w := performRequest(router, http.MethodGet, "/api/packaging", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := performRequest(router, http.MethodGet, "/api/packaging", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RetryAfterHeader))

	w = performRequest(router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_Idempotency(t *testing.T) {
	quotes := new(mocks.MockQuoteService)
	quotes.On("Quote", mock.Anything, mock.Anything).Return(&dto.QuoteResponse{ID: "q-1"}, nil).Once()

	cfg := newTestConfig(t)
	cfg.QuoteService = quotes
	cfg.EnableIdempotency = true
	router := NewRouter(NewHealthHandler(), cfg)

	headers := map[string]string{middleware.IdempotencyKeyHeader: "quote-1"}
	first := performRequest(router, http.MethodPost, "/api/quotes", `{"quantity": 4}`, headers)
	require.Equal(t, http.StatusOK, first.Code)

	second := performRequest(router, http.MethodPost, "/api/quotes", `{"quantity": 4}`, headers)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
	quotes.AssertExpectations(t)
}
