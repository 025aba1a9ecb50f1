//go:build !integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/freight-service/config"
)

func newTestServices(t *testing.T, cfg config.Config) *ServiceComponents {
	t.Helper()
	components, err := InitializeServices(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { components.Close(context.Background()) })
	return components
}

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(*config.Config)
		expectedKeys    int
		expectedLimiter bool
	}{
		{
			name:            "open API with rate limit",
			mutate:          func(*config.Config) {},
			expectedLimiter: true,
		},
		{
			name: "API keys ignored while auth is disabled",
			mutate: func(c *config.Config) {
				c.Auth.APIKeys = map[string]bool{"k": true}
			},
			expectedLimiter: true,
		},
		{
			name: "API keys with auth enabled",
			mutate: func(c *config.Config) {
				c.Auth = config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"k": true}}
			},
			expectedKeys:    1,
			expectedLimiter: true,
		},
		{
			name: "rate limit disabled",
			mutate: func(c *config.Config) {
				c.Server.RateLimit = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testAppConfig(t)
			tt.mutate(&cfg)
			services := newTestServices(t, cfg)

			components := InitializeRouter(services, nil, nil, cfg)
			t.Cleanup(components.Close)

			assert.NotNil(t, components.HealthHandler)
			assert.Len(t, components.Config.APIKeys, tt.expectedKeys)
			assert.Equal(t, tt.expectedLimiter, components.Limiter != nil)
			assert.Equal(t, tt.expectedLimiter, components.Config.Limiter != nil)

			assert.Nil(t, components.AsyncLogger)
			assert.Nil(t, components.Config.LogSink)
			assert.Nil(t, components.Config.LoggingService)
			assert.Nil(t, components.Config.AuthService)
			assert.NotNil(t, components.Config.QuoteService)
			assert.NotNil(t, components.Config.CatalogService)
			assert.NotNil(t, components.Config.TariffService)
			assert.NotNil(t, components.Config.RateProvider)
			assert.True(t, components.Config.EnableIdempotency)

			assert.NotNil(t, components.NewEngine())
		})
	}
}

func TestRouterComponents_CloseWithoutLimiter(t *testing.T) {
	components := &RouterComponents{}
	assert.NotPanics(t, components.Close)
}
