//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/freight-service/internal/circuitbreaker"
	"github.com/guttosm/freight-service/internal/domain/model"
)

func sampleTariff(price float64) model.Tariff {
	return model.Tariff{
		PricePerKg:          price,
		SurchargePerKg:      1.35,
		FixedFee:            25,
		FeeEnabled:          true,
		SourceCurrency:      "USD",
		DestinationCurrency: "KRW",
	}
}

func TestTariffsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewTariffsRepository(setupTestDB(t))

	t.Run("no active tariff", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("create first version", func(t *testing.T) {
		created, err := repo.Create(ctx, sampleTariff(1.75), "admin@example.com")
		require.NoError(t, err)
		assert.True(t, created.Active)
		assert.Equal(t, 1, created.Version)
		assert.Equal(t, "admin@example.com", created.CreatedBy)
		assert.False(t, created.ID.IsZero())
	})

	t.Run("new version deactivates the previous one", func(t *testing.T) {
		created, err := repo.Create(ctx, sampleTariff(2.10), "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, 2, created.Version)

		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, created.ID, active.ID)
		assert.InDelta(t, 2.10, active.PricePerKg, 1e-9)
	})

	t.Run("list newest first", func(t *testing.T) {
		tariffs, err := repo.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, tariffs, 2)
		assert.Equal(t, 2, tariffs[0].Version)
		assert.True(t, tariffs[0].Active)
		assert.False(t, tariffs[1].Active)
	})

	t.Run("list honors limit", func(t *testing.T) {
		tariffs, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, tariffs, 1)
	})
}

func TestTariffsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	repo := NewTariffsRepositoryWithCircuitBreaker(NewTariffsRepository(setupTestDB(t)), cb)

	_, err := repo.Create(ctx, sampleTariff(1.75), "system")
	require.NoError(t, err)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)

	tariffs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, tariffs, 1)

	assert.Same(t, cb, repo.GetCircuitBreaker())
	assert.Equal(t, "closed", cb.GetStats().State)
}
