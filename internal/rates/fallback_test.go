package rates

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackProvider(t *testing.T) {
	static := NewStaticProvider("KRW", DefaultStaticTable)

	t.Run("primary answer wins", func(t *testing.T) {
		primary := &stubProvider{quote: Quote{Rate: 1463.2, Source: SourceLive}}
		q, err := NewFallbackProvider(primary, static).Rate(context.Background(), "USD")

		require.NoError(t, err)
		assert.Equal(t, 1463.2, q.Rate)
		assert.Equal(t, SourceLive, q.Source)
	})

	t.Run("primary failure falls back to the static table", func(t *testing.T) {
		primary := &stubProvider{err: ErrRateUnavailable}
		q, err := NewFallbackProvider(primary, static).Rate(context.Background(), "USD")

		require.NoError(t, err)
		assert.Equal(t, 1450.0, q.Rate)
		assert.Equal(t, SourceFallback, q.Source)
	})

	t.Run("unknown to both sources", func(t *testing.T) {
		primary := &stubProvider{err: ErrRateUnavailable}
		_, err := NewFallbackProvider(primary, static).Rate(context.Background(), "GBP")

		assert.ErrorIs(t, err, ErrUnsupportedCurrency)
		assert.ErrorIs(t, err, ErrRateUnavailable)
	})

	t.Run("cancellation is not masked", func(t *testing.T) {
		primary := &stubProvider{err: context.Canceled}
		_, err := NewFallbackProvider(primary, static).Rate(context.Background(), "USD")

		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("base currency skips the primary", func(t *testing.T) {
		primary := &stubProvider{err: ErrRateUnavailable}
		q, err := NewFallbackProvider(primary, static).Rate(context.Background(), "krw")

		require.NoError(t, err)
		assert.Equal(t, 1.0, q.Rate)
		assert.Zero(t, primary.callCount())
	})

	t.Run("nil primary serves the static table", func(t *testing.T) {
		q, err := NewFallbackProvider(nil, static).Rate(context.Background(), "EUR")

		require.NoError(t, err)
		assert.Equal(t, 1550.0, q.Rate)
		assert.Equal(t, SourceStatic, q.Source)
	})
}
