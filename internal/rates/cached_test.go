package rates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedProvider_ServesRepeatsFromCache(t *testing.T) {
	inner := &stubProvider{quote: Quote{Rate: 1463.2, Source: SourceLive}}
	p := NewCachedProvider(inner, 16, time.Minute)
	defer p.Stop()

	first, err := p.Rate(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, SourceLive, first.Source)

	second, err := p.Rate(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, SourceCache, second.Source)
	assert.Equal(t, 1463.2, second.Rate)
	assert.Equal(t, 1, inner.callCount())
}

func TestCachedProvider_DoesNotCacheFallback(t *testing.T) {
	inner := &stubProvider{quote: Quote{Rate: 1450, Source: SourceFallback}}
	p := NewCachedProvider(inner, 16, time.Minute)
	defer p.Stop()

	for i := 0; i < 2; i++ {
		q, err := p.Rate(context.Background(), "USD")
		require.NoError(t, err)
		assert.Equal(t, SourceFallback, q.Source)
	}
	assert.Equal(t, 2, inner.callCount())
}

func TestCachedProvider_PropagatesErrors(t *testing.T) {
	inner := &stubProvider{err: ErrUnsupportedCurrency}
	p := NewCachedProvider(inner, 16, time.Minute)
	defer p.Stop()

	_, err := p.Rate(context.Background(), "GBP")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)

	_, err = p.Rate(context.Background(), "pounds")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestCachedProvider_Refresh(t *testing.T) {
	inner := &stubProvider{quote: Quote{Rate: 1400, Source: SourceLive}}
	p := NewCachedProvider(inner, 16, time.Minute)
	defer p.Stop()

	require.NoError(t, p.Refresh(context.Background(), []string{"USD", "EUR"}))
	assert.Equal(t, 2, inner.callCount())

	q, err := p.Rate(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, SourceCache, q.Source)
	assert.Equal(t, 2, inner.callCount())
}

func TestCachedProvider_RefreshReportsFallback(t *testing.T) {
	inner := &stubProvider{quote: Quote{Rate: 1450, Source: SourceFallback}}
	p := NewCachedProvider(inner, 16, time.Minute)
	defer p.Stop()

	err := p.Refresh(context.Background(), []string{"USD"})
	assert.ErrorIs(t, err, ErrRateUnavailable)
}
