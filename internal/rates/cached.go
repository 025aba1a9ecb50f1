package rates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/freight-service/internal/metrics"
	"github.com/guttosm/freight-service/internal/service/cache"
)

// CachedProvider memoizes quotes per currency. Fallback quotes are never cached so the
// live source is retried on the next request.
type CachedProvider struct {
	inner Provider
	cache cache.Cache[Quote]
}

// NewCachedProvider wraps inner with a TTL cache of the given capacity.
func NewCachedProvider(inner Provider, capacity int, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: cache.NewTTLCache[Quote]("exchange_rates", capacity, ttl),
	}
}

func (p *CachedProvider) Rate(ctx context.Context, currency string) (Quote, error) {
	code, err := normalizeCode(currency)
	if err != nil {
		return Quote{}, err
	}
	if quote, ok := p.cache.Get(code); ok {
		quote.Source = SourceCache
		metrics.RecordExchangeRateLookup(code, SourceCache)
		return quote, nil
	}

	quote, err := p.fetch(ctx, code)
	if err != nil {
		return Quote{}, err
	}
	metrics.RecordExchangeRateLookup(code, quote.Source)
	return quote, nil
}

// Refresh re-reads currencies from the inner provider and replaces their cached quotes.
// A currency answered from the fallback table counts as a failed refresh.
func (p *CachedProvider) Refresh(ctx context.Context, currencies []string) error {
	var errs []error
	for _, code := range currencies {
		quote, err := p.fetch(ctx, code)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if quote.Source == SourceFallback {
			errs = append(errs, fmt.Errorf("%w: %s served from fallback", ErrRateUnavailable, code))
		}
	}
	return errors.Join(errs...)
}

// Stop releases the cache's cleanup goroutine.
func (p *CachedProvider) Stop() {
	p.cache.Stop()
}

func (p *CachedProvider) fetch(ctx context.Context, code string) (Quote, error) {
	quote, err := p.inner.Rate(ctx, code)
	if err != nil {
		return Quote{}, err
	}
	if quote.Source == SourceFallback {
		p.cache.Invalidate(code)
	} else {
		p.cache.Set(code, quote)
	}
	return quote, nil
}
