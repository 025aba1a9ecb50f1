package rates

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// FallbackProvider asks the primary source first and answers from the static table
// when it fails. A nil primary serves the static table directly.
type FallbackProvider struct {
	primary  Provider
	fallback *StaticProvider
}

// NewFallbackProvider creates a fallback provider.
func NewFallbackProvider(primary Provider, fallback *StaticProvider) *FallbackProvider {
	return &FallbackProvider{primary: primary, fallback: fallback}
}

func (p *FallbackProvider) Rate(ctx context.Context, currency string) (Quote, error) {
	code, err := normalizeCode(currency)
	if err != nil {
		return Quote{}, err
	}
	if p.primary == nil || code == p.fallback.base {
		return p.fallback.Rate(ctx, code)
	}

	quote, err := p.primary.Rate(ctx, code)
	if err == nil {
		return quote, nil
	}
	if errors.Is(err, context.Canceled) {
		return Quote{}, err
	}

	fallback, ferr := p.fallback.Rate(ctx, code)
	if ferr != nil {
		return Quote{}, errors.Join(err, ferr)
	}
	log.Warn().Err(err).Str("currency", code).Float64("rate", fallback.Rate).Msg("Live exchange rate unavailable, using fallback table")
	fallback.Source = SourceFallback
	return fallback, nil
}
