// Package rates resolves exchange rates into the destination currency of a quote.
//
// A Quote's Rate is the amount of destination currency bought by one unit of the
// requested currency. Live sources that publish per-N-unit prices are normalized
// with explicit unit scales before a Quote is returned.
package rates

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/freight-service/internal/domain/model"
)

var (
	// ErrRateUnavailable is returned when a source cannot produce a rate right now.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
	// ErrUnsupportedCurrency is returned when no source knows the currency.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// Where a quote came from.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
	SourceStatic   = "static"
	SourceCache    = "cache"
	// SourceManual marks a rate supplied by the caller.
	SourceManual = "manual"
)

// Quote is an exchange rate with its provenance.
//
// @Description Exchange rate into the destination currency
type Quote struct {
	Currency  string    `json:"currency" example:"USD"`
	Rate      float64   `json:"rate" example:"1450"`
	Source    string    `json:"source" example:"live"`
	FetchedAt time.Time `json:"fetched_at"`
} // @name ExchangeRateQuote

// Provider returns the rate for one currency.
type Provider interface {
	Rate(ctx context.Context, currency string) (Quote, error)
}

// UnitScales maps a currency to the number of units a source quotes at once (JPY:100).
type UnitScales map[string]float64

// Apply converts a per-N-unit price into a per-unit price.
func (s UnitScales) Apply(currency string, v float64) float64 {
	if scale, ok := s[currency]; ok && scale > 0 {
		return v / scale
	}
	return v
}

func normalizeCode(currency string) (string, error) {
	code := model.NormalizeCurrency(currency)
	if len(code) != 3 {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
		}
	}
	return code, nil
}

// parseRate accepts published numbers such as "1,452.50".
func parseRate(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("rate %q is not a positive number", s)
	}
	return v, nil
}

// lookup picks code out of a fetched table and applies its unit scale.
func lookup(table map[string]float64, code string, scales UnitScales, fetchedAt time.Time) (Quote, error) {
	v, ok := table[code]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s not published by source", ErrRateUnavailable, code)
	}
	return Quote{
		Currency:  code,
		Rate:      scales.Apply(code, v),
		Source:    SourceLive,
		FetchedAt: fetchedAt,
	}, nil
}
