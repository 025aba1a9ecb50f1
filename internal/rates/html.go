package rates

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/freight-service/internal/circuitbreaker"
)

var currencyCodePattern = regexp.MustCompile(`\b[A-Z]{3}\b`)

// HTMLConfig locates the rate table on a published notice page.
type HTMLConfig struct {
	URL            string
	RowSelector    string
	CurrencyColumn int
	RateColumn     int
	Timeout        time.Duration
}

// HTMLProvider scrapes a bank's exchange rate notice page.
type HTMLProvider struct {
	cfg     HTMLConfig
	scales  UnitScales
	breaker *circuitbreaker.CircuitBreaker
}

// NewHTMLProvider creates a scraping provider. breaker may be nil.
func NewHTMLProvider(cfg HTMLConfig, scales UnitScales, breaker *circuitbreaker.CircuitBreaker) *HTMLProvider {
	return &HTMLProvider{cfg: cfg, scales: scales, breaker: breaker}
}

func (p *HTMLProvider) Rate(ctx context.Context, currency string) (Quote, error) {
	code, err := normalizeCode(currency)
	if err != nil {
		return Quote{}, err
	}

	var table map[string]float64
	scrape := func() error {
		var serr error
		table, serr = p.scrape(ctx)
		return serr
	}
	if p.breaker != nil {
		err = p.breaker.Execute(ctx, scrape)
	} else {
		err = scrape()
	}
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %w", ErrRateUnavailable, err)
	}
	return lookup(table, code, p.scales, time.Now())
}

// scrape builds a fresh collector per call; colly refuses to revisit a URL.
func (p *HTMLProvider) scrape(ctx context.Context) (map[string]float64, error) {
	c := colly.NewCollector()
	c.Context = ctx
	if p.cfg.Timeout > 0 {
		c.SetRequestTimeout(p.cfg.Timeout)
	}

	table := make(map[string]float64)
	var visitErr error

	c.OnHTML(p.cfg.RowSelector, func(e *colly.HTMLElement) {
		cells := e.DOM.Find("td, th")
		if cells.Length() <= p.cfg.CurrencyColumn || cells.Length() <= p.cfg.RateColumn {
			return
		}
		code := currencyCodePattern.FindString(strings.ToUpper(cells.Eq(p.cfg.CurrencyColumn).Text()))
		if code == "" {
			return
		}
		raw := strings.ReplaceAll(cells.Eq(p.cfg.RateColumn).Text(), "\u00a0", " ")
		v, err := parseRate(raw)
		if err != nil {
			log.Debug().Str("currency", code).Str("value", raw).Msg("Skipping unparsable rate cell")
			return
		}
		if _, seen := table[code]; !seen {
			table[code] = v
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		visitErr = fmt.Errorf("scrape %s: status %d: %w", r.Request.URL, r.StatusCode, err)
	})

	if err := c.Visit(p.cfg.URL); err != nil && visitErr == nil {
		visitErr = err
	}
	if visitErr != nil {
		return nil, visitErr
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("no rates found with selector %q", p.cfg.RowSelector)
	}
	return table, nil
}
