package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/guttosm/freight-service/internal/circuitbreaker"
)

// maxBodyBytes bounds how much of a rates response is read.
const maxBodyBytes = 1 << 20

// ratesResponse is the accepted JSON shape: {"rates": {"USD": 1450.2, "JPY": 950.1}}.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// HTTPProvider reads a JSON rates table from an HTTP API behind a circuit breaker.
type HTTPProvider struct {
	url     string
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
	scales  UnitScales
}

// NewHTTPProvider creates an HTTP provider. breaker may be nil.
func NewHTTPProvider(url string, timeout time.Duration, scales UnitScales, breaker *circuitbreaker.CircuitBreaker) *HTTPProvider {
	return &HTTPProvider{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		scales:  scales,
	}
}

func (p *HTTPProvider) Rate(ctx context.Context, currency string) (Quote, error) {
	code, err := normalizeCode(currency)
	if err != nil {
		return Quote{}, err
	}

	var table map[string]float64
	fetch := func() error {
		var ferr error
		table, ferr = p.fetch(ctx)
		return ferr
	}
	if p.breaker != nil {
		err = p.breaker.Execute(ctx, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %w", ErrRateUnavailable, err)
	}
	return lookup(table, code, p.scales, time.Now())
}

func (p *HTTPProvider) fetch(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates source returned %s", resp.Status)
	}

	var body ratesResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}
	table := make(map[string]float64, len(body.Rates))
	for code, v := range body.Rates {
		if v > 0 {
			table[code] = v
		}
	}
	return table, nil
}
