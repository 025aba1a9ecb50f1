package rates

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// DefaultStaticBase is the currency DefaultStaticTable is quoted in.
const DefaultStaticBase = "KRW"

// DefaultStaticTable holds KRW per unit for the currencies quoted most often.
var DefaultStaticTable = map[string]float64{
	"USD": 1450.0,
	"JPY": 9.5,
	"EUR": 1550.0,
	"CNY": 200.0,
}

// StaticProvider serves a fixed table. Its base currency always quotes at 1.
type StaticProvider struct {
	base  string
	table map[string]float64
}

// NewStaticProvider creates a provider over table, copying it.
func NewStaticProvider(base string, table map[string]float64) *StaticProvider {
	copied := make(map[string]float64, len(table))
	for code, v := range table {
		copied[code] = v
	}
	return &StaticProvider{base: base, table: copied}
}

func (p *StaticProvider) Rate(ctx context.Context, currency string) (Quote, error) {
	code, err := normalizeCode(currency)
	if err != nil {
		return Quote{}, err
	}
	now := time.Now()
	if code == p.base {
		return Quote{Currency: code, Rate: 1, Source: SourceStatic, FetchedAt: now}, nil
	}
	v, ok := p.table[code]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, code)
	}
	return Quote{Currency: code, Rate: v, Source: SourceStatic, FetchedAt: now}, nil
}

// ValidateBase reports whether base can be served by the built-in rate table.
func ValidateBase(base string) error {
	if base != DefaultStaticBase {
		return fmt.Errorf("destination currency %q is not supported: rates are quoted in %s", base, DefaultStaticBase)
	}
	return nil
}

// Currencies lists the table's currencies in sorted order.
func (p *StaticProvider) Currencies() []string {
	codes := make([]string, 0, len(p.table))
	for code := range p.table {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
