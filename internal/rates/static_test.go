package rates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_Rate(t *testing.T) {
	p := NewStaticProvider("KRW", DefaultStaticTable)

	tests := []struct {
		currency string
		expected float64
	}{
		{"USD", 1450.0},
		{"jpy", 9.5},
		{"EUR", 1550.0},
		{"CNY", 200.0},
		{"KRW", 1},
	}
	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			q, err := p.Rate(context.Background(), tt.currency)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, q.Rate)
			assert.Equal(t, SourceStatic, q.Source)
			assert.False(t, q.FetchedAt.IsZero())
		})
	}
}

func TestStaticProvider_Unsupported(t *testing.T) {
	_, err := NewStaticProvider("KRW", DefaultStaticTable).Rate(context.Background(), "GBP")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestStaticProvider_CopiesTable(t *testing.T) {
	table := map[string]float64{"USD": 1000}
	p := NewStaticProvider("KRW", table)
	table["USD"] = 1

	q, err := p.Rate(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, q.Rate)
	assert.Equal(t, []string{"USD"}, p.Currencies())
}

func TestStaticProvider_Currencies(t *testing.T) {
	assert.Equal(t, []string{"CNY", "EUR", "JPY", "USD"}, NewStaticProvider("KRW", DefaultStaticTable).Currencies())
}
