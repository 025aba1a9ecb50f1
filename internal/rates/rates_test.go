package rates

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns a fixed quote or error and counts calls.
type stubProvider struct {
	mu    sync.Mutex
	quote Quote
	err   error
	calls int
}

func (s *stubProvider) Rate(_ context.Context, currency string) (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return Quote{}, s.err
	}
	q := s.quote
	q.Currency = currency
	return q, nil
}

func (s *stubProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestUnitScales_Apply(t *testing.T) {
	scales := UnitScales{"JPY": 100, "IDR": 0}

	assert.InDelta(t, 9.5, scales.Apply("JPY", 950), 1e-9)
	assert.Equal(t, 1450.0, scales.Apply("USD", 1450))
	assert.Equal(t, 12.0, scales.Apply("IDR", 12), "non-positive scales are ignored")
	assert.Equal(t, 3.0, UnitScales(nil).Apply("JPY", 3))
}

func TestParseRate(t *testing.T) {
	v, err := parseRate(" 1,452.50 ")
	require.NoError(t, err)
	assert.Equal(t, 1452.5, v)

	for _, bad := range []string{"", "n/a", "0", "-3", "NaN", "Inf"} {
		_, err := parseRate(bad)
		assert.Error(t, err, bad)
	}
}

func TestNormalizeCode(t *testing.T) {
	code, err := normalizeCode(" usd ")
	require.NoError(t, err)
	assert.Equal(t, "USD", code)

	for _, bad := range []string{"", "US", "USDT", "U5D"} {
		_, err := normalizeCode(bad)
		assert.True(t, errors.Is(err, ErrUnsupportedCurrency), bad)
	}
}
