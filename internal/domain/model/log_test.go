package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		key    string
		value  interface{}
		verify func(*testing.T, *LogEntry)
	}{
		{
			name:  "allocates fields on a bare audit entry",
			entry: &LogEntry{ActionType: ActionQuote},
			key:   "quote_id",
			value: "0b9f6c1e",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, map[string]interface{}{"quote_id": "0b9f6c1e"}, e.Fields)
			},
		},
		{
			name: "keeps existing quote fields",
			entry: &LogEntry{
				ActionType: ActionQuote,
				Fields:     map[string]interface{}{"model": "6203"},
			},
			key:   "rate_source",
			value: "static",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "6203", e.Fields["model"])
				assert.Equal(t, "static", e.Fields["rate_source"])
			},
		},
		{
			name: "overwrites a tariff version",
			entry: &LogEntry{
				ActionType: ActionUpdateTariff,
				Fields:     map[string]interface{}{"version": 2},
			},
			key:   "version",
			value: 3,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, 3, e.Fields["version"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField(tt.key, tt.value)
			assert.Same(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := &LogEntry{ActionType: ActionCatalogImport}

	entry.WithFields(map[string]interface{}{"records": 3, "source": "csv"}).
		WithFields(map[string]interface{}{"records": 4}).
		WithFields(nil)

	assert.Equal(t, map[string]interface{}{"records": 4, "source": "csv"}, entry.Fields)
}

func TestLogEntry_AuditDocument(t *testing.T) {
	entry := (&LogEntry{
		Timestamp:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Level:      "info",
		Message:    "Batch quote computed",
		RequestID:  "req-1",
		Method:     "POST",
		Path:       "/api/quotes/batch",
		StatusCode: 200,
		Duration:   12,
		UserEmail:  "ops@example.com",
		ActionType: ActionQuoteBatch,
	}).WithField("lines", 2)

	raw, err := bson.Marshal(entry)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Equal(t, "quote_batch", doc["action_type"])
	assert.Equal(t, "/api/quotes/batch", doc["path"])
	assert.EqualValues(t, 12, doc["duration_ms"])
	assert.Equal(t, "ops@example.com", doc["user_email"])
	assert.Contains(t, doc, "fields")
	for _, omitted := range []string{"_id", "error", "user_id", "ip", "user_agent"} {
		assert.NotContains(t, doc, omitted)
	}

	var decoded LogEntry
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.EqualValues(t, 2, decoded.Fields["lines"])
	assert.Equal(t, ActionQuoteBatch, decoded.ActionType)
}

func TestActionTypes_AreDistinct(t *testing.T) {
	actions := []string{
		ActionQuote,
		ActionQuoteBatch,
		ActionCatalogSearch,
		ActionCatalogImport,
		ActionUpdateTariff,
		ActionLogin,
		ActionRegister,
	}

	seen := make(map[string]bool, len(actions))
	for _, a := range actions {
		assert.NotEmpty(t, a)
		assert.False(t, seen[a], "duplicate action type %q", a)
		seen[a] = true
	}
}
