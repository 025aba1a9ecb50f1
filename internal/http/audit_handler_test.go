package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/mocks"
)

func TestAuditHandler_List(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	logging := new(mocks.MockLoggingService)
	logging.On("QueryLogs", mock.Anything, mock.MatchedBy(func(opts model.LogQueryOptions) bool {
		return opts.ActionType == model.ActionUpdateTariff &&
			opts.Level == "info" &&
			opts.Limit == 500 &&
			opts.Skip == 10 &&
			opts.StartTime != nil && opts.StartTime.Equal(from) &&
			opts.EndTime == nil
	})).Return([]model.LogEntry{{Message: "Tariff updated", ActionType: model.ActionUpdateTariff}}, int64(11), nil)

	cfg := newTestConfig(t)
	cfg.APIKeys = map[string]bool{testAPIKey: true}
	cfg.LoggingService = logging
	router := NewRouter(NewHealthHandler(), cfg)

	w := performRequest(router, http.MethodGet,
		"/api/audit?action=update_tariff&level=info&limit=9999&skip=10&from=2026-03-01T00:00:00Z", "", apiKeyHeader)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	page := decodeData[dto.AuditPage](t, w)
	assert.Len(t, page.Entries, 1)
	assert.Equal(t, int64(11), page.Total)
	assert.Equal(t, 500, page.Limit)
	assert.Equal(t, 10, page.Skip)
	logging.AssertExpectations(t)
}

func TestAuditHandler_List_Errors(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		withService    bool
		expectedStatus int
	}{
		{name: "invalid level", query: "?level=fatal", withService: true, expectedStatus: http.StatusBadRequest},
		{name: "invalid timestamp", query: "?from=yesterday", withService: true, expectedStatus: http.StatusBadRequest},
		{name: "database disabled", query: "", withService: false, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(t)
			cfg.APIKeys = map[string]bool{testAPIKey: true}
			if tt.withService {
				cfg.LoggingService = new(mocks.MockLoggingService)
			}
			router := NewRouter(NewHealthHandler(), cfg)

			w := performRequest(router, http.MethodGet, "/api/audit"+tt.query, "", apiKeyHeader)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}
