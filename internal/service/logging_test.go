package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/mocks"
	"github.com/guttosm/freight-service/internal/service"
)

func TestLoggingService_CreateLog(t *testing.T) {
	repo := new(mocks.MockLogsRepositoryInterface)
	entry := &model.LogEntry{Level: "info", Message: "quote", ActionType: model.ActionQuote}
	repo.On("Create", mock.Anything, entry).Return(nil)

	require.NoError(t, service.NewLoggingService(repo).CreateLog(context.Background(), entry))
	repo.AssertExpectations(t)
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("bulk insert", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		entries := []*model.LogEntry{{Message: "a"}, {Message: "b"}}
		repo.On("CreateMany", mock.Anything, entries).Return(nil)

		require.NoError(t, service.NewLoggingService(repo).CreateLogs(context.Background(), entries))
		repo.AssertExpectations(t)
	})

	t.Run("empty batch skips the repository", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)

		require.NoError(t, service.NewLoggingService(repo).CreateLogs(context.Background(), nil))
		repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})
}

func TestLoggingService_QueryLogs(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{name: "default page size", limit: 0, expectedLimit: service.DefaultLogQueryLimit},
		{name: "explicit page size", limit: 20, expectedLimit: 20},
		{name: "page size is capped", limit: 10000, expectedLimit: service.MaxLogQueryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockLogsRepositoryInterface)
			expectedOpts := model.LogQueryOptions{ActionType: model.ActionUpdateTariff, Limit: tt.expectedLimit}
			entries := []model.LogEntry{{Message: "PUT /api/tariff"}}
			repo.On("Query", mock.Anything, expectedOpts).Return(entries, nil)
			repo.On("Count", mock.Anything, expectedOpts).Return(int64(7), nil)

			result, total, err := service.NewLoggingService(repo).QueryLogs(context.Background(),
				model.LogQueryOptions{ActionType: model.ActionUpdateTariff, Limit: tt.limit, Skip: -3})
			require.NoError(t, err)
			assert.Equal(t, entries, result)
			assert.Equal(t, int64(7), total)
			repo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_QueryLogsErrors(t *testing.T) {
	t.Run("query fails", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))

		_, _, err := service.NewLoggingService(repo).QueryLogs(context.Background(), model.LogQueryOptions{})
		assert.ErrorContains(t, err, "query logs")
	})

	t.Run("count fails", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Query", mock.Anything, mock.Anything).Return([]model.LogEntry{}, nil)
		repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), errors.New("database error"))

		_, _, err := service.NewLoggingService(repo).QueryLogs(context.Background(), model.LogQueryOptions{})
		assert.ErrorContains(t, err, "count logs")
	})
}
