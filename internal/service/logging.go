package service

import (
	"context"
	"fmt"

	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/repository"
)

// Log query page sizes.
const (
	DefaultLogQueryLimit = 50
	MaxLogQueryLimit     = 500
)

// LoggingService stores request and audit log entries and pages through them.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	// QueryLogs returns one page of matching entries, newest first, and the total match count.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, int64, error)
}

// LoggingServiceImpl implements the LoggingService interface.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) *LoggingServiceImpl {
	return &LoggingServiceImpl{repo: repo}
}

func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return s.repo.Create(ctx, entry)
}

func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return s.repo.CreateMany(ctx, entries)
}

func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, int64, error) {
	switch {
	case opts.Limit <= 0:
		opts.Limit = DefaultLogQueryLimit
	case opts.Limit > MaxLogQueryLimit:
		opts.Limit = MaxLogQueryLimit
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}

	entries, err := s.repo.Query(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("query logs: %w", err)
	}
	total, err := s.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("count logs: %w", err)
	}
	return entries, total, nil
}
