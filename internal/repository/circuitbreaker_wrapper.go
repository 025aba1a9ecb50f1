package repository

import (
	"context"
	"errors"

	"github.com/guttosm/freight-service/internal/circuitbreaker"
	"github.com/guttosm/freight-service/internal/domain/model"
)

// TariffsRepositoryWithCircuitBreaker wraps TariffsRepository with circuit breaker protection.
type TariffsRepositoryWithCircuitBreaker struct {
	repo           *TariffsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTariffsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewTariffsRepositoryWithCircuitBreaker(repo *TariffsRepository, cb *circuitbreaker.CircuitBreaker) *TariffsRepositoryWithCircuitBreaker {
	return &TariffsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active tariff. An open circuit reads as "no stored tariff"
// so callers fall back to the configured defaults.
func (r *TariffsRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*model.Tariff, error) {
	var result *model.Tariff
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

// Create stores a new active tariff with circuit breaker protection.
func (r *TariffsRepositoryWithCircuitBreaker) Create(ctx context.Context, tariff model.Tariff, createdBy string) (*model.Tariff, error) {
	var result *model.Tariff
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, tariff, createdBy)
		return cbErr
	})
	return result, err
}

// List returns stored tariffs with circuit breaker protection.
func (r *TariffsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.Tariff, error) {
	var result []model.Tariff
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TariffsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// PartsRepositoryWithCircuitBreaker wraps PartsRepository with circuit breaker protection.
type PartsRepositoryWithCircuitBreaker struct {
	repo           *PartsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPartsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPartsRepositoryWithCircuitBreaker(repo *PartsRepository, cb *circuitbreaker.CircuitBreaker) *PartsRepositoryWithCircuitBreaker {
	return &PartsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ReplaceAll swaps the stored catalog with circuit breaker protection.
func (r *PartsRepositoryWithCircuitBreaker) ReplaceAll(ctx context.Context, parts []model.PartSpec) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.ReplaceAll(ctx, parts)
	})
}

// List returns the stored catalog with circuit breaker protection.
func (r *PartsRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.PartSpec, error) {
	var result []model.PartSpec
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// Count returns the stored catalog size with circuit breaker protection.
func (r *PartsRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx)
		return cbErr
	})
	return result, err
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a log entry. Writes are dropped silently while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores log entries in bulk. Writes are dropped silently while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	var result []model.LogEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}
