package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/freight-service/internal/domain/model"
)

// TariffsRepositoryInterface defines the interface for tariff storage.
type TariffsRepositoryInterface interface {
	GetActive(ctx context.Context) (*model.Tariff, error)
	Create(ctx context.Context, tariff model.Tariff, createdBy string) (*model.Tariff, error)
	List(ctx context.Context, limit int) ([]model.Tariff, error)
}

// PartsRepositoryInterface defines the interface for parts catalog storage.
type PartsRepositoryInterface interface {
	ReplaceAll(ctx context.Context, parts []model.PartSpec) error
	List(ctx context.Context) ([]model.PartSpec, error)
	Count(ctx context.Context) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// UsersRepositoryInterface defines the interface for operator accounts.
type UsersRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

var (
	_ TariffsRepositoryInterface = (*TariffsRepository)(nil)
	_ TariffsRepositoryInterface = (*TariffsRepositoryWithCircuitBreaker)(nil)
	_ PartsRepositoryInterface   = (*PartsRepository)(nil)
	_ PartsRepositoryInterface   = (*PartsRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface    = (*LogsRepository)(nil)
	_ LogsRepositoryInterface    = (*LogsRepositoryWithCircuitBreaker)(nil)
	_ UsersRepositoryInterface   = (*UsersRepository)(nil)
)
