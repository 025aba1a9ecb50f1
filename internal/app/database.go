// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/freight-service/config"
	"github.com/guttosm/freight-service/internal/circuitbreaker"
	"github.com/guttosm/freight-service/internal/repository"
	"github.com/guttosm/freight-service/internal/service"
)

const databaseSetupTimeout = 10 * time.Second

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	TariffsRepo    repository.TariffsRepositoryInterface
	PartsRepo      repository.PartsRepositoryInterface
	UsersRepo      repository.UsersRepositoryInterface
	LoggingService service.LoggingService

	TariffsCircuitBreaker *circuitbreaker.CircuitBreaker
	PartsCircuitBreaker   *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the repositories behind circuit breakers.
// Returns nil if the database is disabled or the connection fails; the service then runs
// on configuration defaults and the catalog file.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		log.Info().Msg("MongoDB disabled")
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), databaseSetupTimeout)
	defer cancel()
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(ctx, ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	tariffsCB := newBreaker(cfg, "mongodb-tariffs")
	partsCB := newBreaker(cfg, "mongodb-parts")
	logsCB := newBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                    db,
		TariffsRepo:           repository.NewTariffsRepositoryWithCircuitBreaker(repository.NewTariffsRepository(db), tariffsCB),
		PartsRepo:             repository.NewPartsRepositoryWithCircuitBreaker(repository.NewPartsRepository(db), partsCB),
		UsersRepo:             repository.NewUsersRepository(db),
		LoggingService:        service.NewLoggingService(logsRepo),
		TariffsCircuitBreaker: tariffsCB,
		PartsCircuitBreaker:   partsCB,
		LogsCircuitBreaker:    logsCB,
	}
}

func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}

// Users returns the user repository, or nil without a database.
func (d *DatabaseComponents) Users() repository.UsersRepositoryInterface {
	if d == nil {
		return nil
	}
	return d.UsersRepo
}

// Close disconnects from MongoDB. Safe on a nil receiver.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil || d.DB == nil {
		return
	}
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
