// Package app provides service initialization.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/freight-service/config"
	"github.com/guttosm/freight-service/internal/circuitbreaker"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/rates"
	"github.com/guttosm/freight-service/internal/repository"
	"github.com/guttosm/freight-service/internal/service"
)

const (
	seedTimeout        = 10 * time.Second
	initialRateTimeout = 15 * time.Second
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator   *service.FreightCalculatorService
	Tariffs      *service.TariffServiceImpl
	Catalog      *service.CatalogServiceImpl
	Quotes       service.QuoteService
	Rates        *rates.CachedProvider
	Refresher    *rates.Refresher
	RatesBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices builds the business services. db may be nil.
func InitializeServices(cfg config.Config, db *DatabaseComponents) (*ServiceComponents, error) {
	if err := rates.ValidateBase(cfg.Freight.DestinationCurrency); err != nil {
		return nil, fmt.Errorf("configure exchange rates: %w", err)
	}

	var opts []service.Option
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}
	calculator := service.NewFreightCalculatorService(opts...)

	var (
		tariffsRepo repository.TariffsRepositoryInterface
		partsRepo   repository.PartsRepositoryInterface
	)
	if db != nil {
		tariffsRepo = db.TariffsRepo
		partsRepo = db.PartsRepo
	}

	tariffs := service.NewTariffService(tariffsRepo, service.DefaultTariff(cfg.Freight))
	if tariffsRepo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
		if err := tariffs.Seed(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to seed default tariff")
		}
		cancel()
	}
	tariffs.OnChange(func(t model.Tariff) {
		calculator.InvalidateCache()
		log.Info().Int("version", t.Version).Msg("Tariff changed, quote cache cleared")
	})

	catalog := service.NewCatalogService(partsRepo)
	if err := loadCatalog(catalog, cfg.Freight.CatalogFile, partsRepo != nil); err != nil {
		calculator.Close()
		return nil, err
	}

	ratesBreaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Database.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Database.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Database.CircuitBreakerTimeout,
		Name:             "exchange-rates",
		IsFailure: func(err error) bool {
			return !errors.Is(err, rates.ErrUnsupportedCurrency)
		},
	})
	provider, static, err := rates.NewProvider(cfg.Rates, cfg.Freight.DestinationCurrency, ratesBreaker)
	if err != nil {
		calculator.Close()
		return nil, fmt.Errorf("configure exchange rates: %w", err)
	}
	refresher := rates.NewRefresher(provider, cfg.Rates.RefreshSchedule, static.Currencies())

	return &ServiceComponents{
		Calculator:   calculator,
		Tariffs:      tariffs,
		Catalog:      catalog,
		Quotes:       service.NewQuoteService(calculator, tariffs, catalog, provider),
		Rates:        provider,
		Refresher:    refresher,
		RatesBreaker: ratesBreaker,
	}, nil
}

// loadCatalog prefers the stored catalog and falls back to the configured file. A file
// loaded while the store is empty is written back so the next start finds it there.
func loadCatalog(catalog *service.CatalogServiceImpl, file string, persistent bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if persistent {
		loaded, err := catalog.LoadFromRepository(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to load catalog from database")
		}
		if loaded {
			return nil
		}
	}

	if file == "" {
		log.Warn().Msg("No catalog available; searches and model lookups return 503 until one is imported")
		return nil
	}
	if err := catalog.LoadFile(file); err != nil {
		return err
	}

	if persistent {
		if err := catalog.Persist(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to store catalog")
		}
	}
	return nil
}

// StartBackground warms the rate cache and starts the refresh schedule.
func (s *ServiceComponents) StartBackground(ctx context.Context) error {
	warmCtx, cancel := context.WithTimeout(ctx, initialRateTimeout)
	s.Refresher.RunOnce(warmCtx)
	cancel()
	return s.Refresher.Start(ctx)
}

// Close stops background work.
func (s *ServiceComponents) Close(ctx context.Context) {
	s.Refresher.Stop(ctx)
	s.Rates.Stop()
	s.Calculator.Close()
}
