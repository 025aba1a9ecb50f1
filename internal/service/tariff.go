package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/freight-service/config"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when an operation needs MongoDB and it is disabled.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// TariffService resolves the rate terms applied when a quote omits them.
type TariffService interface {
	// Active returns the stored active tariff, or the configured default when none is stored.
	Active(ctx context.Context) model.Tariff
	// Update stores tariff as the new active version.
	Update(ctx context.Context, tariff model.Tariff, updatedBy string) (*model.Tariff, error)
	// History returns stored tariff versions, newest first.
	History(ctx context.Context, limit int) ([]model.Tariff, error)
	// Seed stores the configured default when no tariff has been stored yet.
	Seed(ctx context.Context) error
	// OnChange registers fn to run after every successful update.
	OnChange(fn func(model.Tariff))
}

// TariffServiceImpl implements TariffService.
type TariffServiceImpl struct {
	repo     repository.TariffsRepositoryInterface
	defaults model.Tariff

	mu        sync.RWMutex
	listeners []func(model.Tariff)
}

// DefaultTariff builds the fallback tariff from configuration.
func DefaultTariff(cfg config.FreightConfig) model.Tariff {
	return model.Tariff{
		PricePerKg:          cfg.PricePerKg,
		SurchargePerKg:      cfg.SurchargePerKg,
		FixedFee:            cfg.FixedFee,
		FeeEnabled:          cfg.FeeEnabled,
		SourceCurrency:      model.NormalizeCurrency(cfg.SourceCurrency),
		DestinationCurrency: model.NormalizeCurrency(cfg.DestinationCurrency),
		Active:              true,
		CreatedBy:           "default",
	}
}

// NewTariffService creates a tariff service. repo may be nil when MongoDB is disabled.
func NewTariffService(repo repository.TariffsRepositoryInterface, defaults model.Tariff) *TariffServiceImpl {
	return &TariffServiceImpl{
		repo:     repo,
		defaults: defaults,
	}
}

func (s *TariffServiceImpl) Active(ctx context.Context) model.Tariff {
	if s.repo == nil {
		return s.defaults
	}
	active, err := s.repo.GetActive(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load active tariff, using defaults")
		return s.defaults
	}
	if active == nil {
		return s.defaults
	}
	return *active
}

func (s *TariffServiceImpl) Update(ctx context.Context, tariff model.Tariff, updatedBy string) (*model.Tariff, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	tariff.SourceCurrency = model.NormalizeCurrency(tariff.SourceCurrency)
	tariff.DestinationCurrency = model.NormalizeCurrency(tariff.DestinationCurrency)
	if tariff.SourceCurrency == "" {
		tariff.SourceCurrency = s.defaults.SourceCurrency
	}
	if tariff.DestinationCurrency == "" {
		tariff.DestinationCurrency = s.defaults.DestinationCurrency
	}
	if err := validateTariff(tariff); err != nil {
		return nil, err
	}
	if tariff.DestinationCurrency != s.defaults.DestinationCurrency {
		return nil, &model.InvalidInputError{
			Field:  "destination_currency",
			Reason: fmt.Sprintf("must be %s, the currency exchange rates are quoted in", s.defaults.DestinationCurrency),
		}
	}

	stored, err := s.repo.Create(ctx, tariff, updatedBy)
	if err != nil {
		return nil, fmt.Errorf("store tariff: %w", err)
	}

	log.Info().
		Int("version", stored.Version).
		Float64("price_per_kg", stored.PricePerKg).
		Float64("surcharge_per_kg", stored.SurchargePerKg).
		Str("updated_by", updatedBy).
		Msg("Tariff updated")

	s.mu.RLock()
	listeners := append([]func(model.Tariff){}, s.listeners...)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(*stored)
	}
	return stored, nil
}

func (s *TariffServiceImpl) History(ctx context.Context, limit int) ([]model.Tariff, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}

func (s *TariffServiceImpl) Seed(ctx context.Context) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	active, err := s.repo.GetActive(ctx)
	if err != nil {
		return err
	}
	if active != nil {
		return nil
	}
	created, err := s.repo.Create(ctx, s.defaults, "system")
	if err != nil {
		return err
	}
	log.Info().Int("version", created.Version).Float64("price_per_kg", created.PricePerKg).Msg("Created default tariff")
	return nil
}

func (s *TariffServiceImpl) OnChange(fn func(model.Tariff)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func validateTariff(t model.Tariff) error {
	if err := nonNegative("price_per_kg", t.PricePerKg); err != nil {
		return err
	}
	if err := nonNegative("surcharge_per_kg", t.SurchargePerKg); err != nil {
		return err
	}
	if err := nonNegative("fixed_fee", t.FixedFee); err != nil {
		return err
	}
	if !isCurrencyCode(t.SourceCurrency) {
		return &model.InvalidInputError{Field: "source_currency", Reason: "must be a three-letter ISO code"}
	}
	if !isCurrencyCode(t.DestinationCurrency) {
		return &model.InvalidInputError{Field: "destination_currency", Reason: "must be a three-letter ISO code"}
	}
	return nil
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
