// Package service contains the business logic for the freight service.
package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/metrics"
	"github.com/guttosm/freight-service/internal/service/cache"
)

// ComputeWeights returns the actual, volumetric and chargeable weight of one line item.
func ComputeWeights(item model.LineItem) (model.WeightBreakdown, error) {
	if err := validateLineItem(item); err != nil {
		return model.WeightBreakdown{}, err
	}
	return weigh(item), nil
}

// ComputeCharge computes the chargeable weight and cost of a single shipment.
func ComputeCharge(input model.ShipmentInput) (model.ChargeResult, error) {
	if err := validateLineItem(input.LineItem); err != nil {
		return model.ChargeResult{}, err
	}
	if err := validateTerms(input.Terms); err != nil {
		return model.ChargeResult{}, err
	}
	return price(weigh(input.LineItem), input.Terms), nil
}

// ComputeBatch consolidates several line items into one shipment. Actual and volumetric
// weights are summed across all items before the larger total is charged.
func ComputeBatch(items []model.LineItem, terms model.RateTerms) (model.BatchResult, error) {
	if len(items) == 0 {
		return model.BatchResult{}, &model.InvalidInputError{Field: "items", Reason: "must contain at least one line item"}
	}
	if err := validateTerms(terms); err != nil {
		return model.BatchResult{}, err
	}

	lines := make([]model.WeightBreakdown, len(items))
	var total model.WeightBreakdown
	for i, item := range items {
		if err := validateLineItem(item); err != nil {
			var invalid *model.InvalidInputError
			if errors.As(err, &invalid) {
				return model.BatchResult{}, invalid.WithPrefix(fmt.Sprintf("items[%d]", i))
			}
			return model.BatchResult{}, err
		}
		lines[i] = weigh(item)
		total.ActualWeightKg += lines[i].ActualWeightKg
		total.VolumetricWeightKg += lines[i].VolumetricWeightKg
	}
	total.ChargeableWeightKg = math.Max(total.ActualWeightKg, total.VolumetricWeightKg)

	return model.BatchResult{Lines: lines, Total: price(total, terms)}, nil
}

func weigh(item model.LineItem) model.WeightBreakdown {
	actual := item.UnitWeightKg*float64(item.Quantity) + item.TareKg*float64(item.PackageCount)

	multiplier := float64(item.Quantity)
	if item.Scaling == model.ScalePerPackage {
		multiplier = float64(item.PackageCount)
	}
	l := item.Unit.ToCentimeters(item.Length)
	w := item.Unit.ToCentimeters(item.Width)
	h := item.Unit.ToCentimeters(item.Height)
	volumetric := l * w * h * multiplier / model.VolumetricDivisor

	return model.WeightBreakdown{
		ActualWeightKg:     actual,
		VolumetricWeightKg: volumetric,
		ChargeableWeightKg: math.Max(actual, volumetric),
	}
}

func price(w model.WeightBreakdown, terms model.RateTerms) model.ChargeResult {
	cost := w.ChargeableWeightKg * (terms.PricePerKg + terms.SurchargePerKg)
	if terms.FeeEnabled {
		cost += terms.FixedFee
	}
	return model.ChargeResult{
		WeightBreakdown: w,
		CostSource:      cost,
		CostDestination: cost * terms.ExchangeRate,
	}
}

func validateLineItem(item model.LineItem) error {
	if err := positive("length", item.Length); err != nil {
		return err
	}
	if err := positive("width", item.Width); err != nil {
		return err
	}
	if err := positive("height", item.Height); err != nil {
		return err
	}
	if !item.Unit.Valid() {
		return &model.InvalidInputError{Field: "unit", Reason: fmt.Sprintf("unsupported unit %q", item.Unit)}
	}
	if err := positive("unit_weight_kg", item.UnitWeightKg); err != nil {
		return err
	}
	if item.Quantity < 1 {
		return &model.InvalidInputError{Field: "quantity", Reason: "must be at least 1"}
	}
	if item.PackageCount < 1 {
		return &model.InvalidInputError{Field: "package_count", Reason: "must be at least 1"}
	}
	if err := nonNegative("tare_kg", item.TareKg); err != nil {
		return err
	}
	if !item.Scaling.Valid() {
		return &model.InvalidInputError{Field: "scaling_mode", Reason: "must be per_piece or per_package"}
	}
	return nil
}

func validateTerms(terms model.RateTerms) error {
	if err := nonNegative("price_per_kg", terms.PricePerKg); err != nil {
		return err
	}
	if err := nonNegative("surcharge_per_kg", terms.SurchargePerKg); err != nil {
		return err
	}
	if err := nonNegative("fixed_fee", terms.FixedFee); err != nil {
		return err
	}
	return positive("exchange_rate", terms.ExchangeRate)
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &model.InvalidInputError{Field: field, Reason: "must be a finite number"}
	}
	if v <= 0 {
		return &model.InvalidInputError{Field: field, Reason: "must be greater than zero"}
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &model.InvalidInputError{Field: field, Reason: "must be a finite number"}
	}
	if v < 0 {
		return &model.InvalidInputError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

// FreightCalculator defines the interface for freight quote computations.
type FreightCalculator interface {
	Quote(input model.ShipmentInput) (model.ChargeResult, error)
	QuoteBatch(items []model.LineItem, terms model.RateTerms) (model.BatchResult, error)
	// InvalidateCache clears cached results (used when the active tariff changes).
	InvalidateCache()
}

// Option configures a FreightCalculatorService.
type Option func(*FreightCalculatorService)

// FreightCalculatorService wraps the charge computation with result caching and metrics.
type FreightCalculatorService struct {
	cache cache.Cache[model.ChargeResult]
}

// NewFreightCalculatorService creates a new FreightCalculatorService with the given options.
func NewFreightCalculatorService(opts ...Option) *FreightCalculatorService {
	s := &FreightCalculatorService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *FreightCalculatorService) {
		if capacity > 0 {
			s.cache = cache.NewShardedCache[model.ChargeResult]("quotes", capacity, ttl, 16)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache[model.ChargeResult]) Option {
	return func(s *FreightCalculatorService) {
		s.cache = c
	}
}

// Quote computes a single-shipment charge, serving repeated inputs from the cache.
func (s *FreightCalculatorService) Quote(input model.ShipmentInput) (model.ChargeResult, error) {
	start := time.Now()

	key := fingerprint(input)
	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			metrics.RecordQuote("single", time.Since(start), "cached")
			return result, nil
		}
	}

	result, err := ComputeCharge(input)
	if err != nil {
		metrics.RecordQuote("single", time.Since(start), "invalid")
		return model.ChargeResult{}, err
	}

	if s.cache != nil {
		s.cache.Set(key, result)
	}
	metrics.RecordQuote("single", time.Since(start), "success")
	metrics.RecordChargeBasis(result.VolumetricWeightKg > result.ActualWeightKg)
	return result, nil
}

// QuoteBatch computes a consolidated multi-item charge.
func (s *FreightCalculatorService) QuoteBatch(items []model.LineItem, terms model.RateTerms) (model.BatchResult, error) {
	start := time.Now()

	result, err := ComputeBatch(items, terms)
	if err != nil {
		metrics.RecordQuote("batch", time.Since(start), "invalid")
		return model.BatchResult{}, err
	}

	metrics.RecordQuote("batch", time.Since(start), "success")
	metrics.RecordChargeBasis(result.Total.VolumetricWeightKg > result.Total.ActualWeightKg)
	return result, nil
}

// InvalidateCache clears the result cache.
func (s *FreightCalculatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Close stops the cache background goroutines.
func (s *FreightCalculatorService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// fingerprint renders every input field; %v prints float64 with the shortest exact form.
func fingerprint(input model.ShipmentInput) string {
	return fmt.Sprintf("%v", input)
}
