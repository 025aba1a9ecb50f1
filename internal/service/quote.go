package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/rates"
)

// Values used when a quote request and its catalog record both omit a field.
const (
	DefaultDimensionCM  = 10.0
	DefaultUnitWeightKg = 1.0
	DefaultQuantity     = 100
)

// ErrPartNotFound is returned when a quote names a model the catalog does not know.
var ErrPartNotFound = errors.New("part not found in catalog")

// QuoteService turns partially filled quote requests into priced quotes.
type QuoteService interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error)
	QuoteBatch(ctx context.Context, req dto.BatchQuoteRequest) (*dto.BatchQuoteResponse, error)
}

// QuoteServiceImpl resolves defaults from the catalog, packaging presets, the active
// tariff and the rate provider, then delegates the arithmetic to the calculator.
type QuoteServiceImpl struct {
	calculator FreightCalculator
	tariffs    TariffService
	catalog    CatalogService
	rates      rates.Provider
}

// NewQuoteService creates a quote service. catalog may be nil, in which case model
// lookups fail with ErrCatalogUnavailable.
func NewQuoteService(calculator FreightCalculator, tariffs TariffService, catalog CatalogService, provider rates.Provider) *QuoteServiceImpl {
	return &QuoteServiceImpl{
		calculator: calculator,
		tariffs:    tariffs,
		catalog:    catalog,
		rates:      provider,
	}
}

// resolvedLine is a line item with the records it was filled from.
type resolvedLine struct {
	item      model.LineItem
	packaging model.PackagingType
	part      *model.PartSpec
}

// resolvedTerms are the rate terms with their currencies and rate provenance.
type resolvedTerms struct {
	terms       model.RateTerms
	source      string
	destination string
	rateSource  string
}

func (s *QuoteServiceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	line, err := s.resolveLine(req.LineItemRequest)
	if err != nil {
		return nil, err
	}
	terms, err := s.resolveTerms(ctx, req.TermsRequest)
	if err != nil {
		return nil, err
	}

	result, err := s.calculator.Quote(model.ShipmentInput{LineItem: line.item, Terms: terms.terms})
	if err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{
		ID:                  uuid.NewString(),
		Input:               line.item,
		Terms:               terms.terms,
		Packaging:           line.packaging,
		Part:                line.part,
		Result:              result,
		Display:             display(result),
		SourceCurrency:      terms.source,
		DestinationCurrency: terms.destination,
		RateSource:          terms.rateSource,
		ScalingMode:         line.item.Scaling,
	}, nil
}

func (s *QuoteServiceImpl) QuoteBatch(ctx context.Context, req dto.BatchQuoteRequest) (*dto.BatchQuoteResponse, error) {
	if len(req.Items) == 0 {
		return nil, &model.InvalidInputError{Field: "items", Reason: "must contain at least one line item"}
	}

	lines := make([]resolvedLine, len(req.Items))
	items := make([]model.LineItem, len(req.Items))
	for i, itemReq := range req.Items {
		line, err := s.resolveLine(itemReq)
		if err != nil {
			return nil, prefixLineError(i, err)
		}
		lines[i] = line
		items[i] = line.item
	}

	terms, err := s.resolveTerms(ctx, req.TermsRequest)
	if err != nil {
		return nil, err
	}

	result, err := s.calculator.QuoteBatch(items, terms.terms)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BatchLine, len(lines))
	for i, line := range lines {
		out[i] = dto.BatchLine{
			Input:     line.item,
			Packaging: line.packaging,
			Part:      line.part,
			Weights:   result.Lines[i],
		}
	}

	return &dto.BatchQuoteResponse{
		ID:                  uuid.NewString(),
		Lines:               out,
		Terms:               terms.terms,
		Total:               result.Total,
		Display:             display(result.Total),
		SourceCurrency:      terms.source,
		DestinationCurrency: terms.destination,
		RateSource:          terms.rateSource,
	}, nil
}

func (s *QuoteServiceImpl) resolveLine(req dto.LineItemRequest) (resolvedLine, error) {
	packagingType := model.PackagingNone
	if req.Packaging != nil && req.Packaging.Type != "" {
		packagingType = req.Packaging.Type
	}
	profile, ok := model.LookupPackaging(packagingType)
	if !ok {
		return resolvedLine{}, &model.InvalidInputError{Field: "packaging.type", Reason: fmt.Sprintf("unknown packaging %q", packagingType)}
	}

	var part *model.PartSpec
	if req.Model != "" {
		found, err := s.lookupPart(req.Model)
		if err != nil {
			return resolvedLine{}, err
		}
		part = &found
	}

	item := model.LineItem{
		Quantity:     DefaultQuantity,
		UnitWeightKg: DefaultUnitWeightKg,
		TareKg:       profile.TareKg,
		PackageCount: 1,
	}

	if err := resolveDimensions(&item, req, profile, part); err != nil {
		return resolvedLine{}, err
	}

	switch {
	case req.UnitWeightKg != nil:
		item.UnitWeightKg = *req.UnitWeightKg
	case part != nil:
		item.UnitWeightKg = part.WeightKg
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Packaging != nil {
		if req.Packaging.Count != nil {
			item.PackageCount = *req.Packaging.Count
		}
		if req.Packaging.TareKg != nil {
			item.TareKg = *req.Packaging.TareKg
		}
	}

	if req.ScalingMode != "" {
		item.Scaling = model.ScalingMode(req.ScalingMode)
	} else if mode, ok := profile.DefaultScaling(); ok {
		item.Scaling = mode
	} else {
		return resolvedLine{}, &model.InvalidInputError{Field: "scaling_mode", Reason: "is required for custom packaging"}
	}

	return resolvedLine{item: item, packaging: profile.Type, part: part}, nil
}

// resolveDimensions fills the outer dimensions as one triple: explicit values, else the
// packaging preset, else the catalog record, else the defaults.
func resolveDimensions(item *model.LineItem, req dto.LineItemRequest, profile model.PackagingProfile, part *model.PartSpec) error {
	given := 0
	for _, v := range []*float64{req.Length, req.Width, req.Height} {
		if v != nil {
			given++
		}
	}

	switch {
	case given == 3:
		item.Length, item.Width, item.Height = *req.Length, *req.Width, *req.Height
		item.Unit = model.DimensionUnit(req.Unit)
		if item.Unit == "" {
			item.Unit = model.UnitCentimeter
		}
	case given > 0:
		return &model.InvalidInputError{Field: "length", Reason: "length, width and height must be given together"}
	case profile.HasDimensions():
		item.Length, item.Width, item.Height = profile.LengthMM, profile.WidthMM, profile.HeightMM
		item.Unit = model.UnitMillimeter
	case part != nil:
		item.Length, item.Width, item.Height = part.LengthMM, part.WidthMM, part.HeightMM
		item.Unit = model.UnitMillimeter
	default:
		item.Length, item.Width, item.Height = DefaultDimensionCM, DefaultDimensionCM, DefaultDimensionCM
		item.Unit = model.UnitCentimeter
	}
	return nil
}

func (s *QuoteServiceImpl) lookupPart(query string) (model.PartSpec, error) {
	if s.catalog == nil {
		return model.PartSpec{}, ErrCatalogUnavailable
	}
	part, ok, err := s.catalog.Lookup(query)
	if err != nil {
		return model.PartSpec{}, err
	}
	if !ok {
		return model.PartSpec{}, fmt.Errorf("%w: %s", ErrPartNotFound, query)
	}
	return part, nil
}

func (s *QuoteServiceImpl) resolveTerms(ctx context.Context, req dto.TermsRequest) (resolvedTerms, error) {
	tariff := s.tariffs.Active(ctx)

	terms := tariff.Terms(0)
	if req.PricePerKg != nil {
		terms.PricePerKg = *req.PricePerKg
	}
	if req.SurchargePerKg != nil {
		terms.SurchargePerKg = *req.SurchargePerKg
	}
	if req.FixedFee != nil {
		terms.FixedFee = *req.FixedFee
	}
	if req.FeeEnabled != nil {
		terms.FeeEnabled = *req.FeeEnabled
	}

	source := model.NormalizeCurrency(req.Currency)
	if source == "" {
		source = tariff.SourceCurrency
	}
	out := resolvedTerms{source: source, destination: tariff.DestinationCurrency}

	if req.ExchangeRate != nil {
		terms.ExchangeRate = *req.ExchangeRate
		out.rateSource = rates.SourceManual
	} else {
		if s.rates == nil {
			return resolvedTerms{}, rates.ErrRateUnavailable
		}
		quote, err := s.rates.Rate(ctx, source)
		if err != nil {
			return resolvedTerms{}, fmt.Errorf("exchange rate for %s: %w", source, err)
		}
		terms.ExchangeRate = quote.Rate
		out.rateSource = quote.Source
	}

	// Tariff prices are denominated in the tariff's source currency.
	if source != tariff.SourceCurrency && (req.PricePerKg == nil || req.SurchargePerKg == nil || req.FixedFee == nil) {
		return resolvedTerms{}, &model.InvalidInputError{
			Field:  "currency",
			Reason: fmt.Sprintf("price_per_kg, surcharge_per_kg and fixed_fee are required when quoting in %s instead of %s", source, tariff.SourceCurrency),
		}
	}

	out.terms = terms
	return out, nil
}

func prefixLineError(i int, err error) error {
	prefix := fmt.Sprintf("items[%d]", i)
	var invalid *model.InvalidInputError
	if errors.As(err, &invalid) {
		return invalid.WithPrefix(prefix)
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

func display(r model.ChargeResult) dto.ChargeDisplay {
	return dto.ChargeDisplay{
		ActualWeightKg:     decimal.NewFromFloat(r.ActualWeightKg).StringFixed(2),
		VolumetricWeightKg: decimal.NewFromFloat(r.VolumetricWeightKg).StringFixed(2),
		ChargeableWeightKg: decimal.NewFromFloat(r.ChargeableWeightKg).StringFixed(2),
		CostSource:         decimal.NewFromFloat(r.CostSource).StringFixed(2),
		CostDestination:    decimal.NewFromFloat(r.CostDestination).StringFixed(0),
	}
}
