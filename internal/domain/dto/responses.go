package dto

import (
	"github.com/guttosm/freight-service/internal/domain/model"
)

// ChargeDisplay is the rounded presentation of a charge: weights and source cost to two
// decimals, destination cost to whole units.
//
// @Description Display-rounded weights and costs
type ChargeDisplay struct {
	ActualWeightKg     string `json:"actual_weight_kg" example:"628.00"`
	VolumetricWeightKg string `json:"volumetric_weight_kg" example:"98.99"`
	ChargeableWeightKg string `json:"chargeable_weight_kg" example:"628.00"`
	CostSource         string `json:"cost_source" example:"1971.80"`
	CostDestination    string `json:"cost_destination" example:"2885138"`
} // @name ChargeDisplay

// QuoteResponse is returned by POST /api/quotes.
//
// @Description Single shipment quote
type QuoteResponse struct {
	ID                  string              `json:"id" example:"0b6f8b8e-6f55-4c1e-9a55-5c1f0b1f2d11"`
	Input               model.LineItem      `json:"input"`
	Terms               model.RateTerms     `json:"terms"`
	Packaging           model.PackagingType `json:"packaging" example:"pallet_d"`
	Part                *model.PartSpec     `json:"part,omitempty"`
	Result              model.ChargeResult  `json:"result"`
	Display             ChargeDisplay       `json:"display"`
	SourceCurrency      string              `json:"source_currency" example:"USD"`
	DestinationCurrency string              `json:"destination_currency" example:"KRW"`
	RateSource          string              `json:"rate_source" example:"live"`
	ScalingMode         model.ScalingMode   `json:"scaling_mode" example:"per_package"`
	Disclaimer          string              `json:"disclaimer,omitempty"`
} // @name QuoteResponse

// BatchLine is one resolved line of a batch quote.
//
// @Description Resolved line item and its weights
type BatchLine struct {
	Input     model.LineItem        `json:"input"`
	Packaging model.PackagingType   `json:"packaging"`
	Part      *model.PartSpec       `json:"part,omitempty"`
	Weights   model.WeightBreakdown `json:"weights"`
} // @name BatchLine

// BatchQuoteResponse is returned by POST /api/quotes/batch.
//
// @Description Consolidated multi line-item quote
type BatchQuoteResponse struct {
	ID                  string             `json:"id"`
	Lines               []BatchLine        `json:"lines"`
	Terms               model.RateTerms    `json:"terms"`
	Total               model.ChargeResult `json:"total"`
	Display             ChargeDisplay      `json:"display"`
	SourceCurrency      string             `json:"source_currency" example:"USD"`
	DestinationCurrency string             `json:"destination_currency" example:"KRW"`
	RateSource          string             `json:"rate_source" example:"fallback"`
	Disclaimer          string             `json:"disclaimer,omitempty"`
} // @name BatchQuoteResponse

// CatalogSearchResponse is returned by GET /api/catalog/search.
//
// @Description Catalog matches in catalog order
type CatalogSearchResponse struct {
	Query   string           `json:"query" example:"22214"`
	Count   int              `json:"count" example:"2"`
	Message string           `json:"message,omitempty"`
	Items   []model.PartSpec `json:"items"`
} // @name CatalogSearchResponse

// CatalogImportResponse is returned by PUT /api/catalog.
//
// @Description Catalog import outcome
type CatalogImportResponse struct {
	Imported int    `json:"imported" example:"1240"`
	Message  string `json:"message,omitempty"`
} // @name CatalogImportResponse

// ExchangeRateResponse is returned by GET /api/exchange-rates/:currency.
//
// @Description Exchange rate into the destination currency
type ExchangeRateResponse struct {
	Currency            string  `json:"currency" example:"USD"`
	DestinationCurrency string  `json:"destination_currency" example:"KRW"`
	Rate                float64 `json:"rate" example:"1450"`
	Source              string  `json:"source" example:"cache"`
	FetchedAt           string  `json:"fetched_at" example:"2026-03-02T10:00:00Z"`
} // @name ExchangeRateResponse

// AuditPage is returned by GET /api/audit.
//
// @Description One page of stored log entries
type AuditPage struct {
	Entries []model.LogEntry `json:"entries"`
	Total   int64            `json:"total" example:"42"`
	Limit   int              `json:"limit" example:"50"`
	Skip    int              `json:"skip" example:"0"`
} // @name AuditPage

// NewUserResponse builds the public view of a user.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{Email: u.Email, Name: u.Name, Role: u.Role}
}
