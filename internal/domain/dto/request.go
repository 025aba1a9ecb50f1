// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// Quote requests use pointer fields so that an omitted value can be told apart from
// an explicit zero and filled from the catalog, the packaging preset or the tariff.
package dto

import (
	"github.com/guttosm/freight-service/internal/domain/model"
)

// PackagingRequest selects a packaging preset and overrides its count or tare.
//
// @Description Packaging choice for a line item
type PackagingRequest struct {
	Type   model.PackagingType `json:"type" example:"pallet_d"`
	Count  *int                `json:"count,omitempty" example:"1"`
	TareKg *float64            `json:"tare_kg,omitempty" example:"15"`
} // @name PackagingRequest

// LineItemRequest describes one group of identical pieces. Omitted dimensions come from
// the packaging preset, then the catalog record named by Model, then service defaults.
//
// @Description Line item with optional catalog model lookup
type LineItemRequest struct {
	Model        string            `json:"model,omitempty" example:"22214 EK"`
	Length       *float64          `json:"length,omitempty" example:"91"`
	Width        *float64          `json:"width,omitempty" example:"107"`
	Height       *float64          `json:"height,omitempty" example:"61"`
	Unit         string            `json:"unit,omitempty" example:"cm" enums:"cm,mm"`
	UnitWeightKg *float64          `json:"unit_weight_kg,omitempty" example:"157"`
	Quantity     *int              `json:"quantity,omitempty" example:"4"`
	Packaging    *PackagingRequest `json:"packaging,omitempty"`
	ScalingMode  string            `json:"scaling_mode,omitempty" example:"per_package" enums:"per_piece,per_package"`
} // @name LineItemRequest

// TermsRequest overrides the active tariff. Currency is the source currency; when
// ExchangeRate is omitted the rate provider is asked for it.
//
// @Description Optional rate term overrides
type TermsRequest struct {
	PricePerKg     *float64 `json:"price_per_kg,omitempty" example:"1.75"`
	SurchargePerKg *float64 `json:"surcharge_per_kg,omitempty" example:"1.35"`
	FixedFee       *float64 `json:"fixed_fee,omitempty" example:"25"`
	FeeEnabled     *bool    `json:"fee_enabled,omitempty" example:"true"`
	Currency       string   `json:"currency,omitempty" example:"USD"`
	ExchangeRate   *float64 `json:"exchange_rate,omitempty" example:"1463.2"`
} // @name TermsRequest

// QuoteRequest is the body of POST /api/quotes.
//
// @Description Single shipment quote request
type QuoteRequest struct {
	LineItemRequest
	TermsRequest
} // @name QuoteRequest

// BatchQuoteRequest is the body of POST /api/quotes/batch.
//
// @Description Consolidated multi line-item quote request
type BatchQuoteRequest struct {
	Items []LineItemRequest `json:"items" binding:"required,min=1,max=200,dive"`
	TermsRequest
} // @name BatchQuoteRequest

// UpdateTariffRequest is the body of PUT /api/tariff.
//
// @Description New active tariff
type UpdateTariffRequest struct {
	PricePerKg          *float64 `json:"price_per_kg" binding:"required" example:"5"`
	SurchargePerKg      float64  `json:"surcharge_per_kg" example:"0.25"`
	FixedFee            float64  `json:"fixed_fee" example:"25"`
	FeeEnabled          bool     `json:"fee_enabled" example:"true"`
	SourceCurrency      string   `json:"source_currency,omitempty" example:"USD"`
	DestinationCurrency string   `json:"destination_currency,omitempty" example:"KRW"`
} // @name UpdateTariffRequest

// Tariff converts the request into a tariff model.
func (r UpdateTariffRequest) Tariff() model.Tariff {
	var price float64
	if r.PricePerKg != nil {
		price = *r.PricePerKg
	}
	return model.Tariff{
		PricePerKg:          price,
		SurchargePerKg:      r.SurchargePerKg,
		FixedFee:            r.FixedFee,
		FeeEnabled:          r.FeeEnabled,
		SourceCurrency:      r.SourceCurrency,
		DestinationCurrency: r.DestinationCurrency,
	}
}

// AuditQuery binds the query string of GET /api/audit.
type AuditQuery struct {
	RequestID  string `form:"request_id"`
	Level      string `form:"level" binding:"omitempty,oneof=debug info warn error"`
	Method     string `form:"method"`
	Path       string `form:"path"`
	ActionType string `form:"action"`
	UserEmail  string `form:"user"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Limit      int    `form:"limit" binding:"omitempty,min=1"`
	Skip       int    `form:"skip" binding:"omitempty,min=0"`
}
