// Package model defines the core domain entities for the freight service.
package model

import (
	"fmt"
	"strings"
)

// VolumetricDivisor converts a centimeter volume into kilograms for air freight.
const VolumetricDivisor = 6000.0

// DimensionUnit is the unit in which outer dimensions are expressed.
type DimensionUnit string

const (
	// UnitCentimeter is the canonical unit.
	UnitCentimeter DimensionUnit = "cm"
	// UnitMillimeter values are divided by 10 before use.
	UnitMillimeter DimensionUnit = "mm"
)

// Valid reports whether u is a supported unit.
func (u DimensionUnit) Valid() bool {
	return u == UnitCentimeter || u == UnitMillimeter
}

// ToCentimeters converts v from u to centimeters.
func (u DimensionUnit) ToCentimeters(v float64) float64 {
	if u == UnitMillimeter {
		return v / 10
	}
	return v
}

// ScalingMode selects what multiplies the single-unit volume.
type ScalingMode string

const (
	// ScalePerPiece multiplies the volume by the piece quantity.
	ScalePerPiece ScalingMode = "per_piece"
	// ScalePerPackage multiplies the volume by the packaging-unit count.
	ScalePerPackage ScalingMode = "per_package"
)

// Valid reports whether m is a supported scaling mode.
func (m ScalingMode) Valid() bool {
	return m == ScalePerPiece || m == ScalePerPackage
}

// LineItem is one group of identical pieces sharing the same packaging.
//
// @Description Physical description of a shipped line item
type LineItem struct {
	Length       float64       `json:"length" example:"91"`
	Width        float64       `json:"width" example:"107"`
	Height       float64       `json:"height" example:"61"`
	Unit         DimensionUnit `json:"unit" example:"cm"`
	UnitWeightKg float64       `json:"unit_weight_kg" example:"157"`
	Quantity     int           `json:"quantity" example:"4"`
	TareKg       float64       `json:"tare_kg" example:"0"`
	PackageCount int           `json:"package_count" example:"1"`
	Scaling      ScalingMode   `json:"scaling_mode" example:"per_package"`
} // @name LineItem

// RateTerms are the monetary terms applied to a chargeable weight.
//
// @Description Per-kg price, surcharge, optional fixed fee and exchange rate
type RateTerms struct {
	PricePerKg     float64 `json:"price_per_kg" example:"1.75"`
	SurchargePerKg float64 `json:"surcharge_per_kg" example:"1.35"`
	FixedFee       float64 `json:"fixed_fee" example:"25"`
	FeeEnabled     bool    `json:"fee_enabled" example:"true"`
	ExchangeRate   float64 `json:"exchange_rate" example:"1463.2"`
} // @name RateTerms

// ShipmentInput is a single line item with its rate terms.
type ShipmentInput struct {
	LineItem
	Terms RateTerms `json:"terms"`
}

// WeightBreakdown is the weight part of a charge computation.
//
// @Description Actual, volumetric and chargeable weight in kilograms
type WeightBreakdown struct {
	ActualWeightKg     float64 `json:"actual_weight_kg" example:"628"`
	VolumetricWeightKg float64 `json:"volumetric_weight_kg" example:"98.99"`
	ChargeableWeightKg float64 `json:"chargeable_weight_kg" example:"628"`
} // @name WeightBreakdown

// ChargeResult is the full outcome of a charge computation.
//
// @Description Weights and cost in source and destination currency
type ChargeResult struct {
	WeightBreakdown
	CostSource      float64 `json:"cost_source" example:"1971.80"`
	CostDestination float64 `json:"cost_destination" example:"2885137.76"`
} // @name ChargeResult

// BatchResult holds per-line weights and the consolidated charge.
//
// @Description Per-line weights and consolidated totals for a multi-item shipment
type BatchResult struct {
	Lines []WeightBreakdown `json:"lines"`
	Total ChargeResult      `json:"total"`
} // @name BatchResult

// InvalidInputError reports an input field that cannot produce a meaningful charge.
type InvalidInputError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// WithPrefix returns a copy of the error with the field nested under prefix.
func (e *InvalidInputError) WithPrefix(prefix string) *InvalidInputError {
	if prefix == "" {
		return e
	}
	return &InvalidInputError{Field: prefix + "." + e.Field, Reason: e.Reason}
}

// NormalizeCurrency upper-cases and trims an ISO currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
