package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tariff is a versioned set of default rate terms.
//
// @Description Versioned default tariff applied when a quote omits rate terms
type Tariff struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	PricePerKg          float64            `bson:"price_per_kg" json:"price_per_kg" example:"2.85"`
	SurchargePerKg      float64            `bson:"surcharge_per_kg" json:"surcharge_per_kg" example:"0.25"`
	FixedFee            float64            `bson:"fixed_fee" json:"fixed_fee" example:"25"`
	FeeEnabled          bool               `bson:"fee_enabled" json:"fee_enabled" example:"true"`
	SourceCurrency      string             `bson:"source_currency" json:"source_currency" example:"USD"`
	DestinationCurrency string             `bson:"destination_currency" json:"destination_currency" example:"KRW"`
	Active              bool               `bson:"active" json:"active"`
	Version             int                `bson:"version" json:"version"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy           string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
} // @name Tariff

// Terms returns the rate terms of the tariff with the given exchange rate.
func (t Tariff) Terms(exchangeRate float64) RateTerms {
	return RateTerms{
		PricePerKg:     t.PricePerKg,
		SurchargePerKg: t.SurchargePerKg,
		FixedFee:       t.FixedFee,
		FeeEnabled:     t.FeeEnabled,
		ExchangeRate:   exchangeRate,
	}
}
