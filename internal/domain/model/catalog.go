package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartSpec is a catalog entry describing one manufactured part.
//
// @Description Catalog record with piece dimensions in millimeters and unit weight
type PartSpec struct {
	Model     string  `bson:"model" json:"model" example:"6203-2RS"`
	BaseModel string  `bson:"base_model,omitempty" json:"base_model,omitempty" example:"6203"`
	Maker     string  `bson:"maker,omitempty" json:"maker,omitempty" example:"NSK"`
	LengthMM  float64 `bson:"length_mm" json:"length_mm" example:"40"`
	WidthMM   float64 `bson:"width_mm" json:"width_mm" example:"40"`
	HeightMM  float64 `bson:"height_mm" json:"height_mm" example:"12"`
	WeightKg  float64 `bson:"weight_kg" json:"weight_kg" example:"0.065"`
} // @name PartSpec

// CatalogDocument is a PartSpec as stored in MongoDB.
type CatalogDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PartSpec   `bson:",inline"`
	Position   int       `bson:"position"`
	ImportedAt time.Time `bson:"imported_at"`
}
