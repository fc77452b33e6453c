// Package model defines the core domain entities for the slitting service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Material represents a raw-material master roll definition.
//
// MasterWidthMM is the usable physical deckle width of the roll. GSM may be
// zero when the areal density of the material is unknown; the cost engine
// degrades to a per-metre price in that case.
//
// @Description Raw material master roll with physical and pricing properties
// @Example {"material_id": "BOPP-30", "material_name": "BOPP Clear 30um", "master_width_mm": 1300, "gsm": 27.4, "price_per_tonne_aud": 3200, "total_linear_meters": 8000}
type Material struct {
	// ID is the Mongo document id (unset for catalog-seeded materials).
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	// MaterialID is the business identifier used by callers to select a material.
	MaterialID string `bson:"material_id" json:"material_id" example:"BOPP-30"`
	// MaterialName is the human-readable name.
	MaterialName string `bson:"material_name" json:"material_name" example:"BOPP Clear 30um"`
	// MaterialCode is the internal stock code.
	MaterialCode string `bson:"material_code" json:"material_code" example:"RM-0042"`
	// MasterWidthMM is the usable deckle width of the master roll in millimetres.
	MasterWidthMM float64 `bson:"master_width_mm" json:"master_width_mm" example:"1300"`
	// GSM is the areal density in grams per square metre. Zero means unknown.
	GSM float64 `bson:"gsm" json:"gsm" example:"27.4"`
	// PricePerTonneAUD is the purchase price per tonne in Australian dollars.
	PricePerTonneAUD float64 `bson:"price_per_tonne_aud" json:"price_per_tonne_aud" example:"3200"`
	// TotalLinearMeters is the length of material wound on one master roll.
	TotalLinearMeters float64   `bson:"total_linear_meters" json:"total_linear_meters" example:"8000"`
	Active            bool      `bson:"active" json:"active"`
	CreatedAt         time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt         time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
} // @name Material

// Valid reports whether the material satisfies its physical invariants.
func (m Material) Valid() bool {
	return m.MasterWidthMM > 0 && m.GSM >= 0 && m.PricePerTonneAUD >= 0 && m.TotalLinearMeters >= 0
}

// MaterialInfo is the flattened material block embedded in a CalculationResult.
//
// @Description Material metadata echoed in a calculation result
type MaterialInfo struct {
	MaterialID        string  `json:"material_id" example:"BOPP-30"`
	MaterialName      string  `json:"material_name" example:"BOPP Clear 30um"`
	MaterialCode      string  `json:"material_code" example:"RM-0042"`
	MasterWidthMM     float64 `json:"master_width_mm" example:"1300"`
	GSM               float64 `json:"gsm" example:"27.4"`
	TotalLinearMeters float64 `json:"total_linear_meters" example:"8000"`
	CostPerTonneAUD   float64 `json:"cost_per_tonne_aud" example:"3200"`
} // @name MaterialInfo

// Info returns the MaterialInfo view of the material.
func (m Material) Info() MaterialInfo {
	return MaterialInfo{
		MaterialID:        m.MaterialID,
		MaterialName:      m.MaterialName,
		MaterialCode:      m.MaterialCode,
		MasterWidthMM:     m.MasterWidthMM,
		GSM:               m.GSM,
		TotalLinearMeters: m.TotalLinearMeters,
		CostPerTonneAUD:   m.PricePerTonneAUD,
	}
}
