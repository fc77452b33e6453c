// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "strconv"

// CalculatePermutationsRequest is the JSON request body for the slitting
// pattern calculation endpoint.
//
// MaterialID selects the master roll material. WasteAllowanceMM is the trim
// loss subtracted from the master width before any pattern is laid out.
// DesiredSlitWidths must be non-empty with strictly positive widths.
// Validation is performed with gin's binding tags plus Validate.
//
// @Description Request to enumerate and cost slitting patterns for a material
// @Example {"material_id": "BOPP-30", "waste_allowance_mm": 20, "desired_slit_widths": [500, 350], "quantity_master_rolls": 5}
type CalculatePermutationsRequest struct {
	// MaterialID identifies the material to calculate against.
	MaterialID string `json:"material_id" binding:"required" example:"BOPP-30"`
	// WasteAllowanceMM is the edge trim allowance in millimetres. Must be >= 0.
	WasteAllowanceMM float64 `json:"waste_allowance_mm" example:"20" minimum:"0"`
	// DesiredSlitWidths lists the finished widths a production run requires.
	DesiredSlitWidths []float64 `json:"desired_slit_widths" binding:"required,min=1" example:"500,350"`
	// QuantityMasterRolls scales the pattern cost. Must be > 0.
	QuantityMasterRolls int `json:"quantity_master_rolls" binding:"required,gt=0" example:"5" minimum:"1"`
} // @name CalculatePermutationsRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingMaterialID is returned when material_id is empty.
	ErrMissingMaterialID = &ValidationError{
		Field:   "material_id",
		Message: "must not be empty",
	}
	// ErrNegativeWasteAllowance is returned when waste_allowance_mm is negative.
	ErrNegativeWasteAllowance = &ValidationError{
		Field:   "waste_allowance_mm",
		Message: "must not be negative",
	}
	// ErrEmptySlitWidths is returned when desired_slit_widths is empty.
	ErrEmptySlitWidths = &ValidationError{
		Field:   "desired_slit_widths",
		Message: "must contain at least one width",
	}
	// ErrInvalidQuantity is returned when quantity_master_rolls is not positive.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity_master_rolls",
		Message: "must be a positive integer",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *CalculatePermutationsRequest) Validate() error {
	if r.MaterialID == "" {
		return ErrMissingMaterialID
	}
	if r.WasteAllowanceMM < 0 {
		return ErrNegativeWasteAllowance
	}
	if len(r.DesiredSlitWidths) == 0 {
		return ErrEmptySlitWidths
	}
	for _, w := range r.DesiredSlitWidths {
		if w <= 0 {
			return &ValidationError{
				Field:   "desired_slit_widths",
				Message: "width " + strconv.FormatFloat(w, 'f', -1, 64) + " must be positive",
			}
		}
	}
	if r.QuantityMasterRolls <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// UpsertMaterialRequest is the JSON request body for creating or updating a
// material in the catalog.
type UpsertMaterialRequest struct {
	// MaterialID is the business identifier of the material.
	MaterialID string `json:"material_id" binding:"required"`
	// MaterialName is the human-readable name.
	MaterialName string `json:"material_name" binding:"required"`
	// MaterialCode is the internal stock code.
	MaterialCode string `json:"material_code,omitempty"`
	// MasterWidthMM is the usable roll width in millimetres. Must be > 0.
	MasterWidthMM float64 `json:"master_width_mm" binding:"required,gt=0"`
	// GSM is the areal density. Zero means unknown.
	GSM float64 `json:"gsm"`
	// PricePerTonneAUD is the purchase price per tonne.
	PricePerTonneAUD float64 `json:"price_per_tonne_aud"`
	// TotalLinearMeters is the roll length in metres.
	TotalLinearMeters float64 `json:"total_linear_meters"`
} // @name UpsertMaterialRequest

// Validate performs custom validation on the request.
func (r *UpsertMaterialRequest) Validate() error {
	if r.MasterWidthMM <= 0 {
		return &ValidationError{Field: "master_width_mm", Message: "must be positive"}
	}
	if r.GSM < 0 {
		return &ValidationError{Field: "gsm", Message: "must not be negative"}
	}
	if r.PricePerTonneAUD < 0 {
		return &ValidationError{Field: "price_per_tonne_aud", Message: "must not be negative"}
	}
	if r.TotalLinearMeters < 0 {
		return &ValidationError{Field: "total_linear_meters", Message: "must not be negative"}
	}
	return nil
}
