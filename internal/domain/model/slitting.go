package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalculationTypeMaterialPermutation identifies the calculation performed by
// the slitting pattern engine.
const CalculationTypeMaterialPermutation = "material_permutation"

// SlitDetail describes one distinct slit width within a pattern.
//
// LinearMeters equals the material's total linear metres: slitting divides
// the roll across its width, never along its length.
//
// @Description Per-width cost and weight breakdown inside a pattern
// @Example {"slit_width_mm": 500, "count": 2, "linear_meters": 8000, "weight_per_slit_kg": 109.6, "cost_per_slit_aud": 350.72}
type SlitDetail struct {
	// SlitWidthMM is the finished slit width in millimetres.
	SlitWidthMM float64 `json:"slit_width_mm" example:"500"`
	// Count is how many slits of this width the pattern produces.
	Count int `json:"count" example:"2"`
	// LinearMeters is the length available per slit.
	LinearMeters float64 `json:"linear_meters" example:"8000"`
	// WeightPerSlitKg is the weight of one finished slit roll in kilograms.
	WeightPerSlitKg float64 `json:"weight_per_slit_kg" example:"109.6"`
	// CostPerSlitAUD is the material cost of one finished slit roll.
	CostPerSlitAUD float64 `json:"cost_per_slit_aud" example:"350.72"`
} // @name SlitDetail

// Pattern is one feasible layout of slit widths across the usable width of a
// master roll. The width list is kept sorted descending so patterns have a
// canonical representation regardless of enumeration order.
//
// @Description One feasible slitting pattern with yield and cost figures
type Pattern struct {
	// Widths is the canonical descending multiset of slit widths.
	Widths []float64 `json:"pattern" example:"500,500,350"`
	// Description is a human-readable rendering, e.g. "2×500mm + 1×350mm".
	Description string `json:"pattern_description" example:"2×500mm + 1×350mm"`
	// UsedWidthMM is the sum of all slit widths in the pattern.
	UsedWidthMM float64 `json:"used_width_mm" example:"1350"`
	// WasteMM is the unused portion of the usable width.
	WasteMM float64 `json:"waste_mm" example:"50"`
	// YieldPercentage is used width over the full master width, as a percentage.
	YieldPercentage float64 `json:"yield_percentage" example:"96.43"`
	// TotalFinishedRolls is the number of slits in the pattern.
	TotalFinishedRolls int `json:"total_finished_rolls" example:"3"`
	// SlitDetails holds one entry per distinct width, widest first.
	SlitDetails []SlitDetail `json:"slit_details"`
	// TotalPatternCostAUD is the material cost of one master roll cut to this pattern.
	TotalPatternCostAUD float64 `json:"total_pattern_cost_aud" example:"1102.24"`
	// TotalCostAllRollsAUD is the pattern cost scaled by the requested roll quantity.
	TotalCostAllRollsAUD float64 `json:"total_cost_all_rolls_aud" example:"5511.2"`
} // @name Pattern

// Clone returns a copy of the pattern that shares no backing arrays with
// the receiver.
func (p Pattern) Clone() Pattern {
	p.Widths = append([]float64(nil), p.Widths...)
	p.SlitDetails = append([]SlitDetail(nil), p.SlitDetails...)
	return p
}

// DescribeWidths renders a canonical descending width multiset as a human
// string, e.g. "2×500mm + 1×350mm".
func DescribeWidths(widths []float64) string {
	if len(widths) == 0 {
		return ""
	}
	var parts []string
	i := 0
	for i < len(widths) {
		j := i
		for j < len(widths) && widths[j] == widths[i] {
			j++
		}
		parts = append(parts, fmt.Sprintf("%d×%smm", j-i, FormatWidth(widths[i])))
		i = j
	}
	return strings.Join(parts, " + ")
}

// FormatWidth formats a width in mm without trailing zeros ("500", "62.5").
func FormatWidth(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// PermutationRequest is the domain-level input of a slitting calculation.
// The HTTP layer builds one from the wire DTO after binding validation.
type PermutationRequest struct {
	MaterialID          string
	WasteAllowanceMM    float64
	DesiredSlitWidths   []float64
	QuantityMasterRolls int
}

// Echo returns the InputParameters view of the request for embedding in a
// CalculationResult.
func (r PermutationRequest) Echo() InputParameters {
	widths := make([]float64, len(r.DesiredSlitWidths))
	copy(widths, r.DesiredSlitWidths)
	return InputParameters{
		MaterialID:          r.MaterialID,
		WasteAllowanceMM:    r.WasteAllowanceMM,
		DesiredSlitWidths:   widths,
		QuantityMasterRolls: r.QuantityMasterRolls,
	}
}

// InputParameters echoes the request that produced a calculation.
//
// @Description Echo of the permutation request parameters
type InputParameters struct {
	MaterialID          string    `json:"material_id" example:"BOPP-30"`
	WasteAllowanceMM    float64   `json:"waste_allowance_mm" example:"20"`
	DesiredSlitWidths   []float64 `json:"desired_slit_widths" example:"500,350"`
	QuantityMasterRolls int       `json:"quantity_master_rolls" example:"5"`
} // @name InputParameters

// CalculationResult is the complete response body of a permutation
// calculation: material metadata, the input echo, the ranked pattern list
// and summary statistics. All monetary and percentage fields are rounded to
// two decimal places at assembly; nothing inside the result is mutated after
// it is built.
//
// @Description Ranked slitting patterns with per-slit costing for one material
type CalculationResult struct {
	CalculationType string `json:"calculation_type" example:"material_permutation"`
	// MaterialInfo is the flattened material the calculation ran against.
	MaterialInfo MaterialInfo `json:"material_info"`
	// InputParameters echoes the request verbatim.
	InputParameters InputParameters `json:"input_parameters"`
	// Permutations is the ranked pattern list, best yield first.
	Permutations []Pattern `json:"permutations"`
	// TotalPermutationsFound is len(Permutations).
	TotalPermutationsFound int `json:"total_permutations_found" example:"42"`
	// BestYieldPercentage is the yield of the top-ranked pattern, 0 when empty.
	BestYieldPercentage float64 `json:"best_yield_percentage" example:"96.43"`
	CalculatedAt        time.Time `json:"calculated_at" example:"2025-01-28T10:00:00Z"`
	CalculatedBy        string    `json:"calculated_by" example:"system"`
} // @name CalculationResult

// Clone returns a deep copy of the result. Mutating the copy, or the
// original, never reaches through to the other's pattern list.
func (r CalculationResult) Clone() CalculationResult {
	r.InputParameters.DesiredSlitWidths = append([]float64(nil), r.InputParameters.DesiredSlitWidths...)
	perms := make([]Pattern, len(r.Permutations))
	for i, p := range r.Permutations {
		perms[i] = p.Clone()
	}
	r.Permutations = perms
	return r
}
