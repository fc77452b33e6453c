package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCalculateRequest() CalculatePermutationsRequest {
	return CalculatePermutationsRequest{
		MaterialID:          "BOPP-30",
		WasteAllowanceMM:    20,
		DesiredSlitWidths:   []float64{500, 350},
		QuantityMasterRolls: 5,
	}
}

func TestCalculatePermutationsRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := validCalculateRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("zero waste allowance is valid", func(t *testing.T) {
		req := validCalculateRequest()
		req.WasteAllowanceMM = 0
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*CalculatePermutationsRequest)
		wantErr error
	}{
		{
			name:    "missing material id",
			mutate:  func(r *CalculatePermutationsRequest) { r.MaterialID = "" },
			wantErr: ErrMissingMaterialID,
		},
		{
			name:    "negative waste allowance",
			mutate:  func(r *CalculatePermutationsRequest) { r.WasteAllowanceMM = -1 },
			wantErr: ErrNegativeWasteAllowance,
		},
		{
			name:    "no slit widths",
			mutate:  func(r *CalculatePermutationsRequest) { r.DesiredSlitWidths = nil },
			wantErr: ErrEmptySlitWidths,
		},
		{
			name:    "zero quantity",
			mutate:  func(r *CalculatePermutationsRequest) { r.QuantityMasterRolls = 0 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative quantity",
			mutate:  func(r *CalculatePermutationsRequest) { r.QuantityMasterRolls = -3 },
			wantErr: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCalculateRequest()
			tt.mutate(&req)
			assert.ErrorIs(t, req.Validate(), tt.wantErr)
		})
	}

	t.Run("non-positive slit width names the offender", func(t *testing.T) {
		req := validCalculateRequest()
		req.DesiredSlitWidths = []float64{500, -350}

		err := req.Validate()
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "desired_slit_widths", verr.Field)
		assert.Contains(t, verr.Message, "-350")
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "material_id", Message: "must not be empty"}
	assert.Equal(t, "material_id: must not be empty", err.Error())
}

func TestUpsertMaterialRequest_Validate(t *testing.T) {
	valid := UpsertMaterialRequest{
		MaterialID:        "BOPP-30",
		MaterialName:      "BOPP Clear 30um",
		MasterWidthMM:     1300,
		GSM:               27.4,
		PricePerTonneAUD:  3200,
		TotalLinearMeters: 8000,
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("zero gsm is allowed", func(t *testing.T) {
		req := valid
		req.GSM = 0
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name      string
		mutate    func(*UpsertMaterialRequest)
		wantField string
	}{
		{
			name:      "non-positive master width",
			mutate:    func(r *UpsertMaterialRequest) { r.MasterWidthMM = 0 },
			wantField: "master_width_mm",
		},
		{
			name:      "negative gsm",
			mutate:    func(r *UpsertMaterialRequest) { r.GSM = -1 },
			wantField: "gsm",
		},
		{
			name:      "negative price",
			mutate:    func(r *UpsertMaterialRequest) { r.PricePerTonneAUD = -1 },
			wantField: "price_per_tonne_aud",
		},
		{
			name:      "negative linear meters",
			mutate:    func(r *UpsertMaterialRequest) { r.TotalLinearMeters = -1 },
			wantField: "total_linear_meters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}
