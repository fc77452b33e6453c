package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func postExport(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExportCalculation_XLSX(t *testing.T) {
	router := setupRouter()

	body := `{"material_id": "BOPP-30", "waste_allowance_mm": 20, "desired_slit_widths": [500, 350], "quantity_master_rolls": 5}`
	w := postExport(router, "/api/calculate/export", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeXLSX, w.Header().Get("Content-Type"))

	disposition := w.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "slitting_BOPP-30_")
	assert.Contains(t, disposition, ".xlsx")

	// The payload must be a workbook excelize can open again.
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Patterns")
}

func TestExportCalculation_DefaultFormatIsXLSX(t *testing.T) {
	router := setupRouter()

	body := `{"material_id": "BOPP-30", "desired_slit_widths": [500], "quantity_master_rolls": 1}`
	w := postExport(router, "/api/calculate/export", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeXLSX, w.Header().Get("Content-Type"))
}

func TestExportCalculation_PDF(t *testing.T) {
	router := setupRouter()

	body := `{"material_id": "BOPP-30", "waste_allowance_mm": 20, "desired_slit_widths": [500, 350], "quantity_master_rolls": 5}`
	w := postExport(router, "/api/calculate/export?format=pdf", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypePDF, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".pdf")

	// PDF files start with a %PDF header.
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestExportCalculation_Errors(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
	}{
		{
			name:           "unsupported format",
			path:           "/api/calculate/export?format=csv",
			body:           `{"material_id": "BOPP-30", "desired_slit_widths": [500], "quantity_master_rolls": 1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			path:           "/api/calculate/export",
			body:           `invalid`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation failure",
			path:           "/api/calculate/export",
			body:           `{"material_id": "BOPP-30", "desired_slit_widths": [500], "quantity_master_rolls": 0}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown material",
			path:           "/api/calculate/export",
			body:           `{"material_id": "PET-12", "desired_slit_widths": [500], "quantity_master_rolls": 1}`,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postExport(router, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
