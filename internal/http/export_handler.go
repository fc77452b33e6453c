package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/dto"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/export"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/i18n"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/metrics"
)

const (
	exportFormatXLSX = "xlsx"
	exportFormatPDF  = "pdf"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ExportCalculation handles POST /api/calculate/export requests.
//
// @Summary      Export slitting patterns as a pattern sheet
// @Description  Runs the same calculation as /api/calculate and streams the ranked patterns as a downloadable file. The format query parameter selects xlsx (default) or pdf.
// @Tags         Slitting
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        format query string false "Export format: xlsx or pdf" Enums(xlsx, pdf)
// @Param        request body dto.CalculatePermutationsRequest true "Calculation parameters"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {file} binary "Pattern sheet"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or format"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Material not found"
// @Failure      422 {object} dto.ErrorResponse "Search space too large"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/calculate/export [post]
func (h *Handler) ExportCalculation(c *gin.Context) {
	builder := NewResponseBuilder(c)

	format := c.DefaultQuery("format", exportFormatXLSX)
	if format != exportFormatXLSX && format != exportFormatPDF {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
			fmt.Errorf("unsupported export format %q", format))
		return
	}

	var req dto.CalculatePermutationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if vErr, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, validationKey(vErr), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	result, status, key, err := h.calculate(c, req)
	if err != nil {
		metrics.RecordExport(format, statusLabel(status))
		builder.Error(status, key, err)
		return
	}

	var buf bytes.Buffer
	switch format {
	case exportFormatPDF:
		err = export.WritePDF(&buf, result)
	default:
		err = export.WriteXLSX(&buf, result)
	}
	if err != nil {
		metrics.RecordExport(format, "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	metrics.RecordExport(format, "success")

	filename := fmt.Sprintf("slitting_%s_%s.%s",
		req.MaterialID, time.Now().UTC().Format("20060102_150405"), format)
	contentType := contentTypeXLSX
	if format == exportFormatPDF {
		contentType = contentTypePDF
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
