package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
)

// slitColor is an RGB fill for a slit segment in the layout diagram.
type slitColor struct {
	R, G, B int
}

// slitColors cycles per distinct width within a pattern.
var slitColors = []slitColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	barHeight    = 8.0
	rowSpacing   = 17.0
	// maxPatternsPerPDF caps the document so the press floor gets the ranked
	// head of the list rather than a thousand-page dump.
	maxPatternsPerPDF = 25
)

// WritePDF writes the calculation result as a PDF pattern sheet. Each pattern
// is rendered as a proportional layout bar across the master width with its
// yield and cost figures, best yield first.
func WritePDF(w io.Writer, result *model.CalculationResult) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	renderHeader(pdf, result)

	count := len(result.Permutations)
	if count > maxPatternsPerPDF {
		count = maxPatternsPerPDF
	}
	for i := 0; i < count; i++ {
		renderPattern(pdf, result, i)
	}

	if count < len(result.Permutations) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 5,
			fmt.Sprintf("Showing top %d of %d patterns.", count, len(result.Permutations)),
			"", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

func renderHeader(pdf *fpdf.Fpdf, result *model.CalculationResult) {
	info := result.MaterialInfo
	params := result.InputParameters

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Slitting patterns: %s (%s)", info.MaterialName, info.MaterialID)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 8, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(marginLeft)
	line1 := fmt.Sprintf("Master width: %.0f mm | GSM: %.1f | Linear meters: %.0f | Cost: %.2f AUD/t",
		info.MasterWidthMM, info.GSM, info.TotalLinearMeters, info.CostPerTonneAUD)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, line1, "", 1, "L", false, 0, "")

	pdf.SetX(marginLeft)
	line2 := fmt.Sprintf("Waste allowance: %.0f mm | Master rolls: %d | Patterns: %d | Best yield: %.2f%%",
		params.WasteAllowanceMM, params.QuantityMasterRolls,
		result.TotalPermutationsFound, result.BestYieldPercentage)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, line2, "", 1, "L", false, 0, "")

	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "I", 8)
	line3 := fmt.Sprintf("Calculated %s by %s",
		result.CalculatedAt.Format(time.RFC3339), result.CalculatedBy)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, line3, "", 1, "L", false, 0, "")
	pdf.Ln(3)
}

// renderPattern draws one ranked pattern: a caption line plus a layout bar
// scaled so the full master width spans the drawable page width.
func renderPattern(pdf *fpdf.Fpdf, result *model.CalculationResult, idx int) {
	p := result.Permutations[idx]
	masterWidth := result.MaterialInfo.MasterWidthMM
	drawWidth := pageWidth - marginLeft - marginRight
	scale := drawWidth / masterWidth

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(marginLeft)
	caption := fmt.Sprintf("#%d  %s  |  yield %.2f%%  |  waste %.1f mm  |  %.2f AUD/roll",
		idx+1, p.Description, p.YieldPercentage, p.WasteMM, p.TotalPatternCostAUD)
	pdf.CellFormat(drawWidth, 5, caption, "", 1, "L", false, 0, "")

	y := pdf.GetY()
	x := marginLeft

	// Slit segments, one fill per distinct width.
	colorIdx := 0
	var prevWidth float64
	for i, w := range p.Widths {
		if i > 0 && w != prevWidth {
			colorIdx++
		}
		prevWidth = w

		col := slitColors[colorIdx%len(slitColors)]
		segWidth := w * scale
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(x, y, segWidth, barHeight, "FD")

		if segWidth > 12 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(255, 255, 255)
			pdf.SetXY(x, y+barHeight/2-1.5)
			pdf.CellFormat(segWidth, 3, model.FormatWidth(w), "", 0, "C", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
		x += segWidth
	}

	// Waste remainder in grey up to the full master width.
	if x < marginLeft+drawWidth {
		pdf.SetFillColor(224, 224, 224)
		pdf.SetDrawColor(150, 150, 150)
		pdf.Rect(x, y, marginLeft+drawWidth-x, barHeight, "FD")
	}

	pdf.SetY(y + rowSpacing - 5)
}
