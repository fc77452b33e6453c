// Package export renders calculation results as downloadable pattern sheets
// for production planning (XLSX workbooks and PDF documents).
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
)

const (
	patternsSheet = "Patterns"
	detailsSheet  = "Slit Details"
)

// WriteXLSX writes the calculation result as an XLSX workbook with a ranked
// pattern sheet and a per-slit detail sheet.
func WriteXLSX(w io.Writer, result *model.CalculationResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, patternsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writePatternsSheet(f, result); err != nil {
		return err
	}
	if err := writeDetailsSheet(f, result); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writePatternsSheet(f *excelize.File, result *model.CalculationResult) error {
	info := result.MaterialInfo
	params := result.InputParameters

	summary := [][]interface{}{
		{"Material", fmt.Sprintf("%s (%s)", info.MaterialName, info.MaterialID)},
		{"Master width (mm)", info.MasterWidthMM},
		{"GSM", info.GSM},
		{"Linear meters", info.TotalLinearMeters},
		{"Cost per tonne (AUD)", info.CostPerTonneAUD},
		{"Waste allowance (mm)", params.WasteAllowanceMM},
		{"Master rolls", params.QuantityMasterRolls},
		{"Patterns found", result.TotalPermutationsFound},
		{"Best yield (%)", result.BestYieldPercentage},
		{"Calculated at", result.CalculatedAt.Format(time.RFC3339)},
		{"Calculated by", result.CalculatedBy},
	}
	for i, rowValues := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("summary cell: %w", err)
		}
		if err := f.SetSheetRow(patternsSheet, cell, &rowValues); err != nil {
			return fmt.Errorf("summary row: %w", err)
		}
	}

	headerRow := len(summary) + 2
	header := []interface{}{
		"Rank",
		"Pattern",
		"Used width (mm)",
		"Waste (mm)",
		"Yield (%)",
		"Finished rolls",
		"Pattern cost (AUD)",
		fmt.Sprintf("Cost for %d rolls (AUD)", params.QuantityMasterRolls),
	}
	cell, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return fmt.Errorf("header cell: %w", err)
	}
	if err := f.SetSheetRow(patternsSheet, cell, &header); err != nil {
		return fmt.Errorf("header row: %w", err)
	}

	row := headerRow + 1
	for i, p := range result.Permutations {
		values := []interface{}{
			i + 1,
			p.Description,
			p.UsedWidthMM,
			p.WasteMM,
			p.YieldPercentage,
			p.TotalFinishedRolls,
			p.TotalPatternCostAUD,
			p.TotalCostAllRollsAUD,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("pattern cell: %w", err)
		}
		if err := f.SetSheetRow(patternsSheet, cell, &values); err != nil {
			return fmt.Errorf("pattern row: %w", err)
		}
		row++
	}

	return nil
}

func writeDetailsSheet(f *excelize.File, result *model.CalculationResult) error {
	if _, err := f.NewSheet(detailsSheet); err != nil {
		return fmt.Errorf("details sheet: %w", err)
	}

	header := []interface{}{
		"Pattern rank",
		"Pattern",
		"Slit width (mm)",
		"Count",
		"Linear meters",
		"Weight per slit (kg)",
		"Cost per slit (AUD)",
	}
	if err := f.SetSheetRow(detailsSheet, "A1", &header); err != nil {
		return fmt.Errorf("details header: %w", err)
	}

	row := 2
	for i, p := range result.Permutations {
		for _, d := range p.SlitDetails {
			values := []interface{}{
				i + 1,
				p.Description,
				d.SlitWidthMM,
				d.Count,
				d.LinearMeters,
				d.WeightPerSlitKg,
				d.CostPerSlitAUD,
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return fmt.Errorf("details cell: %w", err)
			}
			if err := f.SetSheetRow(detailsSheet, cell, &values); err != nil {
				return fmt.Errorf("details row: %w", err)
			}
			row++
		}
	}

	return nil
}
