package render

import (
	"fmt"

	"customer-rewards/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	monthlySheet = "Monthly"
	totalsSheet  = "Totals"
)

// XLSX saves the report as a workbook with a Monthly and a Totals sheet.
func XLSX(path string, report *domain.RewardsReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", monthlySheet); err != nil {
		return fmt.Errorf("failed to name monthly sheet: %w", err)
	}
	if _, err := f.NewSheet(totalsSheet); err != nil {
		return fmt.Errorf("failed to create totals sheet: %w", err)
	}

	monthlyRows := [][]any{{"Customer ID", "Customer", "Month", "Points"}}
	for _, s := range report.MonthlySummaries {
		monthlyRows = append(monthlyRows, []any{s.CustomerID, s.CustomerName, s.Month, s.Points})
	}
	if err := writeRows(f, monthlySheet, monthlyRows); err != nil {
		return err
	}

	totalRows := [][]any{{"Customer ID", "Customer", "Total points"}}
	for _, total := range report.CustomerTotals {
		totalRows = append(totalRows, []any{total.CustomerID, total.CustomerName, total.TotalPoints})
	}
	if err := writeRows(f, totalsSheet, totalRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
