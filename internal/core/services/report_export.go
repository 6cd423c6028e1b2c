package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/SscSPs/book_reports/internal/utils/taxation"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var statementHeader = []any{"Code", "Name", "Current period", "Current %", "Prior period", "Prior %"}

// workbook wraps an excelize file with a row cursor on one sheet.
type workbook struct {
	file  *excelize.File
	sheet string
	row   int
}

func newWorkbook(sheet string) (*workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to name sheet %s: %w", sheet, err)
	}
	return &workbook{file: f, sheet: sheet, row: 1}, nil
}

func (wb *workbook) appendRow(values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, wb.row)
	if err != nil {
		return err
	}
	if err := wb.file.SetSheetRow(wb.sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", wb.row, err)
	}
	wb.row++
	return nil
}

func (wb *workbook) writeTo(w io.Writer) error {
	defer wb.file.Close()
	if err := wb.file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// decimalCell renders amounts as floats so spreadsheet formulas work on them.
func decimalCell(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func writeStatementWorkbook(w io.Writer, sheet string, items []domain.ReportItem) error {
	wb, err := newWorkbook(sheet)
	if err != nil {
		return err
	}
	if err := wb.appendRow(statementHeader...); err != nil {
		return err
	}
	if err := appendReportItems(wb, items, 0); err != nil {
		return err
	}
	return wb.writeTo(w)
}

// appendReportItems writes the item tree depth first, indenting names by depth.
func appendReportItems(wb *workbook, items []domain.ReportItem, depth int) error {
	for _, item := range items {
		err := wb.appendRow(
			item.Code,
			strings.Repeat("  ", depth)+item.Name,
			decimalCell(item.CurPeriodAmount),
			item.CurPeriodPercentage,
			decimalCell(item.PrePeriodAmount),
			item.PrePeriodPercentage,
		)
		if err != nil {
			return err
		}
		if err := appendReportItems(wb, item.Children, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func writeReport401Workbook(w io.Writer, report *domain.TaxReport401) error {
	wb, err := newWorkbook("401")
	if err != nil {
		return err
	}

	info := report.BasicInfo
	rows := [][]any{
		{"Uniform number", info.UniformNumber},
		{"Business name", info.BusinessName},
		{"Person in charge", info.PersonInCharge},
		{"Tax serial no", info.TaxSerialNo},
		{"Business address", info.BusinessAddress},
		{"Year", info.CurrentYear},
		{"Period", info.CurrentPeriod},
		{},
		{"Sales", "Sales", "Tax", "Zero tax"},
	}
	for _, category := range taxation.SalesCategoryOrder {
		row := report.Sales.Breakdown[category]
		rows = append(rows, []any{string(category), decimalCell(row.Sales), decimalCell(row.Tax), decimalCell(row.ZeroTax)})
	}
	rows = append(rows,
		[]any{"total", decimalCell(report.Sales.Total.Sales), decimalCell(report.Sales.Total.Tax), decimalCell(report.Sales.Total.ZeroTax)},
		[]any{"taxFreeSales", decimalCell(report.Sales.TaxFreeSales)},
		[]any{"totalTaxableAmount", decimalCell(report.Sales.TotalTaxableAmount)},
		[]any{},
		[]any{"Purchases", "General amount", "General tax", "Fixed asset amount", "Fixed asset tax"},
	)
	for _, category := range taxation.PurchaseCategoryOrder {
		rows = append(rows, purchaseRow(string(category), report.Purchases.Breakdown[category]))
	}
	rows = append(rows,
		purchaseRow("total", report.Purchases.Total),
		[]any{"undeductible", decimalCell(report.Purchases.Undeductible)},
		[]any{},
		[]any{"Imports", "Amount"},
	)
	for _, category := range taxation.ImportCategoryOrder {
		rows = append(rows, []any{string(category), decimalCell(report.Imports.Breakdown[category])})
	}
	calc := report.TaxCalculation
	rows = append(rows,
		[]any{"total", decimalCell(report.Imports.Total)},
		[]any{},
		[]any{"Tax calculation", "Amount"},
		[]any{"outputTax", decimalCell(calc.OutputTax)},
		[]any{"deductibleInputTax", decimalCell(calc.DeductibleInputTax)},
		[]any{"previousPeriodOffset", decimalCell(calc.PreviousPeriodOffset)},
		[]any{"subtotal", decimalCell(calc.Subtotal)},
		[]any{"currentPeriodTaxPayable", decimalCell(calc.CurrentPeriodTaxPayable)},
		[]any{"currentPeriodFilingOffset", decimalCell(calc.CurrentPeriodFilingOffset)},
		[]any{"refundCeiling", decimalCell(calc.RefundCeiling)},
		[]any{"currentPeriodRefundableTax", decimalCell(calc.CurrentPeriodRefundableTax)},
		[]any{"currentPeriodAccumulatedOffset", decimalCell(calc.CurrentPeriodAccumulatedOffset)},
	)

	for _, row := range rows {
		if err := wb.appendRow(row...); err != nil {
			return err
		}
	}
	return wb.writeTo(w)
}

func purchaseRow(label string, amounts domain.PurchaseAmounts) []any {
	return []any{
		label,
		decimalCell(amounts.GeneralPurchases.Amount),
		decimalCell(amounts.GeneralPurchases.Tax),
		decimalCell(amounts.FixedAssets.Amount),
		decimalCell(amounts.FixedAssets.Tax),
	}
}
