package services

import (
	"context"
	"io"

	"github.com/SscSPs/book_reports/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// BalanceSheet generates a comparative balance sheet for the period
	BalanceSheet(ctx context.Context, bookID int64, window domain.PeriodWindow) (*domain.BalanceSheetReport, error)

	// IncomeStatement generates a comparative income statement for the period
	IncomeStatement(ctx context.Context, bookID int64, window domain.PeriodWindow) (*domain.IncomeStatementReport, error)

	// Report401 generates the business tax return for the period
	Report401(ctx context.Context, bookID int64, window domain.PeriodWindow) (*domain.TaxReport401, error)

	// ExportReport renders a report as an XLSX workbook
	ExportReport(ctx context.Context, w io.Writer, reportType domain.ReportType, bookID int64, window domain.PeriodWindow) error
}

// IncomeStatementSource computes the aggregated income statement forest for a window.
// The period closer depends on it to move profit and loss into equity.
type IncomeStatementSource interface {
	IncomeStatementForest(ctx context.Context, bookID int64, window domain.PeriodWindow) ([]domain.AccountNode, error)
}
