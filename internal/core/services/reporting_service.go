package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/book_reports/internal/apperrors"
	"github.com/SscSPs/book_reports/internal/core/domain"
	portssvc "github.com/SscSPs/book_reports/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	balanceSheets    *BalanceSheetGenerator
	incomeStatements *IncomeStatementGenerator
	report401        *Report401Generator
}

// NewReportingService creates a new reporting service over the three generators
func NewReportingService(
	balanceSheets *BalanceSheetGenerator,
	incomeStatements *IncomeStatementGenerator,
	report401 *Report401Generator,
) portssvc.ReportingService {
	return &reportingService{
		balanceSheets:    balanceSheets,
		incomeStatements: incomeStatements,
		report401:        report401,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func windowAttrs(bookID int64, window domain.PeriodWindow) []any {
	return []any{
		slog.Int64("book_id", bookID),
		slog.Int64("start_second", window.StartSecond),
		slog.Int64("end_second", window.EndSecond),
	}
}

// BalanceSheet generates a comparative balance sheet for the period
func (s *reportingService) BalanceSheet(ctx context.Context, bookID int64, window domain.PeriodWindow) (*domain.BalanceSheetReport, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	report, err := s.balanceSheets.Generate(ctx, bookID, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate balance sheet", windowAttrs(bookID, window)...)
		return nil, fmt.Errorf("failed to generate balance sheet: %w", err)
	}

	s.LogInfo(ctx, "Balance sheet generated successfully", windowAttrs(bookID, window)...)
	return report, nil
}

// IncomeStatement generates a comparative income statement for the period
func (s *reportingService) IncomeStatement(ctx context.Context, bookID int64, window domain.PeriodWindow) (*domain.IncomeStatementReport, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	report, err := s.incomeStatements.Generate(ctx, bookID, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate income statement", windowAttrs(bookID, window)...)
		return nil, fmt.Errorf("failed to generate income statement: %w", err)
	}

	s.LogInfo(ctx, "Income statement generated successfully", windowAttrs(bookID, window)...)
	return report, nil
}

// Report401 generates the business tax return for the period
func (s *reportingService) Report401(ctx context.Context, bookID int64, window domain.PeriodWindow) (*domain.TaxReport401, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	report, err := s.report401.Generate(ctx, bookID, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate 401 report", windowAttrs(bookID, window)...)
		return nil, fmt.Errorf("failed to generate 401 report: %w", err)
	}

	s.LogInfo(ctx, "401 report generated successfully",
		append(windowAttrs(bookID, window), slog.Int("skipped_invoices", report.SkippedInvoices))...)
	return report, nil
}

// ExportReport renders a report as an XLSX workbook
func (s *reportingService) ExportReport(ctx context.Context, w io.Writer, reportType domain.ReportType, bookID int64, window domain.PeriodWindow) error {
	var err error
	switch reportType {
	case domain.ReportTypeBalanceSheet:
		var report *domain.BalanceSheetReport
		if report, err = s.BalanceSheet(ctx, bookID, window); err == nil {
			err = writeStatementWorkbook(w, "Balance sheet", report.Content)
		}
	case domain.ReportTypeIncomeStatement:
		var report *domain.IncomeStatementReport
		if report, err = s.IncomeStatement(ctx, bookID, window); err == nil {
			err = writeStatementWorkbook(w, "Income statement", report.Content)
		}
	case domain.ReportType401:
		var report *domain.TaxReport401
		if report, err = s.Report401(ctx, bookID, window); err == nil {
			err = writeReport401Workbook(w, report)
		}
	default:
		return fmt.Errorf("%w: unknown report type %q", apperrors.ErrValidation, reportType)
	}
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Report exported", append(windowAttrs(bookID, window), slog.String("report_type", string(reportType)))...)
	return nil
}
