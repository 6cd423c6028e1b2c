package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/book_reports/internal/apperrors"
	"github.com/SscSPs/book_reports/internal/core/domain"
	portsrepo "github.com/SscSPs/book_reports/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/book_reports/internal/core/ports/services"
	"github.com/SscSPs/book_reports/internal/utils/accounting"
)

// IncomeStatementGenerator aggregates the income statement forest of a window.
type IncomeStatementGenerator struct {
	BaseService
	forests    *ForestBuilder
	ledgerRepo portsrepo.LedgerReader
}

// NewIncomeStatementGenerator creates a new income statement generator
func NewIncomeStatementGenerator(forests *ForestBuilder, ledgerRepo portsrepo.LedgerReader) *IncomeStatementGenerator {
	return &IncomeStatementGenerator{
		forests:    forests,
		ledgerRepo: ledgerRepo,
	}
}

// Ensure IncomeStatementGenerator can feed the period closer
var _ portssvc.IncomeStatementSource = (*IncomeStatementGenerator)(nil)

// IncomeStatementForest returns the aggregated income statement forest for the line items of the window.
func (g *IncomeStatementGenerator) IncomeStatementForest(ctx context.Context, bookID int64, window domain.PeriodWindow) ([]domain.AccountNode, error) {
	forest, err := g.forests.Build(ctx, bookID, domain.ReportTypeIncomeStatement)
	if err != nil {
		return nil, err
	}

	items, err := g.ledgerRepo.ListLineItems(ctx, bookID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}
	if err := accounting.ValidateLineItems(items); err != nil {
		return nil, fmt.Errorf("invalid ledger data: %w", err)
	}

	return accounting.UpdateAccountAmounts(
		forest,
		accounting.IndexLineItems(items),
		domain.CompositeRules(domain.ReportTypeIncomeStatement),
	), nil
}

// Generate builds the comparative income statement. Percentages are taken against operating revenue.
func (g *IncomeStatementGenerator) Generate(ctx context.Context, bookID int64, window domain.PeriodWindow) (*domain.IncomeStatementReport, error) {
	preWindow := window.PreviousYear()

	cur, err := g.IncomeStatementForest(ctx, bookID, window)
	if err != nil {
		return nil, err
	}
	pre, err := g.IncomeStatementForest(ctx, bookID, preWindow)
	if err != nil {
		return nil, err
	}

	content := accounting.MergeReportItems(cur, pre)
	if len(content) > 0 {
		revenue, ok := accounting.FindReportItem(content, domain.OperatingRevenue.String())
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingTotal, domain.OperatingRevenue)
		}
		content = accounting.ApplyPercentages(content, revenue)
	}

	return &domain.IncomeStatementReport{
		BookID:    bookID,
		CurPeriod: window,
		PrePeriod: preWindow,
		Content:   content,
		OtherInfo: domain.IncomeStatementOtherInfo{
			RevenueAndExpenseRatio: domain.PeriodPair[domain.RevenueExpenseRatio]{
				CurPeriod: revenueExpenseRatio(cur),
				PrePeriod: revenueExpenseRatio(pre),
			},
		},
	}, nil
}

// revenueExpenseRatio compares operating costs plus operating expenses against operating revenue.
func revenueExpenseRatio(forest []domain.AccountNode) domain.RevenueExpenseRatio {
	revenue := domain.AmountOf(forest, domain.OperatingRevenue.String())
	expense := domain.AmountOf(forest, domain.OperatingCosts.String()).
		Add(domain.AmountOf(forest, domain.OperatingExpenses.String()))
	return domain.RevenueExpenseRatio{
		Revenue: revenue,
		Expense: expense,
		Ratio:   accounting.PercentageOf(expense, revenue),
	}
}
