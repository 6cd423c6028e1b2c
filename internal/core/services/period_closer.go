package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/book_reports/internal/core/domain"
	portssvc "github.com/SscSPs/book_reports/internal/core/ports/services"
	"github.com/SscSPs/book_reports/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// PeriodCloser moves income statement results into equity so that a balance sheet
// balances without posted closing vouchers.
type PeriodCloser struct {
	BaseService
	forests          *ForestBuilder
	incomeStatements portssvc.IncomeStatementSource
}

// NewPeriodCloser creates a new period closer
func NewPeriodCloser(forests *ForestBuilder, incomeStatements portssvc.IncomeStatementSource) *PeriodCloser {
	return &PeriodCloser{
		forests:          forests,
		incomeStatements: incomeStatements,
	}
}

// ClosingLineItems returns three pseudo line items for the window:
// current net income to 3353, net income before the window to 3351, and
// the other comprehensive income of both ranges to 3490.
// Zero amounts are still emitted.
func (c *PeriodCloser) ClosingLineItems(ctx context.Context, bookID int64, window domain.PeriodWindow) ([]domain.LineItem, error) {
	chart, err := c.forests.Chart(ctx, bookID)
	if err != nil {
		return nil, err
	}

	current, err := c.incomeStatements.IncomeStatementForest(ctx, bookID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to compute current income statement: %w", err)
	}

	var history []domain.AccountNode
	if window.HasHistory() {
		history, err = c.incomeStatements.IncomeStatementForest(ctx, bookID, window.FromTimeZeroToPriorYearEnd())
		if err != nil {
			return nil, fmt.Errorf("failed to compute historical income statement: %w", err)
		}
	}

	currentNet := domain.AmountOf(current, domain.NetIncome.String())
	historyNet := domain.AmountOf(history, domain.NetIncome.String())
	oci := domain.AmountOf(current, domain.OtherComprehensiveIncome.String()).
		Add(domain.AmountOf(history, domain.OtherComprehensiveIncome.String()))

	return []domain.LineItem{
		c.pseudoLineItem(ctx, chart, domain.NetIncomeInEquity, currentNet),
		c.pseudoLineItem(ctx, chart, domain.AccumulatedProfitAndLoss, historyNet),
		c.pseudoLineItem(ctx, chart, domain.OtherEquityOther, oci),
	}, nil
}

func (c *PeriodCloser) pseudoLineItem(ctx context.Context, chart []domain.Account, code domain.SpecialAccountCode, amount decimal.Decimal) domain.LineItem {
	account, ok := accounting.ResolveAccount(chart, code.String())
	if !ok {
		c.LogWarn(ctx, "Closing account missing from chart, using placeholder",
			slog.String("code", code.String()),
			slog.String("amount", amount.String()))
		// No forest node carries a code the chart lacks, so the amount lands nowhere.
		account = domain.NewPlaceholderAccount(code.String())
	}
	return accounting.PseudoLineItem(account, amount)
}
