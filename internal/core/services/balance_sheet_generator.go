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

// BalanceSheetGenerator builds comparative balance sheets and their ratios.
type BalanceSheetGenerator struct {
	BaseService
	forests          *ForestBuilder
	ledgerRepo       portsrepo.LedgerReader
	closer           *PeriodCloser
	incomeStatements portssvc.IncomeStatementSource
}

// NewBalanceSheetGenerator creates a new balance sheet generator
func NewBalanceSheetGenerator(
	forests *ForestBuilder,
	ledgerRepo portsrepo.LedgerReader,
	closer *PeriodCloser,
	incomeStatements portssvc.IncomeStatementSource,
) *BalanceSheetGenerator {
	return &BalanceSheetGenerator{
		forests:          forests,
		ledgerRepo:       ledgerRepo,
		closer:           closer,
		incomeStatements: incomeStatements,
	}
}

// Generate builds the balance sheet as of the window end and as of the same point one year earlier.
func (g *BalanceSheetGenerator) Generate(ctx context.Context, bookID int64, window domain.PeriodWindow) (*domain.BalanceSheetReport, error) {
	chart, err := g.forests.Chart(ctx, bookID)
	if err != nil {
		return nil, err
	}
	preWindow := window.PreviousYear()

	cur, err := g.aggregate(ctx, bookID, chart, window)
	if err != nil {
		return nil, err
	}
	pre, err := g.aggregate(ctx, bookID, chart, preWindow)
	if err != nil {
		return nil, err
	}

	content, err := balanceSheetContent(cur, pre)
	if err != nil {
		return nil, err
	}

	otherInfo, err := g.otherInfo(ctx, bookID, window, preWindow, cur, pre)
	if err != nil {
		return nil, err
	}

	return &domain.BalanceSheetReport{
		BookID:    bookID,
		CurPeriod: window,
		PrePeriod: preWindow,
		Content:   content,
		OtherInfo: otherInfo,
	}, nil
}

// aggregate rolls every posted line item up to the window end together with the closing entries of the window.
func (g *BalanceSheetGenerator) aggregate(ctx context.Context, bookID int64, chart []domain.Account, window domain.PeriodWindow) ([]domain.AccountNode, error) {
	items, err := g.ledgerRepo.ListLineItems(ctx, bookID, window.FromTimeZeroToEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}
	if err := accounting.ValidateLineItems(items); err != nil {
		return nil, fmt.Errorf("invalid ledger data: %w", err)
	}

	closing, err := g.closer.ClosingLineItems(ctx, bookID, window)
	if err != nil {
		return nil, err
	}

	all := make([]domain.LineItem, 0, len(items)+len(closing))
	all = append(all, items...)
	all = append(all, closing...)

	return accounting.UpdateAccountAmounts(
		accounting.BuildForest(chart, domain.ReportTypeBalanceSheet),
		accounting.IndexLineItems(all),
		domain.CompositeRules(domain.ReportTypeBalanceSheet),
	), nil
}

// balanceSheetContent merges both periods and applies percentages: the asset tree against total
// assets, every other tree against total liabilities and equity.
func balanceSheetContent(cur, pre []domain.AccountNode) ([]domain.ReportItem, error) {
	content := accounting.MergeReportItems(cur, pre)
	if len(content) == 0 {
		return content, nil
	}

	assets, ok := accounting.FindReportItem(content, domain.AssetTotal.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingTotal, domain.AssetTotal)
	}
	liabilitiesAndEquity, ok := accounting.FindReportItem(content, domain.LiabilityAndEquity.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingTotal, domain.LiabilityAndEquity)
	}

	out := make([]domain.ReportItem, 0, len(content))
	for _, root := range content {
		base := liabilitiesAndEquity
		if root.Code == domain.AssetTotal.String() {
			base = assets
		}
		out = append(out, accounting.ApplyPercentages([]domain.ReportItem{root}, base)...)
	}
	return out, nil
}

func (g *BalanceSheetGenerator) otherInfo(
	ctx context.Context,
	bookID int64,
	window, preWindow domain.PeriodWindow,
	cur, pre []domain.AccountNode,
) (domain.BalanceSheetOtherInfo, error) {
	curIncome, err := g.incomeStatements.IncomeStatementForest(ctx, bookID, window)
	if err != nil {
		return domain.BalanceSheetOtherInfo{}, err
	}
	preIncome, err := g.incomeStatements.IncomeStatementForest(ctx, bookID, preWindow)
	if err != nil {
		return domain.BalanceSheetOtherInfo{}, err
	}

	receivable := domain.AccountsReceivable.String()
	sales := domain.OperatingRevenue.String()
	inventory := domain.Inventory.String()

	return domain.BalanceSheetOtherInfo{
		AssetLiabilityRatio: domain.PeriodPair[domain.AssetLiabilityEquityMix]{
			CurPeriod: assetLiabilityEquityMix(cur),
			PrePeriod: assetLiabilityEquityMix(pre),
		},
		AssetMixRatio: domain.PeriodPair[[]domain.ConcentrationItem]{
			CurPeriod: assetConcentration(cur),
			PrePeriod: assetConcentration(pre),
		},
		DaysSalesOutstanding: domain.PeriodPair[int64]{
			CurPeriod: accounting.DaysSalesOutstanding(domain.AmountOf(cur, receivable), domain.AmountOf(curIncome, sales)),
			PrePeriod: accounting.DaysSalesOutstanding(domain.AmountOf(pre, receivable), domain.AmountOf(preIncome, sales)),
		},
		// The comparative column would need a third year of balances and is left at zero.
		InventoryTurnoverDays: domain.PeriodPair[int64]{
			CurPeriod: accounting.InventoryTurnoverDays(
				domain.AmountOf(pre, inventory),
				domain.AmountOf(cur, inventory),
				domain.AmountOf(curIncome, domain.OperatingCosts.String()),
			),
			PrePeriod: 0,
		},
	}, nil
}

func assetLiabilityEquityMix(forest []domain.AccountNode) domain.AssetLiabilityEquityMix {
	return accounting.AssetLiabilityEquityMix(
		domain.AmountOf(forest, domain.AssetTotal.String()),
		domain.AmountOf(forest, domain.LiabilityTotal.String()),
		domain.AmountOf(forest, domain.EquityTotal.String()),
	)
}

// assetConcentration ranks the direct children of the asset root.
func assetConcentration(forest []domain.AccountNode) []domain.ConcentrationItem {
	root, ok := domain.FindInForest(forest, domain.AssetTotal.String())
	if !ok {
		return []domain.ConcentrationItem{}
	}
	candidates := make([]domain.ConcentrationItem, 0, len(root.Children))
	for _, child := range root.Children {
		candidates = append(candidates, domain.ConcentrationItem{
			Code:   child.Code,
			Name:   child.Name,
			Amount: accounting.ContributionTo(root, child),
		})
	}
	return accounting.TopAssetConcentration(candidates, root.Amount)
}
