package accounting

import (
	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MergeReportItems combines the current and comparative forests into report rows.
// The current forest drives the layout; comparative amounts are matched by code
// and default to zero.
func MergeReportItems(cur, pre []domain.AccountNode) []domain.ReportItem {
	preAmounts := make(map[string]decimal.Decimal)
	for _, node := range Flatten(pre) {
		preAmounts[node.Code] = node.Amount
	}
	return toReportItems(cur, preAmounts)
}

func toReportItems(nodes []domain.AccountNode, preAmounts map[string]decimal.Decimal) []domain.ReportItem {
	items := make([]domain.ReportItem, 0, len(nodes))
	for _, node := range nodes {
		preAmount, ok := preAmounts[node.Code]
		if !ok {
			preAmount = decimal.Zero
		}
		items = append(items, domain.ReportItem{
			Code:            node.Code,
			Name:            node.Name,
			CurPeriodAmount: node.Amount,
			PrePeriodAmount: preAmount,
			Children:        toReportItems(node.Children, preAmounts),
		})
	}
	return items
}

// FindReportItem searches the item tree for a code.
func FindReportItem(items []domain.ReportItem, code string) (domain.ReportItem, bool) {
	for _, item := range items {
		if item.Code == code {
			return item, true
		}
		if found, ok := FindReportItem(item.Children, code); ok {
			return found, true
		}
	}
	return domain.ReportItem{}, false
}

// ApplyPercentages returns a copy of the item tree with every row's percentages
// taken against the amounts of base, per period.
func ApplyPercentages(items []domain.ReportItem, base domain.ReportItem) []domain.ReportItem {
	out := make([]domain.ReportItem, len(items))
	for i, item := range items {
		item.CurPeriodPercentage = PercentageOf(item.CurPeriodAmount, base.CurPeriodAmount)
		item.PrePeriodPercentage = PercentageOf(item.PrePeriodAmount, base.PrePeriodAmount)
		item.Children = ApplyPercentages(item.Children, base)
		out[i] = item
	}
	return out
}
