package accounting

import (
	"sort"

	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	daysInYear    = decimal.NewFromInt(365)
	two           = decimal.NewFromInt(2)
	topAssetCount = 5
)

// PercentageOf returns round(amount / total * 100), or 0 when total is zero.
func PercentageOf(amount, total decimal.Decimal) int64 {
	if total.IsZero() {
		return 0
	}
	return amount.Div(total).Mul(hundred).Round(0).IntPart()
}

// AssetLiabilityEquityMix splits the three totals into integer percentages of their sum.
// The rounding remainder goes to the first bucket holding the largest raw percentage
// (checked in asset, liability, equity order) so the result always sums to 100.
// All three are 0 when the sum is zero.
func AssetLiabilityEquityMix(asset, liability, equity decimal.Decimal) domain.AssetLiabilityEquityMix {
	total := asset.Add(liability).Add(equity)
	if total.IsZero() {
		return domain.AssetLiabilityEquityMix{}
	}

	raw := []decimal.Decimal{
		asset.Div(total).Mul(hundred),
		liability.Div(total).Mul(hundred),
		equity.Div(total).Mul(hundred),
	}
	rounded := make([]int64, len(raw))
	var sum int64
	maxIdx := 0
	for i, r := range raw {
		rounded[i] = r.Round(0).IntPart()
		sum += rounded[i]
		if r.GreaterThan(raw[maxIdx]) {
			maxIdx = i
		}
	}
	rounded[maxIdx] += 100 - sum

	return domain.AssetLiabilityEquityMix{
		Asset:     rounded[0],
		Liability: rounded[1],
		Equity:    rounded[2],
	}
}

// TopAssetConcentration ranks the candidates by amount (descending, ties by code), keeps the
// top five with their percentage of total, and adds an "Other" slice of 100 minus their sum
// when that remainder is positive.
func TopAssetConcentration(candidates []domain.ConcentrationItem, total decimal.Decimal) []domain.ConcentrationItem {
	ranked := make([]domain.ConcentrationItem, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].Amount.Equal(ranked[j].Amount) {
			return ranked[i].Amount.GreaterThan(ranked[j].Amount)
		}
		return ranked[i].Code < ranked[j].Code
	})

	if len(ranked) > topAssetCount {
		ranked = ranked[:topAssetCount]
	}

	result := make([]domain.ConcentrationItem, 0, len(ranked)+1)
	var sum int64
	amountSum := decimal.Zero
	for _, item := range ranked {
		item.Percentage = PercentageOf(item.Amount, total)
		sum += item.Percentage
		amountSum = amountSum.Add(item.Amount)
		result = append(result, item)
	}

	if total.IsZero() {
		return result
	}
	if other := 100 - sum; other > 0 {
		result = append(result, domain.ConcentrationItem{
			Code:       domain.OtherBucketCode,
			Name:       domain.OtherBucketCode,
			Amount:     total.Sub(amountSum),
			Percentage: other,
		})
	}
	return result
}

// DaysSalesOutstanding returns |round(receivable / sales * 365)|, or 0 when sales is zero.
func DaysSalesOutstanding(receivable, sales decimal.Decimal) int64 {
	if sales.IsZero() {
		return 0
	}
	return receivable.Div(sales).Mul(daysInYear).Round(0).Abs().IntPart()
}

// InventoryTurnoverDays returns |round(average inventory / operating cost * 365)|, or 0 when the cost is zero.
func InventoryTurnoverDays(beginInventory, endInventory, operatingCost decimal.Decimal) int64 {
	if operatingCost.IsZero() {
		return 0
	}
	average := beginInventory.Add(endInventory).Div(two)
	return average.Div(operatingCost).Mul(daysInYear).Round(0).Abs().IntPart()
}
