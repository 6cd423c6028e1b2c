package domain

import (
	"github.com/shopspring/decimal"
)

// ReportType identifies a generated report.
type ReportType string

const (
	ReportTypeBalanceSheet    ReportType = "balance_sheet"
	ReportTypeIncomeStatement ReportType = "income_statement"
	ReportType401             ReportType = "report_401"
)

// IsValid reports whether the report type is one the engine can generate.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeBalanceSheet, ReportTypeIncomeStatement, ReportType401:
		return true
	}
	return false
}

// ReportItem is one row of a comparative financial statement.
type ReportItem struct {
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	CurPeriodAmount     decimal.Decimal `json:"curPeriodAmount"`
	PrePeriodAmount     decimal.Decimal `json:"prePeriodAmount"`
	CurPeriodPercentage int64           `json:"curPeriodPercentage"`
	PrePeriodPercentage int64           `json:"prePeriodPercentage"`
	Children            []ReportItem    `json:"children,omitempty"`
}

// PeriodPair holds a metric for the current and the comparative period.
type PeriodPair[T any] struct {
	CurPeriod T `json:"curPeriod"`
	PrePeriod T `json:"prePeriod"`
}

// AssetLiabilityEquityMix is the integer percentage split of the three balance sheet totals.
type AssetLiabilityEquityMix struct {
	Asset     int64 `json:"asset"`
	Liability int64 `json:"liability"`
	Equity    int64 `json:"equity"`
}

// Sum returns the total of the three percentages.
func (m AssetLiabilityEquityMix) Sum() int64 {
	return m.Asset + m.Liability + m.Equity
}

// OtherBucketCode labels the synthetic remainder bucket of the asset concentration chart.
const OtherBucketCode = "Other"

// ConcentrationItem is one slice of the asset concentration chart.
type ConcentrationItem struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int64           `json:"percentage"`
}

// BalanceSheetOtherInfo carries the ratios derived from a balance sheet.
type BalanceSheetOtherInfo struct {
	AssetLiabilityRatio   PeriodPair[AssetLiabilityEquityMix] `json:"assetLiabilityRatio"`
	AssetMixRatio         PeriodPair[[]ConcentrationItem]     `json:"assetMixRatio"`
	DaysSalesOutstanding  PeriodPair[int64]                   `json:"dso"`
	InventoryTurnoverDays PeriodPair[int64]                   `json:"inventoryTurnoverDays"`
}

// IncomeStatementOtherInfo carries the ratios derived from an income statement.
type IncomeStatementOtherInfo struct {
	RevenueAndExpenseRatio PeriodPair[RevenueExpenseRatio] `json:"revenueAndExpenseRatio"`
}

// RevenueExpenseRatio compares total costs and expenses against operating revenue.
type RevenueExpenseRatio struct {
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Ratio   int64           `json:"ratio"`
}

// BalanceSheetReport is the comparative balance sheet for a period.
type BalanceSheetReport struct {
	BookID    int64                 `json:"bookID"`
	CurPeriod PeriodWindow          `json:"curPeriod"`
	PrePeriod PeriodWindow          `json:"prePeriod"`
	Content   []ReportItem          `json:"content"`
	OtherInfo BalanceSheetOtherInfo `json:"otherInfo"`
}

// IncomeStatementReport is the comparative income statement for a period.
type IncomeStatementReport struct {
	BookID    int64                    `json:"bookID"`
	CurPeriod PeriodWindow             `json:"curPeriod"`
	PrePeriod PeriodWindow             `json:"prePeriod"`
	Content   []ReportItem             `json:"content"`
	OtherInfo IncomeStatementOtherInfo `json:"otherInfo"`
}

// Book is the company ledger a report is generated for.
type Book struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	TaxID          string `json:"taxID"`
	TaxSerialNo    string `json:"taxSerialNo"`
	Address        string `json:"address"`
	PersonInCharge string `json:"personInCharge"`
}
