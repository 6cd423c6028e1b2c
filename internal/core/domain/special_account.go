package domain

// SpecialAccountCode maps a semantic role in report generation to a chart-of-accounts code.
type SpecialAccountCode string

// Balance sheet totals and members.
const (
	AssetTotal               SpecialAccountCode = "1XXX"
	LiabilityTotal           SpecialAccountCode = "2XXX"
	EquityTotal              SpecialAccountCode = "3XXX"
	LiabilityAndEquity       SpecialAccountCode = "3X2X"
	AccountsReceivable       SpecialAccountCode = "1170"
	Inventory                SpecialAccountCode = "130X"
	InputTax                 SpecialAccountCode = "1144"
	FixedAsset               SpecialAccountCode = "1600"
	OutputTax                SpecialAccountCode = "2204"
	AccumulatedProfitAndLoss SpecialAccountCode = "3351"
	NetIncomeInEquity        SpecialAccountCode = "3353"
	OtherEquityOther         SpecialAccountCode = "3490"
)

// Income statement totals.
const (
	OperatingRevenue         SpecialAccountCode = "4000"
	OperatingCosts           SpecialAccountCode = "5000"
	GrossProfit              SpecialAccountCode = "5900"
	OperatingExpenses        SpecialAccountCode = "6000"
	OperatingIncome          SpecialAccountCode = "6900"
	NonOperatingIncome       SpecialAccountCode = "7000"
	IncomeBeforeTax          SpecialAccountCode = "7900"
	IncomeTaxExpense         SpecialAccountCode = "7950"
	NetIncome                SpecialAccountCode = "8200"
	OtherComprehensiveIncome SpecialAccountCode = "8300"
	ComprehensiveIncome      SpecialAccountCode = "8500"
)

// String returns the raw chart code.
func (c SpecialAccountCode) String() string {
	return string(c)
}

// CompositeTerm contributes Sign * amount(Code) to a composite node.
type CompositeTerm struct {
	Code SpecialAccountCode
	Sign int
}

// CompositeRule defines a node whose amount combines named totals from other trees of the
// same forest instead of rolling up its own descendants.
type CompositeRule struct {
	Code        SpecialAccountCode
	Name        string
	DebitNature bool
	Terms       []CompositeTerm
}

var balanceSheetComposites = []CompositeRule{
	{
		Code: LiabilityAndEquity,
		Name: "Total liabilities and equity",
		Terms: []CompositeTerm{
			{Code: LiabilityTotal, Sign: 1},
			{Code: EquityTotal, Sign: 1},
		},
	},
}

// Order matters: later rules read totals produced by earlier ones.
var incomeStatementComposites = []CompositeRule{
	{
		Code:  GrossProfit,
		Name:  "Gross profit (loss) from operations",
		Terms: []CompositeTerm{{Code: OperatingRevenue, Sign: 1}, {Code: OperatingCosts, Sign: -1}},
	},
	{
		Code:  OperatingIncome,
		Name:  "Net operating income (loss)",
		Terms: []CompositeTerm{{Code: GrossProfit, Sign: 1}, {Code: OperatingExpenses, Sign: -1}},
	},
	{
		Code:  IncomeBeforeTax,
		Name:  "Profit (loss) before tax",
		Terms: []CompositeTerm{{Code: OperatingIncome, Sign: 1}, {Code: NonOperatingIncome, Sign: 1}},
	},
	{
		Code:  NetIncome,
		Name:  "Profit (loss)",
		Terms: []CompositeTerm{{Code: IncomeBeforeTax, Sign: 1}, {Code: IncomeTaxExpense, Sign: -1}},
	},
	{
		Code:  ComprehensiveIncome,
		Name:  "Total comprehensive income",
		Terms: []CompositeTerm{{Code: NetIncome, Sign: 1}, {Code: OtherComprehensiveIncome, Sign: 1}},
	},
}

var reportRoots = map[ReportType][]SpecialAccountCode{
	ReportTypeBalanceSheet: {AssetTotal, LiabilityTotal, EquityTotal, LiabilityAndEquity},
	ReportTypeIncomeStatement: {
		OperatingRevenue, OperatingCosts, GrossProfit, OperatingExpenses, OperatingIncome,
		NonOperatingIncome, IncomeBeforeTax, IncomeTaxExpense, NetIncome,
		OtherComprehensiveIncome, ComprehensiveIncome,
	},
}

// ReportRoots returns the ordered root codes of the forest for a report type.
func ReportRoots(reportType ReportType) []SpecialAccountCode {
	roots := reportRoots[reportType]
	out := make([]SpecialAccountCode, len(roots))
	copy(out, roots)
	return out
}

// CompositeRules returns the post-aggregation rules for a report type.
func CompositeRules(reportType ReportType) []CompositeRule {
	var rules []CompositeRule
	switch reportType {
	case ReportTypeBalanceSheet:
		rules = balanceSheetComposites
	case ReportTypeIncomeStatement:
		rules = incomeStatementComposites
	}
	out := make([]CompositeRule, len(rules))
	copy(out, rules)
	return out
}
