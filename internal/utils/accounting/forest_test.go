package accounting_test

import (
	"testing"

	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/SscSPs/book_reports/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildForest_BalanceSheet(t *testing.T) {
	forest := accounting.BuildForest(balanceSheetChart(), domain.ReportTypeBalanceSheet)

	// Roots follow the configured order; 3X2X is not in the chart and is synthesised.
	require.Equal(t, []string{"1XXX", "2XXX", "3XXX", "3X2X"}, codes(forest))
	assert.Equal(t, "Total liabilities and equity", forest[3].Name)
	assert.Empty(t, forest[3].Children)

	assets := forest[0]
	assert.Equal(t, []string{"1100", "1170"}, codes(assets.Children))
	assert.Equal(t, []string{"1171"}, codes(assets.Children[1].Children))
	assert.Equal(t, "1170", assets.Children[1].Children[0].ParentCode)

	_, found := domain.FindInForest(forest, "9999")
	assert.False(t, found, "accounts outside the report roots are ignored")

	for _, node := range accounting.Flatten(forest) {
		assert.True(t, node.Amount.IsZero())
	}
}

func TestBuildForest_EmptyChart(t *testing.T) {
	forest := accounting.BuildForest(nil, domain.ReportTypeIncomeStatement)
	assert.NotNil(t, forest)
	assert.Empty(t, forest)
}

func TestBuildForest_IncomeStatementSynthesisesComposites(t *testing.T) {
	chart := []domain.Account{
		{Code: "4000", Name: "Operating revenue"},
		{Code: "5000", Name: "Operating costs", DebitNature: true},
	}

	forest := accounting.BuildForest(chart, domain.ReportTypeIncomeStatement)

	// Plain roots missing from the chart are skipped, composite roots are synthesised.
	assert.Equal(t, []string{"4000", "5000", "5900", "6900", "7900", "8200", "8500"}, codes(forest))
}

func TestBuildForest_CycleTerminates(t *testing.T) {
	chart := []domain.Account{
		{Code: "1XXX", Name: "Assets", DebitNature: true, ParentCode: "1100"},
		{Code: "1100", Name: "Cash", DebitNature: true, ParentCode: "1XXX"},
	}

	forest := accounting.BuildForest(chart, domain.ReportTypeBalanceSheet)

	require.Len(t, forest, 2) // 1XXX and the synthesised 3X2X
	assert.Equal(t, []string{"1100"}, codes(forest[0].Children))
	assert.Empty(t, forest[0].Children[0].Children)
}

func TestBuildForest_DuplicateCodesKeepFirst(t *testing.T) {
	chart := []domain.Account{
		{ID: 1, Code: "1XXX", Name: "Assets", DebitNature: true},
		{ID: 2, Code: "1100", Name: "Cash", DebitNature: true, ParentCode: "1XXX"},
		{ID: 3, Code: "1100", Name: "Cash again", DebitNature: true, ParentCode: "1XXX"},
	}

	forest := accounting.BuildForest(chart, domain.ReportTypeBalanceSheet)

	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Cash", forest[0].Children[0].Name)
}

func TestResolveAccount(t *testing.T) {
	account, ok := accounting.ResolveAccount(balanceSheetChart(), "3353")
	require.True(t, ok)
	assert.Equal(t, int64(9), account.ID)

	_, ok = accounting.ResolveAccount(balanceSheetChart(), "0000")
	assert.False(t, ok)
}
