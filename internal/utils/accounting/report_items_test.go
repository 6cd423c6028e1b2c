package accounting_test

import (
	"testing"

	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/SscSPs/book_reports/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeReportItems(t *testing.T) {
	cur := []domain.AccountNode{
		{Code: "4000", Name: "Operating revenue", Amount: dec("800"), Children: []domain.AccountNode{
			{Code: "4100", Name: "Sales", Amount: dec("800")},
		}},
		{Code: "5000", Name: "Operating costs", Amount: dec("300")},
	}
	pre := []domain.AccountNode{
		{Code: "4000", Amount: dec("500"), Children: []domain.AccountNode{{Code: "4100", Amount: dec("500")}}},
	}

	items := accounting.MergeReportItems(cur, pre)

	require.Len(t, items, 2)
	assert.Equal(t, "Operating revenue", items[0].Name)
	assertDecimal(t, "800", items[0].CurPeriodAmount)
	assertDecimal(t, "500", items[0].PrePeriodAmount)
	require.Len(t, items[0].Children, 1)
	assertDecimal(t, "500", items[0].Children[0].PrePeriodAmount)
	assertDecimal(t, "0", items[1].PrePeriodAmount, "missing comparative amount defaults to zero")
}

func TestApplyPercentages(t *testing.T) {
	items := []domain.ReportItem{
		{Code: "4000", CurPeriodAmount: dec("800"), PrePeriodAmount: dec("500"), Children: []domain.ReportItem{
			{Code: "4100", CurPeriodAmount: dec("200"), PrePeriodAmount: dec("0")},
		}},
	}
	base := items[0]

	out := accounting.ApplyPercentages(items, base)

	assert.Equal(t, int64(100), out[0].CurPeriodPercentage)
	assert.Equal(t, int64(100), out[0].PrePeriodPercentage)
	assert.Equal(t, int64(25), out[0].Children[0].CurPeriodPercentage)
	assert.Equal(t, int64(0), out[0].Children[0].PrePeriodPercentage)
	assert.Equal(t, int64(0), items[0].CurPeriodPercentage, "input is not modified")

	zeroBase := domain.ReportItem{CurPeriodAmount: dec("0"), PrePeriodAmount: dec("0")}
	assert.Equal(t, int64(0), accounting.ApplyPercentages(items, zeroBase)[0].CurPeriodPercentage)
}

func TestFindReportItem(t *testing.T) {
	items := []domain.ReportItem{
		{Code: "1XXX", Children: []domain.ReportItem{{Code: "1100"}}},
		{Code: "3X2X"},
	}

	found, ok := accounting.FindReportItem(items, "1100")
	require.True(t, ok)
	assert.Equal(t, "1100", found.Code)

	_, ok = accounting.FindReportItem(items, "4000")
	assert.False(t, ok)
}
