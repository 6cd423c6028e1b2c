package accounting_test

import (
	"fmt"
	"testing"

	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !dec(expected).Equal(actual) {
		assert.Fail(t, fmt.Sprintf("expected %s, got %s", expected, actual), msgAndArgs...)
	}
}

func debit(code string, amount string) domain.LineItem {
	return domain.LineItem{AccountCode: code, Amount: dec(amount), Debit: true, VoucherID: 1}
}

func credit(code string, amount string) domain.LineItem {
	return domain.LineItem{AccountCode: code, Amount: dec(amount), Debit: false, VoucherID: 1}
}

// balanceSheetChart has a contra account (1171) under receivables.
func balanceSheetChart() []domain.Account {
	return []domain.Account{
		{ID: 7, Code: "3XXX", Name: "Equity"},
		{ID: 1, Code: "1XXX", Name: "Assets", DebitNature: true},
		{ID: 3, Code: "1170", Name: "Accounts receivable", DebitNature: true, ParentCode: "1XXX"},
		{ID: 2, Code: "1100", Name: "Cash", DebitNature: true, ParentCode: "1XXX"},
		{ID: 4, Code: "1171", Name: "Allowance for bad debts", ParentCode: "1170"},
		{ID: 5, Code: "2XXX", Name: "Liabilities"},
		{ID: 6, Code: "2100", Name: "Notes payable", ParentCode: "2XXX"},
		{ID: 8, Code: "3351", Name: "Accumulated profit", ParentCode: "3XXX"},
		{ID: 9, Code: "3353", Name: "Net income", ParentCode: "3XXX"},
		{ID: 10, Code: "3490", Name: "Other equity", ParentCode: "3XXX"},
		{ID: 11, Code: "9999", Name: "Unreported root"},
	}
}

func incomeStatementChart() []domain.Account {
	return []domain.Account{
		{ID: 20, Code: "4000", Name: "Operating revenue"},
		{ID: 21, Code: "4100", Name: "Sales", ParentCode: "4000"},
		{ID: 22, Code: "5000", Name: "Operating costs", DebitNature: true},
		{ID: 23, Code: "6000", Name: "Operating expenses", DebitNature: true},
		{ID: 24, Code: "7000", Name: "Non-operating income"},
		{ID: 25, Code: "7950", Name: "Income tax expense", DebitNature: true},
		{ID: 26, Code: "8300", Name: "Other comprehensive income"},
	}
}

func codes(nodes []domain.AccountNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Code)
	}
	return out
}
