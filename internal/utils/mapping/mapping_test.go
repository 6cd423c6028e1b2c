package mapping_test

import (
	"testing"

	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/SscSPs/book_reports/internal/models"
	"github.com/SscSPs/book_reports/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainAccount_SharedChart(t *testing.T) {
	account := mapping.ToDomainAccount(models.Account{ID: 1, Code: "1XXX", Name: "Assets", DebitNature: true, Level: 1})

	assert.Equal(t, int64(0), account.BookID)
	assert.Empty(t, account.ParentCode)
	assert.True(t, account.IsRoot())
}

func TestToDomainAccount_BookAccount(t *testing.T) {
	bookID := int64(42)
	parent := "1XXX"

	account := mapping.ToDomainAccount(models.Account{ID: 2, BookID: &bookID, Code: "1100", ParentCode: &parent, Level: 2})

	assert.Equal(t, domain.Account{ID: 2, BookID: 42, Code: "1100", ParentCode: "1XXX", Level: 2}, account)
}

func TestToDomainSlices_NilIsEmpty(t *testing.T) {
	assert.NotNil(t, mapping.ToDomainAccounts(nil))
	assert.Empty(t, mapping.ToDomainAccounts(nil))
	assert.NotNil(t, mapping.ToDomainLineItems(nil))
}

func TestToDomainInvoiceVoucher(t *testing.T) {
	row := models.InvoiceVoucher{
		InvoiceID:      7,
		BookID:         42,
		InvoiceNo:      "AB12345678",
		InvoiceType:    "OUTPUT_31",
		TaxType:        "TAXABLE",
		Deductible:     true,
		PriceBeforeTax: decimal.NewFromInt(1000),
		TaxPrice:       decimal.NewFromInt(50),
		TotalPrice:     decimal.NewFromInt(1050),
		InvoiceDate:    1704067200,
		VoucherID:      9,
		VoucherNo:      "V-0001",
		VoucherDate:    1704067300,
	}
	items := []models.LineItem{
		{ID: 1, VoucherID: 9, AccountID: 3, AccountCode: "1100", Amount: decimal.NewFromInt(1050), Debit: true},
	}

	record := mapping.ToDomainInvoiceVoucher(row, items)

	assert.Equal(t, domain.InvoiceTypeOutput31, record.Invoice.Type)
	assert.Equal(t, domain.TaxTypeTaxable, record.Invoice.TaxType)
	assert.Equal(t, "AB12345678", record.Invoice.No)
	assert.Equal(t, int64(9), record.Voucher.ID)
	assert.Equal(t, int64(1704067300), record.Voucher.DateSecond)
	require.Len(t, record.Voucher.LineItems, 1)
	assert.Equal(t, "1100", record.Voucher.LineItems[0].AccountCode)
	assert.Equal(t, int64(9), record.Voucher.LineItems[0].VoucherID)
}

func TestToDomainBook_OptionalFields(t *testing.T) {
	address := "1 Market Street"

	book := mapping.ToDomainBook(models.Book{ID: 42, Name: "Acme", TaxID: "12345678", Address: &address})

	assert.Equal(t, domain.Book{ID: 42, Name: "Acme", TaxID: "12345678", Address: "1 Market Street"}, book)
}
