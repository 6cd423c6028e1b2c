package models

import "github.com/shopspring/decimal"

// InvoiceVoucher represents an invoice row joined with the voucher that booked it.
type InvoiceVoucher struct {
	InvoiceID      int64           `db:"invoice_id"`
	BookID         int64           `db:"book_id"`
	InvoiceNo      string          `db:"invoice_no"`
	InvoiceType    string          `db:"invoice_type"`
	TaxType        string          `db:"tax_type"`
	Deductible     bool            `db:"deductible"`
	PriceBeforeTax decimal.Decimal `db:"price_before_tax"`
	TaxPrice       decimal.Decimal `db:"tax_price"`
	TotalPrice     decimal.Decimal `db:"total_price"`
	InvoiceDate    int64           `db:"invoice_date"`
	VoucherID      int64           `db:"voucher_id"`
	VoucherNo      string          `db:"voucher_no"`
	VoucherDate    int64           `db:"voucher_date"`
}
